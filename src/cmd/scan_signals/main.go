package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionwatch/optionwatch/src/models"
	"github.com/optionwatch/optionwatch/src/services"
	"github.com/optionwatch/optionwatch/src/store"
	"github.com/optionwatch/optionwatch/src/utils"
)

type RunArgs struct {
	GoEnv      string
	ConfigFile string
	Symbols    []string
	Schedule   string
	DryRun     bool
}

var rootCmd = &cobra.Command{
	Use:   "scan_signals",
	Short: "Scan watchlist symbols for technical signals and persist new ones",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		symbols, err := cmd.Flags().GetStringSlice("symbols")
		if err != nil {
			log.Fatalf("error getting symbols: %v", err)
		}

		schedule, err := cmd.Flags().GetString("schedule")
		if err != nil {
			log.Fatalf("error getting schedule: %v", err)
		}

		dryRun, err := cmd.Flags().GetBool("dry-run")
		if err != nil {
			log.Fatalf("error getting dry-run: %v", err)
		}

		if err := run(RunArgs{
			GoEnv:      goEnv,
			ConfigFile: configFile,
			Symbols:    symbols,
			Schedule:   schedule,
			DryRun:     dryRun,
		}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(new(string), "go-env", "development", "The go environment to run the command in.")
	rootCmd.PersistentFlags().StringVar(new(string), "config", "", "Optional scanner YAML config file.")
	rootCmd.PersistentFlags().StringSliceVar(new([]string), "symbols", nil, "Scan these symbols instead of the watchlist.")
	rootCmd.PersistentFlags().StringVar(new(string), "schedule", "", "Optional cron schedule; when set the scan repeats instead of running once.")
	rootCmd.PersistentFlags().BoolVar(new(bool), "dry-run", false, "Detect signals without persisting them.")

	cobra.CheckErr(rootCmd.Execute())
}

func run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return err
	}

	lookbackDays := 0
	schedule := args.Schedule
	symbols := args.Symbols

	if args.ConfigFile != "" {
		config, err := models.NewScannerConfigFromFile(args.ConfigFile)
		if err != nil {
			return err
		}

		lookbackDays = config.LookbackDays
		if schedule == "" {
			schedule = config.Schedule
		}
		if len(symbols) == 0 {
			symbols = config.Symbols
		}
	}

	databaseURL, err := utils.GetEnv("DATABASE_URL")
	if err != nil {
		return err
	}

	polygonAPIKey, err := utils.GetEnv("POLYGON_API_KEY")
	if err != nil {
		return err
	}

	db, err := store.InitPostgresWithUrl(databaseURL)
	if err != nil {
		return err
	}

	history := services.NewStockHistoryService(
		services.NewPolygonPriceProvider(polygonAPIKey),
		store.NewStockPriceStore(db),
	)

	scanner := services.NewSignalScanner(
		store.NewWatchlistStore(db),
		history,
		services.NewSignalService(store.NewSignalStore(db)),
	)
	scanner.DryRun = args.DryRun
	if lookbackDays > 0 {
		scanner.LookbackDays = lookbackDays
	}

	overrides := make([]models.StockSymbol, 0, len(symbols))
	for _, s := range symbols {
		overrides = append(overrides, models.StockSymbol(s))
	}

	ctx := context.Background()

	if schedule == "" {
		_, err := scanner.Run(ctx, overrides)
		return err
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := scanner.Run(ctx, overrides); err != nil {
			log.Errorf("scheduled scan failed: %v", err)
		}
	}); err != nil {
		return err
	}

	log.Infof("scan scheduled with %q, waiting", schedule)
	c.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	c.Stop()

	return nil
}
