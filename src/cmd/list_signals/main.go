package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionwatch/optionwatch/src/models"
	"github.com/optionwatch/optionwatch/src/services"
	"github.com/optionwatch/optionwatch/src/store"
	"github.com/optionwatch/optionwatch/src/utils"
)

type RunArgs struct {
	GoEnv  string
	Symbol string
	Limit  int
}

var rootCmd = &cobra.Command{
	Use:   "list_signals",
	Short: "List the most recently detected signals",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			log.Fatalf("error getting limit: %v", err)
		}

		if err := run(RunArgs{GoEnv: goEnv, Symbol: symbol, Limit: limit}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(new(string), "go-env", "development", "The go environment to run the command in.")
	rootCmd.PersistentFlags().StringVar(new(string), "symbol", "", "Only show signals for this symbol.")
	rootCmd.PersistentFlags().IntVar(new(int), "limit", 20, "Maximum number of signals to show.")

	cobra.CheckErr(rootCmd.Execute())
}

func run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return err
	}

	databaseURL, err := utils.GetEnv("DATABASE_URL")
	if err != nil {
		return err
	}

	db, err := store.InitPostgresWithUrl(databaseURL)
	if err != nil {
		return err
	}

	signalService := services.NewSignalService(store.NewSignalStore(db))

	signals, err := signalService.GetRecentSignals(context.Background(), args.Limit, models.StockSymbol(args.Symbol))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Symbol", "Signal", "Description"})
	table.SetColumnSeparator("")

	for _, signal := range signals {
		table.Append([]string{
			signal.Date.Format("2006-01-02"),
			string(signal.Symbol),
			string(signal.Type),
			signal.Description,
		})
	}

	table.Render()

	fmt.Printf("%d signals\n", len(signals))

	return nil
}
