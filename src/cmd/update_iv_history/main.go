package main

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionwatch/optionwatch/src/services"
	"github.com/optionwatch/optionwatch/src/store"
	"github.com/optionwatch/optionwatch/src/utils"
)

var rootCmd = &cobra.Command{
	Use:   "update_iv_history",
	Short: "Backfill historical implied volatility for all watchlist symbols",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		if err := run(goEnv); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(new(string), "go-env", "development", "The go environment to run the command in.")

	cobra.CheckErr(rootCmd.Execute())
}

func run(goEnv string) error {
	if err := utils.InitEnvironmentVariables(goEnv); err != nil {
		return err
	}

	databaseURL, err := utils.GetEnv("DATABASE_URL")
	if err != nil {
		return err
	}

	apiKey, err := utils.GetEnv("ALPHAV_API_KEY")
	if err != nil {
		return err
	}

	db, err := store.InitPostgresWithUrl(databaseURL)
	if err != nil {
		return err
	}

	updater := services.NewIvHistoryUpdater(
		apiKey,
		store.NewWatchlistStore(db),
		store.NewIvHistoryStore(db),
	)

	return updater.Run(context.Background())
}
