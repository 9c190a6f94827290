package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionwatch/optionwatch/src/models"
	"github.com/optionwatch/optionwatch/src/store"
	"github.com/optionwatch/optionwatch/src/utils"
)

type RunArgs struct {
	GoEnv   string
	CsvFile string
}

var rootCmd = &cobra.Command{
	Use:   "import_prices",
	Short: "Import OHLCV price bars from a CSV export into the price cache",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		csvFile, err := cmd.Flags().GetString("csv")
		if err != nil {
			log.Fatalf("error getting csv: %v", err)
		}

		if err := run(RunArgs{GoEnv: goEnv, CsvFile: csvFile}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(new(string), "go-env", "development", "The go environment to run the command in.")
	rootCmd.PersistentFlags().StringVar(new(string), "csv", "", "Path to the CSV file to import.")

	rootCmd.MarkPersistentFlagRequired("csv")

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

	f, err := os.Open(args.CsvFile)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args.CsvFile, err)
	}
	defer f.Close()

	var dtos []*models.CsvStockPriceDTO
	if err := gocsv.UnmarshalFile(f, &dtos); err != nil {
		return fmt.Errorf("failed to parse %s: %w", args.CsvFile, err)
	}

	prices := make([]models.StockPrice, 0, len(dtos))
	for i, dto := range dtos {
		price, err := dto.ToModel()
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}

		prices = append(prices, price)
	}

	priceStore := store.NewStockPriceStore(db)
	if err := priceStore.InsertMany(context.Background(), prices); err != nil {
		return err
	}

	log.Infof("imported %d price bars from %s", len(prices), args.CsvFile)

	return nil
}
