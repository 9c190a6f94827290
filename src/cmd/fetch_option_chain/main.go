package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/optionwatch/optionwatch/src/models"
	"github.com/optionwatch/optionwatch/src/services"
	"github.com/optionwatch/optionwatch/src/utils"
)

type RunArgs struct {
	GoEnv  string
	Symbol string
}

var rootCmd = &cobra.Command{
	Use:   "fetch_option_chain",
	Short: "Fetch and normalize the full options chain for a symbol",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		symbol, err := cmd.Flags().GetString("symbol")
		if err != nil {
			log.Fatalf("error getting symbol: %v", err)
		}

		if err := run(RunArgs{GoEnv: goEnv, Symbol: symbol}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(new(string), "go-env", "development", "The go environment to run the command in.")
	rootCmd.PersistentFlags().StringVar(new(string), "symbol", "", "Underlying symbol to fetch the chain for.")

	rootCmd.MarkPersistentFlagRequired("symbol")

	cobra.CheckErr(rootCmd.Execute())
}

func formatPrice(p *float64) string {
	if p == nil {
		return "-"
	}

	return fmt.Sprintf("%.2f", *p)
}

func run(args RunArgs) error {
	if err := utils.InitEnvironmentVariables(args.GoEnv); err != nil {
		return err
	}

	keyID, err := utils.GetEnv("ALPACA_KEY_ID")
	if err != nil {
		return err
	}

	secretKey, err := utils.GetEnv("ALPACA_SECRET_KEY")
	if err != nil {
		return err
	}

	provider := services.NewAlpacaOptionsChainProvider(keyID, secretKey)

	rows, err := services.FetchFullOptionChain(context.Background(), provider, models.StockSymbol(args.Symbol))
	if err != nil {
		return err
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Expiration != rows[j].Expiration {
			return rows[i].Expiration < rows[j].Expiration
		}
		if rows[i].Strike != rows[j].Strike {
			return rows[i].Strike < rows[j].Strike
		}

		return rows[i].Type < rows[j].Type
	})

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Contract", "Expiration", "Type", "Strike", "Bid", "Ask", "Last", "Delta", "IV", "Partial"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetColumnSeparator("")

	missing := 0
	for _, row := range rows {
		partial := ""
		if row.MissingGreeksOrIV {
			partial = "*"
			missing++
		}

		table.Append([]string{
			row.Contract.String(),
			row.Expiration,
			string(row.Type),
			fmt.Sprintf("%.2f", row.Strike),
			formatPrice(row.Bid),
			formatPrice(row.Ask),
			formatPrice(row.Last),
			formatPrice(row.Delta),
			formatPrice(row.IV),
			partial,
		})
	}

	table.Render()

	fmt.Printf("%d contracts, %d with missing greeks or IV\n", len(rows), missing)

	return nil
}
