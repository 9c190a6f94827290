package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/optionwatch/optionwatch/src/models"
)

// FetchFullOptionChain pulls every page of a symbol's options chain and
// normalizes each snapshot into an OptionRow. Pages are fetched strictly
// sequentially: each page's continuation token is only known once the
// previous page has returned. Rows are appended in page-arrival order; order
// across pages carries no meaning since contract symbols are unique.
func FetchFullOptionChain(ctx context.Context, provider models.OptionsChainProvider, symbol models.StockSymbol) ([]models.OptionRow, error) {
	var rows []models.OptionRow

	pageToken := ""
	pageCount := 0

	for {
		page, err := provider.GetOptionsChain(ctx, symbol, pageToken)
		if err != nil {
			return nil, fmt.Errorf("FetchFullOptionChain: failed to fetch page %d for %s: %w", pageCount+1, symbol, err)
		}

		pageCount++

		for contractSymbol, snapshot := range page.Snapshots {
			row, err := models.NewOptionRowFromSnapshot(models.OptionSymbol(contractSymbol), snapshot)
			if err != nil {
				return nil, fmt.Errorf("FetchFullOptionChain: failed to normalize contract %s: %w", contractSymbol, err)
			}

			rows = append(rows, row)
		}

		if page.NextPageToken == nil || *page.NextPageToken == "" {
			break
		}

		pageToken = *page.NextPageToken
	}

	log.Debugf("fetched %d option rows for %s across %d pages", len(rows), symbol, pageCount)

	return rows, nil
}
