package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/optionwatch/optionwatch/src/models"
	"github.com/optionwatch/optionwatch/src/utils"
)

const alphaVantageBaseURL = "https://www.alphavantage.co/query"

// IvHistoryUpdater backfills per-contract implied-volatility history from the
// Alpha Vantage HISTORICAL_OPTIONS feed for every watchlist symbol. Only rows
// newer than the latest stored observation and older than yesterday are
// inserted; the feed lags one day.
type IvHistoryUpdater struct {
	BaseURL   string
	APIKey    string
	watchlist models.WatchlistProvider
	store     models.IvHistoryStore
}

func NewIvHistoryUpdater(apiKey string, watchlist models.WatchlistProvider, store models.IvHistoryStore) *IvHistoryUpdater {
	return &IvHistoryUpdater{
		BaseURL:   alphaVantageBaseURL,
		APIKey:    apiKey,
		watchlist: watchlist,
		store:     store,
	}
}

// Run processes watchlist symbols sequentially, isolating per-symbol
// failures the same way the signal scan does.
func (u *IvHistoryUpdater) Run(ctx context.Context) error {
	items, err := u.watchlist.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("IvHistoryUpdater.Run: failed to read watchlist: %w", err)
	}

	for _, item := range items {
		inserted, err := u.updateSymbol(ctx, item.Symbol)
		if err != nil {
			log.Errorf("iv history update failed for %s, continuing: %v", item.Symbol, err)
			continue
		}

		if inserted == 0 {
			log.Infof("no new IV data for %s", item.Symbol)
		} else {
			log.Infof("inserted %d IV records for %s", inserted, item.Symbol)
		}
	}

	return nil
}

func (u *IvHistoryUpdater) updateSymbol(ctx context.Context, symbol models.StockSymbol) (int, error) {
	latest, err := u.store.LatestDate(ctx, symbol)
	if err != nil {
		return 0, fmt.Errorf("updateSymbol: failed to query latest stored date: %w", err)
	}

	entries, err := u.fetchIvHistory(ctx, symbol)
	if err != nil {
		return 0, fmt.Errorf("updateSymbol: %w", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -1)

	var records []models.IvHistoryRecord
	for _, entry := range entries {
		date, err := time.Parse("2006-01-02", entry.Date)
		if err != nil {
			log.Warnf("updateSymbol: skipping %s entry with bad date %q: %v", symbol, entry.Date, err)
			continue
		}

		if latest != nil && !date.After(*latest) {
			continue
		}
		if !date.Before(cutoff) {
			continue
		}

		iv, err := strconv.ParseFloat(entry.ImpliedVolatility, 64)
		if err != nil {
			log.Warnf("updateSymbol: skipping %s entry with bad iv %q: %v", symbol, entry.ImpliedVolatility, err)
			continue
		}

		records = append(records, models.IvHistoryRecord{
			ContractID: entry.ContractID,
			Symbol:     entry.Symbol,
			Expiration: entry.Expiration,
			IV:         iv,
			Date:       date,
		})
	}

	if len(records) == 0 {
		return 0, nil
	}

	if err := u.store.InsertMany(ctx, records); err != nil {
		return 0, fmt.Errorf("updateSymbol: failed to insert iv records: %w", err)
	}

	return len(records), nil
}

func (u *IvHistoryUpdater) fetchIvHistory(ctx context.Context, symbol models.StockSymbol) ([]models.IvHistoryEntryDTO, error) {
	params := url.Values{}
	params.Set("function", "HISTORICAL_OPTIONS")
	params.Set("symbol", string(symbol))
	params.Set("apikey", u.APIKey)

	endpoint := fmt.Sprintf("%s?%s", u.BaseURL, params.Encode())

	body, err := utils.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("fetchIvHistory: %w", err)
	}

	var response models.IvHistoryResponseDTO
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("fetchIvHistory: failed to unmarshal response: %w", err)
	}

	return response.Data, nil
}
