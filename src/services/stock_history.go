package services

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/optionwatch/optionwatch/src/models"
)

// StockHistoryService serves price history from the local cache, topping it
// up from the market-data provider and writing fresh bars back so repeated
// scans stay cheap.
type StockHistoryService struct {
	provider models.PriceHistoryProvider
	store    models.StockPriceStore
}

func NewStockHistoryService(provider models.PriceHistoryProvider, store models.StockPriceStore) *StockHistoryService {
	return &StockHistoryService{
		provider: provider,
		store:    store,
	}
}

// GetHistorical returns the merged, date-deduplicated, ascending bar series
// for the window. Provider bars win over cached bars on the same date. A
// provider failure is not fatal when the cache already covers the window.
func (s *StockHistoryService) GetHistorical(ctx context.Context, symbol models.StockSymbol, from, to time.Time) ([]models.StockPrice, error) {
	cached, err := s.store.GetHistorical(ctx, symbol, from, to)
	if err != nil {
		return nil, fmt.Errorf("StockHistoryService.GetHistorical: cache read failed for %s: %w", symbol, err)
	}

	fetched, err := s.provider.GetHistorical(ctx, symbol, from, to)
	if err != nil {
		if len(cached) == 0 {
			return nil, fmt.Errorf("StockHistoryService.GetHistorical: provider fetch failed for %s: %w", symbol, err)
		}

		log.Warnf("StockHistoryService.GetHistorical: provider fetch failed for %s, serving %d cached bars: %v", symbol, len(cached), err)
		return cached, nil
	}

	if len(fetched) > 0 {
		if err := s.store.InsertMany(ctx, fetched); err != nil {
			log.Warnf("StockHistoryService.GetHistorical: failed to cache %d bars for %s: %v", len(fetched), symbol, err)
		}
	}

	return models.MergeStockPrices(cached, fetched), nil
}
