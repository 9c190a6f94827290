package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/optionwatch/optionwatch/src/models"
)

// StockPriceStore caches provider bars in postgres, deduplicated on
// (symbol, date).
type StockPriceStore struct {
	db *gorm.DB
}

func NewStockPriceStore(db *gorm.DB) *StockPriceStore {
	return &StockPriceStore{db: db}
}

func (s *StockPriceStore) InsertMany(ctx context.Context, prices []models.StockPrice) error {
	if len(prices) == 0 {
		return nil
	}

	records := make([]*models.StockPriceRecord, 0, len(prices))
	for _, p := range prices {
		records = append(records, models.NewStockPriceRecord(p))
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(records, 500).Error
	if err != nil {
		return fmt.Errorf("StockPriceStore.InsertMany: %w", err)
	}

	return nil
}

func (s *StockPriceStore) GetHistorical(ctx context.Context, symbol models.StockSymbol, from, to time.Time) ([]models.StockPrice, error) {
	var records []models.StockPriceRecord
	err := s.db.WithContext(ctx).
		Where("symbol = ? AND date >= ? AND date <= ?", string(symbol), from.UTC(), to.UTC()).
		Order("date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("StockPriceStore.GetHistorical: %w", err)
	}

	prices := make([]models.StockPrice, 0, len(records))
	for _, r := range records {
		prices = append(prices, r.ToModel())
	}

	return prices, nil
}
