package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/optionwatch/optionwatch/src/models"
)

type WatchlistStore struct {
	db *gorm.DB
}

func NewWatchlistStore(db *gorm.DB) *WatchlistStore {
	return &WatchlistStore{db: db}
}

func (s *WatchlistStore) GetAll(ctx context.Context) ([]models.WatchlistItem, error) {
	var records []models.WatchlistRecord
	if err := s.db.WithContext(ctx).Order("symbol ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("WatchlistStore.GetAll: %w", err)
	}

	items := make([]models.WatchlistItem, 0, len(records))
	for _, r := range records {
		items = append(items, r.ToModel())
	}

	return items, nil
}

func (s *WatchlistStore) Add(ctx context.Context, symbol models.StockSymbol, name, exchange, provider string) error {
	record := &models.WatchlistRecord{
		Symbol:   string(symbol),
		Name:     name,
		Exchange: exchange,
		Provider: provider,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("WatchlistStore.Add: %w", err)
	}

	return nil
}

func (s *WatchlistStore) Remove(ctx context.Context, symbol models.StockSymbol) error {
	err := s.db.WithContext(ctx).
		Where("symbol = ?", string(symbol)).
		Delete(&models.WatchlistRecord{}).Error
	if err != nil {
		return fmt.Errorf("WatchlistStore.Remove: %w", err)
	}

	return nil
}
