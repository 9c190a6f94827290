package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/optionwatch/optionwatch/src/models"
)

type IvHistoryStore struct {
	db *gorm.DB
}

func NewIvHistoryStore(db *gorm.DB) *IvHistoryStore {
	return &IvHistoryStore{db: db}
}

// LatestDate returns the most recent stored observation date for a symbol,
// nil when the symbol has no history yet.
func (s *IvHistoryStore) LatestDate(ctx context.Context, symbol models.StockSymbol) (*time.Time, error) {
	var record models.IvHistoryRecord
	err := s.db.WithContext(ctx).
		Where("symbol = ?", string(symbol)).
		Order("date DESC").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("IvHistoryStore.LatestDate: %w", err)
	}

	return &record.Date, nil
}

func (s *IvHistoryStore) InsertMany(ctx context.Context, records []models.IvHistoryRecord) error {
	if len(records) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(records, 500).Error
	if err != nil {
		return fmt.Errorf("IvHistoryStore.InsertMany: %w", err)
	}

	return nil
}
