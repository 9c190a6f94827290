package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/optionwatch/optionwatch/src/models"
)

// SignalStore persists signals in postgres. The signals table carries a
// unique index on (symbol, name, day), so Insert is safe under concurrent
// scans: a second writer racing past the existence check lands on
// ON CONFLICT DO NOTHING instead of a duplicate row.
type SignalStore struct {
	db *gorm.DB
}

func NewSignalStore(db *gorm.DB) *SignalStore {
	return &SignalStore{db: db}
}

func (s *SignalStore) Exists(ctx context.Context, symbol models.StockSymbol, signalType models.SignalType, date time.Time) (bool, error) {
	day := date.UTC().Truncate(24 * time.Hour)

	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.SignalRecord{}).
		Where("symbol = ? AND name = ? AND day = ?", string(symbol), string(signalType), day).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("SignalStore.Exists: %w", err)
	}

	return count > 0, nil
}

func (s *SignalStore) Insert(ctx context.Context, signal models.Signal) error {
	record := models.NewSignalRecord(signal)

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("SignalStore.Insert: %w", err)
	}

	return nil
}

func (s *SignalStore) GetRecent(ctx context.Context, limit int, symbol models.StockSymbol) ([]models.Signal, error) {
	query := s.db.WithContext(ctx).Model(&models.SignalRecord{})
	if symbol != "" {
		query = query.Where("symbol = ?", string(symbol))
	}

	var records []models.SignalRecord
	if err := query.Order("created_at DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("SignalStore.GetRecent: %w", err)
	}

	signals := make([]models.Signal, 0, len(records))
	for _, r := range records {
		signals = append(signals, r.ToModel())
	}

	return signals, nil
}
