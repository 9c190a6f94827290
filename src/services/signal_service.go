package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/optionwatch/optionwatch/src/models"
)

// SignalService persists detected signals through a SignalStore, skipping
// signals already recorded for the same (symbol, type, calendar date).
type SignalService struct {
	store models.SignalStore
}

func NewSignalService(store models.SignalStore) *SignalService {
	return &SignalService{store: store}
}

// SaveIfNotExists inserts the signal unless one with the same symbol, type
// and calendar date is already stored. Duplicates are skipped silently, which
// makes rescanning the same historical window idempotent. The store itself
// enforces the uniqueness key, so concurrent scans cannot race past the
// existence check.
func (s *SignalService) SaveIfNotExists(ctx context.Context, signal models.Signal) error {
	exists, err := s.store.Exists(ctx, signal.Symbol, signal.Type, signal.Date)
	if err != nil {
		return fmt.Errorf("SignalService.SaveIfNotExists: existence check failed: %w", err)
	}

	if exists {
		log.Debugf("signal %s/%s on %s already stored, skipping", signal.Symbol, signal.Type, signal.Date.Format("2006-01-02"))
		return nil
	}

	if err := s.store.Insert(ctx, signal); err != nil {
		return fmt.Errorf("SignalService.SaveIfNotExists: insert failed: %w", err)
	}

	return nil
}

func (s *SignalService) GetRecentSignals(ctx context.Context, limit int, symbol models.StockSymbol) ([]models.Signal, error) {
	if limit <= 0 {
		limit = 20
	}

	signals, err := s.store.GetRecent(ctx, limit, symbol)
	if err != nil {
		return nil, fmt.Errorf("SignalService.GetRecentSignals: %w", err)
	}

	return signals, nil
}
