package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/optionwatch/optionwatch/src/indicators"
	"github.com/optionwatch/optionwatch/src/models"
)

// SignalScanner runs the watchlist scan: fetch history, compute indicators,
// detect signals, persist with dedup. Symbols are processed one at a time; a
// failing symbol is logged and skipped so one bad feed cannot abort the
// whole batch.
type SignalScanner struct {
	watchlist models.WatchlistProvider
	history   *StockHistoryService
	signals   *SignalService

	LookbackDays int
	DryRun       bool
}

func NewSignalScanner(watchlist models.WatchlistProvider, history *StockHistoryService, signals *SignalService) *SignalScanner {
	return &SignalScanner{
		watchlist:    watchlist,
		history:      history,
		signals:      signals,
		LookbackDays: 365,
	}
}

// Run scans every watchlist symbol, or the override list when one is given.
// It returns the number of newly detected signals across the batch.
func (s *SignalScanner) Run(ctx context.Context, symbolOverrides []models.StockSymbol) (int, error) {
	requestID := uuid.New()
	logger := log.WithField("requestID", requestID)

	symbols := symbolOverrides
	if len(symbols) == 0 {
		items, err := s.watchlist.GetAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("SignalScanner.Run: failed to read watchlist: %w", err)
		}

		for _, item := range items {
			symbols = append(symbols, item.Symbol)
		}
	}

	logger.Infof("starting signal scan over %d symbols", len(symbols))

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -s.LookbackDays)

	totalDetected := 0
	for _, symbol := range symbols {
		detected, err := s.scanSymbol(ctx, logger, symbol, from, to)
		if err != nil {
			logger.Errorf("scan failed for %s, continuing: %v", symbol, err)
			continue
		}

		totalDetected += detected
	}

	logger.Infof("signal scan done, %d signals detected", totalDetected)

	return totalDetected, nil
}

func (s *SignalScanner) scanSymbol(ctx context.Context, logger *log.Entry, symbol models.StockSymbol, from, to time.Time) (int, error) {
	prices, err := s.history.GetHistorical(ctx, symbol, from, to)
	if err != nil {
		return 0, fmt.Errorf("scanSymbol: %w", err)
	}

	if len(prices) <= indicators.EmaLong {
		logger.Warnf("scanSymbol: %s has %d bars, not enough for the longest warm-up, skipping", symbol, len(prices))
		return 0, nil
	}

	ind := indicators.Calculate(prices)
	signals := DetectSignals(symbol, prices, ind)

	logger.Infof("%s: %d bars, %d signals", symbol, len(prices), len(signals))

	if s.DryRun {
		return len(signals), nil
	}

	for _, signal := range signals {
		if err := s.signals.SaveIfNotExists(ctx, signal); err != nil {
			return 0, fmt.Errorf("scanSymbol: failed to persist signal %s/%s: %w", signal.Symbol, signal.Type, err)
		}
	}

	return len(signals), nil
}
