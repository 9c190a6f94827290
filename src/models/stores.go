package models

import (
	"context"
	"time"
)

// SignalStore persists detected signals. (symbol, type, calendar date) is a
// uniqueness key: Insert must be safe under repeated and concurrent
// invocation, which requires a storage-level constraint rather than an
// application-level existence check alone.
type SignalStore interface {
	Exists(ctx context.Context, symbol StockSymbol, signalType SignalType, date time.Time) (bool, error)
	Insert(ctx context.Context, signal Signal) error
	GetRecent(ctx context.Context, limit int, symbol StockSymbol) ([]Signal, error)
}

// StockPriceStore caches price bars, deduplicated on (symbol, date).
type StockPriceStore interface {
	InsertMany(ctx context.Context, prices []StockPrice) error
	GetHistorical(ctx context.Context, symbol StockSymbol, from, to time.Time) ([]StockPrice, error)
}

// IvHistoryStore persists per-contract implied-volatility history.
type IvHistoryStore interface {
	LatestDate(ctx context.Context, symbol StockSymbol) (*time.Time, error)
	InsertMany(ctx context.Context, records []IvHistoryRecord) error
}
