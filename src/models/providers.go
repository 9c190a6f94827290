package models

import (
	"context"
	"time"
)

// PriceHistoryProvider returns ordered bars for a symbol. Gaps in the series
// are tolerated downstream; the provider does not fill them.
type PriceHistoryProvider interface {
	GetHistorical(ctx context.Context, symbol StockSymbol, from, to time.Time) ([]StockPrice, error)
}

// OptionsChainProvider returns one page of chain snapshots. Pass an empty
// pageToken for the first page; the returned page carries the token for the
// next one, nil when the chain is exhausted. Pages must be fetched
// sequentially since each token is only known after the previous page
// returns.
type OptionsChainProvider interface {
	GetOptionsChain(ctx context.Context, symbol StockSymbol, pageToken string) (*OptionsChainPageDTO, error)
}

// WatchlistProvider is the read side of the watchlist: the set of symbols the
// scanner walks.
type WatchlistProvider interface {
	GetAll(ctx context.Context) ([]WatchlistItem, error)
}
