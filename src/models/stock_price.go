package models

import (
	"sort"
	"time"
)

type StockSymbol string

func (s StockSymbol) String() string {
	return string(s)
}

// StockPrice is a single OHLCV bar. Bars are ordered ascending by Date and
// unique per (Symbol, Date).
type StockPrice struct {
	Symbol StockSymbol
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

func ClosePrices(prices []StockPrice) []float64 {
	closes := make([]float64, len(prices))
	for i, p := range prices {
		closes[i] = p.Close
	}

	return closes
}

func HighPrices(prices []StockPrice) []float64 {
	highs := make([]float64, len(prices))
	for i, p := range prices {
		highs[i] = p.High
	}

	return highs
}

func LowPrices(prices []StockPrice) []float64 {
	lows := make([]float64, len(prices))
	for i, p := range prices {
		lows[i] = p.Low
	}

	return lows
}

// MergeStockPrices merges cached and freshly fetched bars, deduplicating by
// bar timestamp. The later slice wins on conflict. Output is sorted ascending.
func MergeStockPrices(cached, fetched []StockPrice) []StockPrice {
	byDate := make(map[time.Time]StockPrice, len(cached)+len(fetched))
	for _, p := range cached {
		byDate[p.Date.UTC()] = p
	}
	for _, p := range fetched {
		byDate[p.Date.UTC()] = p
	}

	merged := make([]StockPrice, 0, len(byDate))
	for _, p := range byDate {
		merged = append(merged, p)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})

	return merged
}
