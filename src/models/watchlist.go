package models

import "time"

type WatchlistItem struct {
	ID       uint
	Symbol   StockSymbol
	Name     string
	Exchange string
	Provider string
	AddedAt  time.Time
}

type WatchlistRecord struct {
	ID       uint      `gorm:"primaryKey"`
	Symbol   string    `gorm:"column:symbol;not null;uniqueIndex"`
	Name     string    `gorm:"column:name"`
	Exchange string    `gorm:"column:exchange"`
	Provider string    `gorm:"column:provider;default:yahoo"`
	AddedAt  time.Time `gorm:"column:added_at;type:timestamp;not null;autoCreateTime"`
}

func (WatchlistRecord) TableName() string {
	return "watchlist"
}

func (r *WatchlistRecord) ToModel() WatchlistItem {
	return WatchlistItem{
		ID:       r.ID,
		Symbol:   StockSymbol(r.Symbol),
		Name:     r.Name,
		Exchange: r.Exchange,
		Provider: r.Provider,
		AddedAt:  r.AddedAt,
	}
}
