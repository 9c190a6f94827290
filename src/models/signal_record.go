package models

import (
	"time"
)

// SignalRecord is the persisted form of a Signal. Day carries the calendar
// date of the triggering bar so that (symbol, name, day) can be enforced as a
// uniqueness key at the storage layer, which keeps repeated or concurrent
// scans from inserting duplicates.
type SignalRecord struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"column:symbol;not null;uniqueIndex:idx_signal_symbol_name_day"`
	Name      string    `gorm:"column:name;not null;uniqueIndex:idx_signal_symbol_name_day"`
	Day       time.Time `gorm:"column:day;type:date;not null;uniqueIndex:idx_signal_symbol_name_day"`
	Detail    string    `gorm:"column:detail"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;not null"`
}

func (SignalRecord) TableName() string {
	return "signals"
}

func NewSignalRecord(signal Signal) *SignalRecord {
	created := signal.Date.UTC()

	return &SignalRecord{
		Symbol:    string(signal.Symbol),
		Name:      string(signal.Type),
		Day:       created.Truncate(24 * time.Hour),
		Detail:    signal.Description,
		CreatedAt: created,
	}
}

func (r *SignalRecord) ToModel() Signal {
	return Signal{
		Symbol:      StockSymbol(r.Symbol),
		Date:        r.CreatedAt,
		Type:        SignalType(r.Name),
		Description: r.Detail,
	}
}
