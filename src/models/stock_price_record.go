package models

import "time"

// StockPriceRecord caches provider bars so repeated scans do not refetch the
// same history. Ingestion upserts on (symbol, date).
type StockPriceRecord struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"column:symbol;not null;uniqueIndex:idx_price_symbol_date"`
	Date   time.Time `gorm:"column:date;type:timestamp;not null;uniqueIndex:idx_price_symbol_date"`
	Open   float64   `gorm:"column:open;type:numeric"`
	High   float64   `gorm:"column:high;type:numeric"`
	Low    float64   `gorm:"column:low;type:numeric"`
	Close  float64   `gorm:"column:close;type:numeric"`
	Volume float64   `gorm:"column:volume;type:numeric"`
}

func (StockPriceRecord) TableName() string {
	return "stock_prices"
}

func NewStockPriceRecord(price StockPrice) *StockPriceRecord {
	return &StockPriceRecord{
		Symbol: string(price.Symbol),
		Date:   price.Date.UTC(),
		Open:   price.Open,
		High:   price.High,
		Low:    price.Low,
		Close:  price.Close,
		Volume: price.Volume,
	}
}

func (r *StockPriceRecord) ToModel() StockPrice {
	return StockPrice{
		Symbol: StockSymbol(r.Symbol),
		Date:   r.Date,
		Open:   r.Open,
		High:   r.High,
		Low:    r.Low,
		Close:  r.Close,
		Volume: r.Volume,
	}
}
