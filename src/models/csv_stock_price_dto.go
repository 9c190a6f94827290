package models

import (
	"fmt"
	"time"
)

// CsvStockPriceDTO is one exported OHLCV row, e.g. from a broker or charting
// platform CSV export.
type CsvStockPriceDTO struct {
	Symbol string  `csv:"symbol"`
	Date   string  `csv:"date"`
	Open   float64 `csv:"open"`
	High   float64 `csv:"high"`
	Low    float64 `csv:"low"`
	Close  float64 `csv:"close"`
	Volume float64 `csv:"volume"`
}

func (dto *CsvStockPriceDTO) ToModel() (StockPrice, error) {
	date, err := time.Parse(time.RFC3339, dto.Date)
	if err != nil {
		// daily exports commonly omit the time component
		date, err = time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return StockPrice{}, fmt.Errorf("CsvStockPriceDTO: ToModel: failed to parse date %q: %w", dto.Date, err)
		}
	}

	return StockPrice{
		Symbol: StockSymbol(dto.Symbol),
		Date:   date.UTC(),
		Open:   dto.Open,
		High:   dto.High,
		Low:    dto.Low,
		Close:  dto.Close,
		Volume: dto.Volume,
	}, nil
}
