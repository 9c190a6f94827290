package models

import "time"

// IvHistoryRecord stores one historical implied-volatility observation per
// contract per day, sourced from the Alpha Vantage HISTORICAL_OPTIONS feed.
type IvHistoryRecord struct {
	ID         uint      `gorm:"primaryKey"`
	ContractID string    `gorm:"column:contract_id;not null;uniqueIndex:idx_iv_contract_date"`
	Symbol     string    `gorm:"column:symbol;not null;index"`
	Expiration string    `gorm:"column:expiration;not null"`
	IV         float64   `gorm:"column:iv;type:numeric;not null"`
	Date       time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_iv_contract_date"`
}

func (IvHistoryRecord) TableName() string {
	return "iv_history"
}

// IvHistoryEntryDTO is one row of the Alpha Vantage historical options
// payload. Numeric fields arrive as strings.
type IvHistoryEntryDTO struct {
	ContractID        string `json:"contractID"`
	Symbol            string `json:"symbol"`
	Expiration        string `json:"expiration"`
	ImpliedVolatility string `json:"implied_volatility"`
	Date              string `json:"date"`
}

type IvHistoryResponseDTO struct {
	Data []IvHistoryEntryDTO `json:"data"`
}
