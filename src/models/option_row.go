package models

import (
	"fmt"
)

// OptionRow is one normalized options-chain entry. Quote and trade prices are
// nil when the snapshot carried no quote/trade; each Greek is individually
// optional. MissingGreeksOrIV marks rows whose analytics are incomplete so
// downstream consumers can treat them as lower-confidence data.
type OptionRow struct {
	Contract          OptionSymbol
	Underlying        StockSymbol
	Expiration        string
	Strike            float64
	Type              OptionType
	Bid               *float64
	Ask               *float64
	Last              *float64
	Delta             *float64
	Gamma             *float64
	Theta             *float64
	Vega              *float64
	Rho               *float64
	IV                *float64
	MissingGreeksOrIV bool
}

// NewOptionRowFromSnapshot decodes an OCC contract symbol and pairs it with a
// raw snapshot payload. MissingGreeksOrIV is always derived from the payload,
// never cached.
func NewOptionRowFromSnapshot(symbol OptionSymbol, snapshot OptionSnapshotDTO) (OptionRow, error) {
	components, err := NewOptionSymbolComponents(symbol)
	if err != nil {
		return OptionRow{}, fmt.Errorf("NewOptionRowFromSnapshot: %w", err)
	}

	row := OptionRow{
		Contract:          symbol,
		Underlying:        components.Underlying,
		Expiration:        components.Expiration.Format("2006-01-02"),
		Strike:            components.StrikePrice,
		Type:              components.OptionType,
		IV:                snapshot.ImpliedVolatility,
		MissingGreeksOrIV: snapshot.Greeks == nil || snapshot.ImpliedVolatility == nil,
	}

	if quote := snapshot.LatestQuote; quote != nil {
		bid := quote.BidPrice
		ask := quote.AskPrice
		row.Bid = &bid
		row.Ask = &ask
	}

	if trade := snapshot.LatestTrade; trade != nil {
		last := trade.Price
		row.Last = &last
	}

	if greeks := snapshot.Greeks; greeks != nil {
		delta := greeks.Delta
		gamma := greeks.Gamma
		theta := greeks.Theta
		vega := greeks.Vega
		rho := greeks.Rho
		row.Delta = &delta
		row.Gamma = &gamma
		row.Theta = &theta
		row.Vega = &vega
		row.Rho = &rho
	}

	return row, nil
}
