package models

// DTOs for an Alpaca-style options snapshot feed. One snapshot per contract
// symbol; quote, trade, greeks and implied volatility are all optional.

type OptionQuoteDTO struct {
	AskPrice    float64 `json:"ap"`
	AskSize     float64 `json:"as"`
	AskExchange string  `json:"ax"`
	BidPrice    float64 `json:"bp"`
	BidSize     float64 `json:"bs"`
	BidExchange string  `json:"bx"`
	Condition   string  `json:"c"`
	Timestamp   string  `json:"t"`
}

type OptionTradeDTO struct {
	Condition string  `json:"c"`
	Price     float64 `json:"p"`
	Size      float64 `json:"s"`
	Timestamp string  `json:"t"`
	Exchange  string  `json:"x"`
}

type OptionGreeksDTO struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Rho   float64 `json:"rho"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
}

type OptionSnapshotDTO struct {
	LatestQuote       *OptionQuoteDTO  `json:"latestQuote,omitempty"`
	LatestTrade       *OptionTradeDTO  `json:"latestTrade,omitempty"`
	Greeks            *OptionGreeksDTO `json:"greeks,omitempty"`
	ImpliedVolatility *float64         `json:"impliedVolatility,omitempty"`
}

// OptionsChainPageDTO is one page of a chain fetch. NextPageToken is nil on
// the final page.
type OptionsChainPageDTO struct {
	NextPageToken *string                      `json:"next_page_token,omitempty"`
	Snapshots     map[string]OptionSnapshotDTO `json:"snapshots"`
}
