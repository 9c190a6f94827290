package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optionwatch/optionwatch/src/models"
)

type fakeChainProvider struct {
	pages      []models.OptionsChainPageDTO
	seenTokens []string
}

func (f *fakeChainProvider) GetOptionsChain(ctx context.Context, symbol models.StockSymbol, pageToken string) (*models.OptionsChainPageDTO, error) {
	f.seenTokens = append(f.seenTokens, pageToken)

	idx := len(f.seenTokens) - 1
	if idx >= len(f.pages) {
		return &models.OptionsChainPageDTO{Snapshots: map[string]models.OptionSnapshotDTO{}}, nil
	}

	return &f.pages[idx], nil
}

func TestFetchFullOptionChain(t *testing.T) {
	iv := 0.25
	token := "page-2"

	provider := &fakeChainProvider{
		pages: []models.OptionsChainPageDTO{
			{
				NextPageToken: &token,
				Snapshots: map[string]models.OptionSnapshotDTO{
					"AAPL240621C00150000": {
						LatestQuote:       &models.OptionQuoteDTO{BidPrice: 9, AskPrice: 11},
						LatestTrade:       &models.OptionTradeDTO{Price: 10.5},
						Greeks:            &models.OptionGreeksDTO{Delta: 0.55, Gamma: 0.02, Theta: -0.04, Vega: 0.11, Rho: 0.03},
						ImpliedVolatility: &iv,
					},
				},
			},
			{
				Snapshots: map[string]models.OptionSnapshotDTO{
					"AAPL240621P00140000": {
						LatestQuote: &models.OptionQuoteDTO{BidPrice: 2, AskPrice: 3},
					},
				},
			},
		},
	}

	rows, err := FetchFullOptionChain(context.Background(), provider, "AAPL")
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// pages were requested sequentially, each with the previous page's token
	assert.Equal(t, []string{"", "page-2"}, provider.seenTokens)

	byContract := make(map[models.OptionSymbol]models.OptionRow)
	for _, row := range rows {
		byContract[row.Contract] = row
	}

	call := byContract["AAPL240621C00150000"]
	assert.Equal(t, models.StockSymbol("AAPL"), call.Underlying)
	assert.Equal(t, "2024-06-21", call.Expiration)
	assert.Equal(t, models.OptionTypeCall, call.Type)
	assert.Equal(t, 150.0, call.Strike)
	assert.Equal(t, 9.0, *call.Bid)
	assert.Equal(t, 11.0, *call.Ask)
	assert.Equal(t, 10.5, *call.Last)
	assert.Equal(t, 0.55, *call.Delta)
	assert.False(t, call.MissingGreeksOrIV)

	put := byContract["AAPL240621P00140000"]
	assert.Equal(t, models.OptionTypePut, put.Type)
	assert.Equal(t, 140.0, put.Strike)
	assert.Nil(t, put.Last)
	assert.Nil(t, put.Delta)
	assert.True(t, put.MissingGreeksOrIV)
}

func TestFetchFullOptionChainMalformedSymbol(t *testing.T) {
	provider := &fakeChainProvider{
		pages: []models.OptionsChainPageDTO{
			{
				Snapshots: map[string]models.OptionSnapshotDTO{
					"BAD": {},
				},
			},
		},
	}

	_, err := FetchFullOptionChain(context.Background(), provider, "BAD")
	assert.Error(t, err)
}
