package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/optionwatch/optionwatch/src/models"
	"github.com/optionwatch/optionwatch/src/utils"
)

const alpacaDataBaseURL = "https://data.alpaca.markets"

// AlpacaOptionsChainProvider fetches options-chain snapshots from the Alpaca
// market data API, one page per call.
type AlpacaOptionsChainProvider struct {
	BaseURL   string
	KeyID     string
	SecretKey string
	PageLimit int
}

func NewAlpacaOptionsChainProvider(keyID, secretKey string) *AlpacaOptionsChainProvider {
	return &AlpacaOptionsChainProvider{
		BaseURL:   alpacaDataBaseURL,
		KeyID:     keyID,
		SecretKey: secretKey,
		PageLimit: 500,
	}
}

func (p *AlpacaOptionsChainProvider) GetOptionsChain(ctx context.Context, symbol models.StockSymbol, pageToken string) (*models.OptionsChainPageDTO, error) {
	params := url.Values{}
	params.Set("feed", "indicative")
	params.Set("limit", fmt.Sprintf("%d", p.PageLimit))
	if pageToken != "" {
		params.Set("page_token", pageToken)
	}

	endpoint := fmt.Sprintf("%s/v1beta1/options/snapshots/%s?%s", p.BaseURL, url.PathEscape(string(symbol)), params.Encode())

	headers := map[string]string{
		"APCA-API-KEY-ID":     p.KeyID,
		"APCA-API-SECRET-KEY": p.SecretKey,
		"accept":              "application/json",
	}

	body, err := utils.Get(ctx, endpoint, headers)
	if err != nil {
		return nil, fmt.Errorf("AlpacaOptionsChainProvider.GetOptionsChain: %w", err)
	}

	var page models.OptionsChainPageDTO
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("AlpacaOptionsChainProvider.GetOptionsChain: failed to unmarshal response: %w", err)
	}

	return &page, nil
}
