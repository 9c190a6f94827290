package services

import (
	"context"
	"fmt"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	polygonmodels "github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"

	"github.com/optionwatch/optionwatch/src/models"
)

// PolygonPriceProvider serves daily price history from the polygon.io
// aggregates API.
type PolygonPriceProvider struct {
	client *polygon.Client
}

func NewPolygonPriceProvider(apiKey string) *PolygonPriceProvider {
	return &PolygonPriceProvider{
		client: polygon.New(apiKey),
	}
}

func (p *PolygonPriceProvider) GetHistorical(ctx context.Context, symbol models.StockSymbol, from, to time.Time) ([]models.StockPrice, error) {
	params := polygonmodels.ListAggsParams{
		Ticker:     string(symbol),
		Multiplier: 1,
		Timespan:   polygonmodels.Day,
		From:       polygonmodels.Millis(from),
		To:         polygonmodels.Millis(to),
	}.WithOrder(polygonmodels.Asc).WithAdjusted(true)

	log.Debugf("fetching polygon daily bars for %s from %s to %s", symbol, from.Format("2006-01-02"), to.Format("2006-01-02"))

	iter := p.client.ListAggs(ctx, params)

	var prices []models.StockPrice
	for iter.Next() {
		item := iter.Item()
		prices = append(prices, models.StockPrice{
			Symbol: symbol,
			Date:   time.Time(item.Timestamp).UTC(),
			Open:   item.Open,
			High:   item.High,
			Low:    item.Low,
			Close:  item.Close,
			Volume: item.Volume,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("PolygonPriceProvider.GetHistorical: failed to list aggs for %s: %w", symbol, err)
	}

	return prices, nil
}
