package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/optionwatch/optionwatch/src/models"
)

type fakeIvHistoryStore struct {
	latest   map[models.StockSymbol]time.Time
	inserted []models.IvHistoryRecord
}

func (f *fakeIvHistoryStore) LatestDate(ctx context.Context, symbol models.StockSymbol) (*time.Time, error) {
	if latest, ok := f.latest[symbol]; ok {
		return &latest, nil
	}

	return nil, nil
}

func (f *fakeIvHistoryStore) InsertMany(ctx context.Context, records []models.IvHistoryRecord) error {
	f.inserted = append(f.inserted, records...)
	return nil
}

func ivFeedServer(t *testing.T, entries []models.IvHistoryEntryDTO) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "HISTORICAL_OPTIONS", r.URL.Query().Get("function"))

		response := models.IvHistoryResponseDTO{Data: entries}
		assert.NoError(t, json.NewEncoder(w).Encode(response))
	}))
}

func ivEntry(symbol string, date time.Time, iv string) models.IvHistoryEntryDTO {
	day := date.UTC().Format("2006-01-02")

	return models.IvHistoryEntryDTO{
		ContractID:        symbol + day,
		Symbol:            symbol,
		Expiration:        "2026-12-18",
		ImpliedVolatility: iv,
		Date:              day,
	}
}

// asStoredDate mirrors how the updater parses feed dates, so boundary
// comparisons in the tests line up exactly with what the store would hold.
func asStoredDate(t *testing.T, date time.Time) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", date.UTC().Format("2006-01-02"))
	assert.NoError(t, err)

	return parsed
}

func TestIvHistoryUpdater(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("no prior history inserts every settled row", func(t *testing.T) {
		server := ivFeedServer(t, []models.IvHistoryEntryDTO{
			ivEntry("AAPL", now.AddDate(0, 0, -5), "0.31"),
			ivEntry("AAPL", now.AddDate(0, 0, -3), "0.28"),
		})
		defer server.Close()

		store := &fakeIvHistoryStore{}
		updater := NewIvHistoryUpdater("test-key", &fakeWatchlist{items: []models.WatchlistItem{{Symbol: "AAPL"}}}, store)
		updater.BaseURL = server.URL

		assert.NoError(t, updater.Run(ctx))
		assert.Len(t, store.inserted, 2)
		assert.Equal(t, 0.31, store.inserted[0].IV)
	})

	t.Run("row dated equal to the latest stored date is excluded", func(t *testing.T) {
		latest := asStoredDate(t, now.AddDate(0, 0, -3))

		server := ivFeedServer(t, []models.IvHistoryEntryDTO{
			ivEntry("AAPL", now.AddDate(0, 0, -3), "0.28"),
			ivEntry("AAPL", now.AddDate(0, 0, -2), "0.30"),
		})
		defer server.Close()

		store := &fakeIvHistoryStore{latest: map[models.StockSymbol]time.Time{"AAPL": latest}}
		updater := NewIvHistoryUpdater("test-key", &fakeWatchlist{items: []models.WatchlistItem{{Symbol: "AAPL"}}}, store)
		updater.BaseURL = server.URL

		assert.NoError(t, updater.Run(ctx))
		assert.Len(t, store.inserted, 1)
		assert.Equal(t, asStoredDate(t, now.AddDate(0, 0, -2)), store.inserted[0].Date)
	})

	t.Run("today-dated row is excluded until the feed settles", func(t *testing.T) {
		server := ivFeedServer(t, []models.IvHistoryEntryDTO{
			ivEntry("AAPL", now.AddDate(0, 0, -4), "0.27"),
			ivEntry("AAPL", now, "0.33"),
		})
		defer server.Close()

		store := &fakeIvHistoryStore{}
		updater := NewIvHistoryUpdater("test-key", &fakeWatchlist{items: []models.WatchlistItem{{Symbol: "AAPL"}}}, store)
		updater.BaseURL = server.URL

		assert.NoError(t, updater.Run(ctx))
		assert.Len(t, store.inserted, 1)
		assert.Equal(t, asStoredDate(t, now.AddDate(0, 0, -4)), store.inserted[0].Date)
	})

	t.Run("rows with unparseable iv are skipped", func(t *testing.T) {
		server := ivFeedServer(t, []models.IvHistoryEntryDTO{
			ivEntry("AAPL", now.AddDate(0, 0, -5), "not-a-number"),
			ivEntry("AAPL", now.AddDate(0, 0, -4), "0.29"),
		})
		defer server.Close()

		store := &fakeIvHistoryStore{}
		updater := NewIvHistoryUpdater("test-key", &fakeWatchlist{items: []models.WatchlistItem{{Symbol: "AAPL"}}}, store)
		updater.BaseURL = server.URL

		assert.NoError(t, updater.Run(ctx))
		assert.Len(t, store.inserted, 1)
		assert.Equal(t, 0.29, store.inserted[0].IV)
	})
}
