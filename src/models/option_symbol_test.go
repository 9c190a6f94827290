package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOptionSymbolComponents(t *testing.T) {
	t.Run("standard four letter ticker", func(t *testing.T) {
		components, err := NewOptionSymbolComponents("AAPL240621C00150000")
		assert.NoError(t, err)

		assert.Equal(t, StockSymbol("AAPL"), components.Underlying)
		assert.Equal(t, time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC), components.Expiration)
		assert.Equal(t, OptionTypeCall, components.OptionType)
		assert.Equal(t, 150.0, components.StrikePrice)
	})

	t.Run("single letter ticker parses from the end", func(t *testing.T) {
		components, err := NewOptionSymbolComponents("F250117P00012500")
		assert.NoError(t, err)

		assert.Equal(t, StockSymbol("F"), components.Underlying)
		assert.Equal(t, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), components.Expiration)
		assert.Equal(t, OptionTypePut, components.OptionType)
		assert.Equal(t, 12.5, components.StrikePrice)
	})

	t.Run("fractional strike", func(t *testing.T) {
		components, err := NewOptionSymbolComponents("SPY240621C00447500")
		assert.NoError(t, err)

		assert.Equal(t, 447.5, components.StrikePrice)
	})

	t.Run("too short is a precondition violation", func(t *testing.T) {
		_, err := NewOptionSymbolComponents("C00150000")
		assert.Error(t, err)
	})

	t.Run("round trip", func(t *testing.T) {
		original := OptionSymbol("TSLA250620P00210000")

		components, err := NewOptionSymbolComponents(original)
		assert.NoError(t, err)

		rebuilt, err := NewOptionSymbol(*components)
		assert.NoError(t, err)
		assert.Equal(t, original, rebuilt)
	})
}

func TestOptionSymbolDescription(t *testing.T) {
	description, err := OptionSymbol("AAPL240621C00150000").Description()
	assert.NoError(t, err)
	assert.Equal(t, "AAPL Jun 21 2024 $150.00 Call", description)
}
