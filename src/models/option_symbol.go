package models

import (
	"fmt"
	"strconv"
	"time"
)

// OptionSymbol is an OCC-style option contract identifier:
// [underlying][YYMMDD][C|P][strike x1000, 8 digits zero-padded].
type OptionSymbol string

func (s OptionSymbol) String() string {
	return string(s)
}

type OptionSymbolComponents struct {
	Underlying  StockSymbol
	Expiration  time.Time
	OptionType  OptionType
	StrikePrice float64
	Symbol      OptionSymbol
}

// NewOptionSymbolComponents parses an OCC contract symbol. Underlying tickers
// are variable length, so the symbol is parsed from the end: the trailing 15
// characters always encode expiration, type and strike.
func NewOptionSymbolComponents(symbol OptionSymbol) (*OptionSymbolComponents, error) {
	s := string(symbol)
	if len(s) < 15 {
		return nil, fmt.Errorf("NewOptionSymbolComponents: symbol %q is shorter than 15 characters", s)
	}

	underlying := s[:len(s)-15]
	dateStr := s[len(s)-15 : len(s)-9]
	typeChar := s[len(s)-9 : len(s)-8]
	strikeStr := s[len(s)-8:]

	expiration, err := time.Parse("060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: failed to parse expiration %q: %w", dateStr, err)
	}

	strikeInt, err := strconv.Atoi(strikeStr)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: failed to parse strike %q: %w", strikeStr, err)
	}

	optionType := OptionTypePut
	if typeChar == "C" {
		optionType = OptionTypeCall
	}

	return &OptionSymbolComponents{
		Underlying:  StockSymbol(underlying),
		Expiration:  expiration,
		OptionType:  optionType,
		StrikePrice: float64(strikeInt) / 1000.0,
		Symbol:      symbol,
	}, nil
}

// NewOptionSymbol builds the OCC contract symbol from its components.
func NewOptionSymbol(components OptionSymbolComponents) (OptionSymbol, error) {
	if err := components.OptionType.Validate(); err != nil {
		return "", fmt.Errorf("NewOptionSymbol: %w", err)
	}

	typeChar := "P"
	if components.OptionType == OptionTypeCall {
		typeChar = "C"
	}

	year := components.Expiration.Year() % 100
	month := int(components.Expiration.Month())
	day := components.Expiration.Day()

	strike := fmt.Sprintf("%08d", int(components.StrikePrice*1000))

	ticker := fmt.Sprintf("%s%02d%02d%02d%s%s",
		components.Underlying, year, month, day, typeChar, strike)

	return OptionSymbol(ticker), nil
}

// Description renders the symbol in a human-readable form, e.g.
// "AAPL Jun 21 2024 $150.00 Call".
func (s OptionSymbol) Description() (string, error) {
	components, err := NewOptionSymbolComponents(s)
	if err != nil {
		return "", fmt.Errorf("OptionSymbol.Description: failed to parse option symbol: %w", err)
	}

	optionType := "Call"
	if components.OptionType == OptionTypePut {
		optionType = "Put"
	}

	return fmt.Sprintf("%s %s $%.2f %s",
		components.Underlying,
		components.Expiration.Format("Jan 2 2006"),
		components.StrikePrice,
		optionType,
	), nil
}
