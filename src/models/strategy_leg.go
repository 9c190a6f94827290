package models

import "fmt"

type LegSide string

const (
	LegSideBuy  LegSide = "buy"
	LegSideSell LegSide = "sell"
)

func (s LegSide) Validate() error {
	if s != LegSideBuy && s != LegSideSell {
		return fmt.Errorf("LegSide: Validate: invalid side: %s", s)
	}

	return nil
}

// Sign is +1 for bought legs and -1 for sold legs.
func (s LegSide) Sign() float64 {
	if s == LegSideSell {
		return -1
	}

	return 1
}

// StrategyLeg is one weighted contract in an options strategy basket.
type StrategyLeg struct {
	OptionRow
	Side     LegSide
	Quantity int
}

// NetGreeks are signed sums of per-leg Greeks across a basket, sign flipped
// for sold legs.
type NetGreeks struct {
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}
