package services

import (
	"github.com/optionwatch/optionwatch/src/models"
)

// MidPrice proxies an execution price for a leg: the bid/ask midpoint when
// both sides are quoted, the quoted side when only one is, zero when the
// market is empty.
func MidPrice(leg models.StrategyLeg) float64 {
	if leg.Bid != nil && leg.Ask != nil {
		return (*leg.Bid + *leg.Ask) / 2
	}
	if leg.Bid != nil {
		return *leg.Bid
	}
	if leg.Ask != nil {
		return *leg.Ask
	}

	return 0
}

const contractMultiplier = 100

// NetCost returns the net dollars to open the basket: positive is a net
// debit (cash paid), negative a net credit (cash received).
func NetCost(legs []models.StrategyLeg) float64 {
	var sum float64
	for _, leg := range legs {
		dollars := MidPrice(leg) * contractMultiplier * float64(leg.Quantity)
		sum += dollars * leg.Side.Sign()
	}

	return sum
}

// NetGreeks sums per-leg Greeks across the basket, sign flipped for sold
// legs. A missing Greek contributes zero rather than failing: a basket with
// partially missing analytics understates, it does not error.
func NetGreeks(legs []models.StrategyLeg) models.NetGreeks {
	var net models.NetGreeks
	for _, leg := range legs {
		weight := float64(leg.Quantity) * leg.Side.Sign()

		net.Delta += greekOrZero(leg.Delta) * weight
		net.Gamma += greekOrZero(leg.Gamma) * weight
		net.Theta += greekOrZero(leg.Theta) * weight
		net.Vega += greekOrZero(leg.Vega) * weight
		net.Rho += greekOrZero(leg.Rho) * weight
	}

	return net
}

func greekOrZero(g *float64) float64 {
	if g == nil {
		return 0
	}

	return *g
}

// Expirations returns the distinct expiration dates in the basket in
// first-seen order. More than one expiration marks a calendar-style strategy.
func Expirations(legs []models.StrategyLeg) []string {
	seen := make(map[string]bool)

	var expirations []string
	for _, leg := range legs {
		if !seen[leg.Expiration] {
			seen[leg.Expiration] = true
			expirations = append(expirations, leg.Expiration)
		}
	}

	return expirations
}
