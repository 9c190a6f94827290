package services

import (
	"math"

	"github.com/optionwatch/optionwatch/src/models"
)

// PayoffPoint is one sample of a strategy's expiration P&L curve.
type PayoffPoint struct {
	Price float64
	Pnl   float64
}

const payoffGridSteps = 100

// PayoffAtPrice computes the basket's P&L if the underlying settles at the
// given price at expiration. Each leg's entry cost is its own mid at sampling
// time (quote sides missing from the market count as zero), not a historical
// fill price.
func PayoffAtPrice(price float64, legs []models.StrategyLeg) float64 {
	var total float64
	for _, leg := range legs {
		var intrinsic float64
		if leg.Type == models.OptionTypeCall {
			intrinsic = math.Max(price-leg.Strike, 0)
		} else {
			intrinsic = math.Max(leg.Strike-price, 0)
		}

		var bid, ask float64
		if leg.Bid != nil {
			bid = *leg.Bid
		}
		if leg.Ask != nil {
			ask = *leg.Ask
		}
		mid := (bid + ask) / 2

		entryCost := mid * contractMultiplier
		pnlPerContract := (intrinsic*contractMultiplier - entryCost) * leg.Side.Sign()

		total += pnlPerContract * float64(leg.Quantity)
	}

	return total
}

// PayoffCurve samples the basket's expiration P&L over a symmetric grid
// spanning [0.7, 1.3] x the current underlying price in 100 equal steps. The
// range is a heuristic wide enough to show the full practical curve for
// near-the-money strategies. P&L is rounded to whole dollars for display
// stability.
func PayoffCurve(legs []models.StrategyLeg, underlyingPrice float64) []PayoffPoint {
	min := underlyingPrice * 0.7
	max := underlyingPrice * 1.3
	step := (max - min) / payoffGridSteps

	points := make([]PayoffPoint, 0, payoffGridSteps+1)
	for i := 0; i <= payoffGridSteps; i++ {
		price := roundTo(min+float64(i)*step, 2)
		pnl := math.Round(PayoffAtPrice(price, legs))

		points = append(points, PayoffPoint{Price: price, Pnl: pnl})
	}

	return points
}

// Breakevens locates the underlying prices where the sampled P&L curve
// crosses zero, by linear interpolation between adjacent grid points with
// opposite signs. Only adjacent-sample sign changes are detected: a
// non-monotonic payoff crossing zero twice inside one grid cell is missed.
func Breakevens(points []PayoffPoint) []float64 {
	var breakevens []float64
	for i := 1; i < len(points); i++ {
		if be, ok := interpolateBreakeven(points[i-1], points[i]); ok {
			breakevens = append(breakevens, be)
		}
	}

	return breakevens
}

func interpolateBreakeven(p1, p2 PayoffPoint) (float64, bool) {
	if p1.Pnl == p2.Pnl {
		return 0, false
	}
	if (p1.Pnl > 0 && p2.Pnl > 0) || (p1.Pnl < 0 && p2.Pnl < 0) {
		return 0, false
	}

	slope := (p2.Pnl - p1.Pnl) / (p2.Price - p1.Price)
	zeroPrice := p1.Price - p1.Pnl/slope

	return roundTo(zeroPrice, 2), true
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))

	return math.Round(v*pow) / pow
}
