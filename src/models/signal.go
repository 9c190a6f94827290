package models

import "time"

type SignalType string

const (
	SignalEma200TouchDown SignalType = "ema200_touch_down"
	SignalEma200TouchUp   SignalType = "ema200_touch_up"
	SignalRsiOversold2Std SignalType = "rsi_oversold_2std"
	SignalRsiBBLower      SignalType = "rsi_bb_lower"
)

// Signal is a single chart condition detected on one bar. More than one
// signal may fire on the same bar.
type Signal struct {
	Symbol      StockSymbol
	Date        time.Time
	Type        SignalType
	Description string
}
