package model

import "time"

// Quote is a snapshot of the prices for an asset pair on an exchange.
// All prices are expressed in the quote asset of the pair.
// Fields an exchange cannot provide are left at zero.
type Quote struct {
	Pair       Pair
	Ask        float64
	Bid        float64
	Last       float64
	TodayLow   float64
	TodayHigh  float64
	Last24Low  float64
	Last24High float64
	Time       time.Time
}
