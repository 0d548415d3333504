// Package fixtures holds the reference series the indicator tests and the
// demo command are pinned to.
package fixtures

import (
	"math"
	"math/rand"

	"github.com/rustyeddy/ta/market"
)

// Now is the fixed reference instant all fixture times count back from.
var Now = market.Days(19_800)

func daysAgo(n uint64) market.Timestamp {
	return Now.Sub(market.Days(n))
}

// Prices is a week of daily closes, oldest first.
func Prices() []market.Point {
	return []market.Point{
		{V: 1100, W: 1, T: daysAgo(7)},
		{V: 1000, W: 2, T: daysAgo(6)},
		{V: 1200, W: 1, T: daysAgo(5)},
		{V: 1150, W: 3, T: daysAgo(4)},
		{V: 1200, W: 4, T: daysAgo(3)},
		{V: 1000, W: 1, T: daysAgo(2)},
		{V: 900, W: 1, T: daysAgo(1)},
	}
}

// LongPrices is thirty daily closes, enough for MACD. The last close is
// stamped today; there is no close one day ago.
func LongPrices() []market.Point {
	closes := []float64{
		2000, 1900, 1950, 1850, 1750, 1700, 1600, 1800, 1750, 1500,
		1300, 1250, 1300, 1350, 1200, 1300, 1100, 950, 900, 1000,
		1150, 1100, 1000,
	}
	out := make([]market.Point, 0, 30)
	for i, c := range closes {
		out = append(out, market.Point{V: c, W: 1, T: daysAgo(uint64(30 - i))})
	}
	out = append(out, Prices()...)
	out[len(out)-1].T = Now
	return out
}

// Bars is a week of daily OHLCV bars, oldest first.
func Bars() []market.Candle {
	bar := func(o, h, l, c, avg float64, vol uint64, ago uint64) market.Candle {
		return market.Candle{
			Open: o, High: h, Low: l, Close: c,
			Amount: avg * float64(vol),
			Volume: vol,
			Time:   daysAgo(ago),
		}
	}
	return []market.Candle{
		bar(1200, 1200, 1000, 1100, 1050, 1000, 7),
		bar(1000, 1200, 950, 1200, 1100, 2000, 6),
		bar(1200, 1300, 1100, 1150, 1200, 2500, 5),
		bar(1150, 1200, 1000, 1200, 1150, 2000, 4),
		bar(1200, 1200, 1000, 1000, 1050, 2000, 3),
		bar(1000, 1100, 800, 900, 900, 3000, 2),
		bar(900, 1000, 800, 950, 900, 1000, 1),
	}
}

// RandomWalk generates n daily bars ending at Now from a seeded geometric
// random walk starting at start. The same seed always yields the same bars.
func RandomWalk(n int, start float64, seed int64) []market.Candle {
	r := rand.New(rand.NewSource(seed))
	out := make([]market.Candle, 0, n)
	price := start
	for i := 0; i < n; i++ {
		open := price
		cls := open * math.Exp(r.NormFloat64()*0.01)
		high := max(open, cls) * (1 + r.Float64()*0.005)
		low := min(open, cls) * (1 - r.Float64()*0.005)
		vol := uint64(1000 + r.Intn(9000))
		out = append(out, market.Candle{
			Open: open, High: high, Low: low, Close: cls,
			Amount: (open + cls) / 2 * float64(vol),
			Volume: vol,
			Time:   daysAgo(uint64(n - 1 - i)),
		})
		price = cls
	}
	return out
}
