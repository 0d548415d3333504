package report

import (
	"cmp"
	"slices"

	"github.com/rustyeddy/ta/market"
)

func sortedBars(bars []market.Candle) []market.Candle {
	out := slices.Clone(bars)
	slices.SortStableFunc(out, func(a, b market.Candle) int {
		return cmp.Compare(a.Time, b.Time)
	})
	return out
}
