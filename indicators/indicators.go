// Package indicators computes technical analysis indicators from
// time-stamped market observations.
//
// Batch functions take a slice of any type implementing the capability they
// need (market.ValueSource or market.Bar), never mutate it, and sort a private
// copy by EpochTime when the result depends on order.
package indicators

import (
	"cmp"
	"slices"

	"github.com/rustyeddy/ta/market"
)

// Indicator computes a single streaming value from observations.
type Indicator interface {
	// Name returns a stable identifier like "EMA(20)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears all internal state.
	Reset()

	// Update consumes the next observation.
	Update(v market.ValueSource)

	// Ready reports whether Value() is meaningful.
	Ready() bool

	// Value returns the current value, or 0 before Ready().
	Value() float64
}

type timed interface {
	EpochTime() market.Timestamp
}

// sortedByTime returns a copy of series stable-sorted by EpochTime, so equal
// timestamps keep their input order.
func sortedByTime[T timed](series []T) []T {
	out := slices.Clone(series)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(a.EpochTime(), b.EpochTime())
	})
	return out
}
