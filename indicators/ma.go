package indicators

import (
	"fmt"

	"github.com/rustyeddy/ta/market"
)

type AverageKind int

const (
	Simple AverageKind = iota
	Exponential
)

func (k AverageKind) String() string {
	switch k {
	case Simple:
		return "simple"
	case Exponential:
		return "exponential"
	default:
		return fmt.Sprintf("AverageKind(%d)", int(k))
	}
}

// MovingAverage is a computed average tagged with how it was produced.
// The tag is informational; Value is the same for both kinds.
type MovingAverage struct {
	Kind  AverageKind
	value float64
}

func (m MovingAverage) Value() float64 { return m.value }

// SMA returns the arithmetic mean of Value() over series.
func SMA[T market.ValueSource](series []T) (MovingAverage, error) {
	if len(series) == 0 {
		return MovingAverage{}, fmt.Errorf("sma: %w", ErrEmptyData)
	}
	sum := 0.0
	for _, v := range series {
		sum += v.Value()
	}
	return MovingAverage{Kind: Simple, value: sum / float64(len(series))}, nil
}

// EMA returns the exponential moving average of series in time order.
//
// The smoothing factor depends on position: the i-th observation (1-based)
// is blended with k = 2/(i+1), seeded by the earliest value. This is not
// the fixed-period EMA; see EMAFrom for that.
func EMA[T market.ValueSource](series []T) (MovingAverage, error) {
	if len(series) == 0 {
		return MovingAverage{}, fmt.Errorf("ema: %w", ErrEmptyData)
	}
	sorted := sortedByTime(series)
	return MovingAverage{Kind: Exponential, value: positionalEMA(sorted)}, nil
}

// positionalEMA expects a non-empty, time sorted series.
func positionalEMA[T market.ValueSource](sorted []T) float64 {
	result := sorted[0].Value()
	for i, v := range sorted {
		k := 2 / (float64(i+1) + 1)
		result = v.Value()*k + result*(1-k)
	}
	return result
}

// SMAFrom updates a simple average over a window of size scope in O(1).
// The evicted observation is approximated by the previous average; use
// SMASlide when the evicted value is known.
func SMAFrom(scope int, prev MovingAverage, point market.ValueSource) (MovingAverage, error) {
	if scope <= 0 {
		return MovingAverage{}, fmt.Errorf("sma: scope %d: %w", scope, ErrInvalidData)
	}
	return SMASlide(scope, prev, prev.Value(), point)
}

// SMASlide updates a simple average over a window of size scope, removing
// evicted and adding point.
func SMASlide(scope int, prev MovingAverage, evicted float64, point market.ValueSource) (MovingAverage, error) {
	if scope <= 0 {
		return MovingAverage{}, fmt.Errorf("sma: scope %d: %w", scope, ErrInvalidData)
	}
	n := float64(scope)
	p := prev.Value()
	return MovingAverage{Kind: Simple, value: (p*n - evicted + point.Value()) / n}, nil
}

// EMAFrom advances an exponential average by one observation using the
// fixed smoothing constant k = 2/(scope+1).
func EMAFrom(scope int, prev MovingAverage, point market.ValueSource) (MovingAverage, error) {
	if scope <= 0 {
		return MovingAverage{}, fmt.Errorf("ema: scope %d: %w", scope, ErrInvalidData)
	}
	k := 2 / float64(scope+1)
	return MovingAverage{Kind: Exponential, value: point.Value()*k + prev.Value()*(1-k)}, nil
}
