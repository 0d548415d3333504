package indicators

import (
	"fmt"

	"github.com/rustyeddy/ta/market"
)

type StochasticKind int

const (
	Fast StochasticKind = iota
	Slow
)

func (k StochasticKind) String() string {
	switch k {
	case Fast:
		return "fast"
	case Slow:
		return "slow"
	default:
		return fmt.Sprintf("StochasticKind(%d)", int(k))
	}
}

// Stochastic is a %K (Fast) or %D (Slow) sample stamped with the time of
// the last bar it covers. It is a market.ValueSource with weight 1.
type Stochastic struct {
	Kind  StochasticKind
	value float64
	time  market.Timestamp
}

func (s Stochastic) Value() float64              { return s.value }
func (s Stochastic) Weight() uint64              { return 1 }
func (s Stochastic) EpochTime() market.Timestamp { return s.time }

// FastStochastic returns %K: where the last close sits within the high/low
// range of the whole window, scaled to 0..100. A window whose high equals
// its low has no range and is rejected with ErrInvalidData.
func FastStochastic[T market.Bar](bars []T) (Stochastic, error) {
	if len(bars) == 0 {
		return Stochastic{}, fmt.Errorf("fast stochastic: %w", ErrEmptyData)
	}
	sorted := sortedByTime(bars)
	last := sorted[len(sorted)-1]

	high := sorted[0].HighPrice()
	low := sorted[0].LowPrice()
	for _, b := range sorted[1:] {
		high = max(high, b.HighPrice())
		low = min(low, b.LowPrice())
	}
	if high == low {
		return Stochastic{}, fmt.Errorf("fast stochastic: zero price range: %w", ErrInvalidData)
	}

	return Stochastic{
		Kind:  Fast,
		value: (last.ClosePrice() - low) / (high - low) * 100,
		time:  last.EpochTime(),
	}, nil
}

// SlowStochastic returns %D as the ratio of summed (close-low) to summed
// (high-low) across the window, scaled to 0..100.
func SlowStochastic[T market.Bar](bars []T) (Stochastic, error) {
	if len(bars) == 0 {
		return Stochastic{}, fmt.Errorf("slow stochastic: %w", ErrEmptyData)
	}
	sorted := sortedByTime(bars)

	var num, den float64
	for _, b := range sorted {
		num += b.ClosePrice() - b.LowPrice()
		den += b.HighPrice() - b.LowPrice()
	}
	if den == 0 {
		return Stochastic{}, fmt.Errorf("slow stochastic: zero price range: %w", ErrInvalidData)
	}

	return Stochastic{
		Kind:  Slow,
		value: num / den * 100,
		time:  sorted[len(sorted)-1].EpochTime(),
	}, nil
}

// IntoSlow smooths a sequence of Fast samples into one Slow sample: the
// simple average of their values, stamped with the latest sample time.
// Any Slow sample in the input is ErrInvalidData.
func IntoSlow(samples []Stochastic) (Stochastic, error) {
	for _, s := range samples {
		if s.Kind == Slow {
			return Stochastic{}, fmt.Errorf("into slow: input already slow: %w", ErrInvalidData)
		}
	}
	if len(samples) == 0 {
		return Stochastic{}, fmt.Errorf("into slow: %w", ErrEmptyData)
	}
	sorted := sortedByTime(samples)
	sma, err := SMA(sorted)
	if err != nil {
		return Stochastic{}, fmt.Errorf("into slow: %w", err)
	}
	return Stochastic{
		Kind:  Slow,
		value: sma.Value(),
		time:  sorted[len(sorted)-1].EpochTime(),
	}, nil
}

// RollingFastStochastic returns %K for every trailing window of size window
// over the time-sorted bars, oldest first.
func RollingFastStochastic[T market.Bar](bars []T, window int) ([]Stochastic, error) {
	if window <= 0 {
		return nil, fmt.Errorf("rolling stochastic: window %d: %w", window, ErrInvalidData)
	}
	if len(bars) < window {
		return nil, fmt.Errorf("rolling stochastic: need %d bars, got %d: %w", window, len(bars), ErrDataNotEnough)
	}
	sorted := sortedByTime(bars)
	out := make([]Stochastic, 0, len(sorted)-window+1)
	for end := window; end <= len(sorted); end++ {
		k, err := FastStochastic(sorted[end-window : end])
		if err != nil {
			return nil, fmt.Errorf("rolling stochastic: window ending %s: %w", sorted[end-1].EpochTime(), err)
		}
		out = append(out, k)
	}
	return out, nil
}
