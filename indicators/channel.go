package indicators

import (
	"fmt"
	"math"

	"github.com/rustyeddy/ta/market"
)

type ChannelKind int

const (
	Envelope ChannelKind = iota
	Bollinger
)

func (k ChannelKind) String() string {
	switch k {
	case Envelope:
		return "envelope"
	case Bollinger:
		return "bollinger"
	default:
		return fmt.Sprintf("ChannelKind(%d)", int(k))
	}
}

// Band is a price channel. Upper >= Mid >= Lower is expected but not enforced.
type Band struct {
	Upper float64 `json:"upper" yaml:"upper"`
	Mid   float64 `json:"mid" yaml:"mid"`
	Lower float64 `json:"lower" yaml:"lower"`
}

// Channel is a Band tagged with the method that produced it.
type Channel struct {
	Kind ChannelKind
	band Band
}

func (c Channel) Band() Band { return c.band }

// EnvelopeBand returns a moving-average envelope of +/- coefficient around
// the EMA of series.
func EnvelopeBand[T market.ValueSource](series []T, coefficient float64) (Channel, error) {
	ema, err := EMA(series)
	if err != nil {
		return Channel{}, fmt.Errorf("envelope: %w", err)
	}
	return EnvelopeFrom(ema, coefficient), nil
}

// EnvelopeFrom builds the envelope around an already computed average.
func EnvelopeFrom(ema MovingAverage, coefficient float64) Channel {
	mid := ema.Value()
	return Channel{
		Kind: Envelope,
		band: Band{
			Upper: mid * (1 + coefficient),
			Mid:   mid,
			Lower: mid * (1 - coefficient),
		},
	}
}

// BollingerBand computes Bollinger bands over the typical price
// (open+high+low)/3.
//
// The deviation is sqrt(sum((mean-typical)^2)) with no division by the
// series length, so bands widen with the window size. The mid line is the
// EMA of closes when exponentialMid is set, otherwise the mean typical
// price. A series with no variance yields a collapsed band.
func BollingerBand[T market.Bar](series []T, devMul float64, exponentialMid bool) (Channel, error) {
	if len(series) == 0 {
		return Channel{}, fmt.Errorf("bollinger: %w", ErrEmptyData)
	}
	sorted := sortedByTime(series)

	sum := 0.0
	for _, b := range sorted {
		sum += typical(b)
	}
	mean := sum / float64(len(sorted))

	variation := 0.0
	for _, b := range sorted {
		d := mean - typical(b)
		variation += d * d
	}
	stdev := math.Sqrt(variation)

	mid := mean
	if exponentialMid {
		mid = positionalEMA(market.BarValues(sorted))
	}

	return Channel{
		Kind: Bollinger,
		band: Band{
			Upper: mid + devMul*stdev,
			Mid:   mid,
			Lower: mid - devMul*stdev,
		},
	}, nil
}

func typical(b market.Bar) float64 {
	return (b.OpenPrice() + b.HighPrice() + b.LowPrice()) / 3
}
