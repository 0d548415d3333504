package indicators

import (
	"fmt"
	"math"

	"github.com/rustyeddy/ta/market"
)

// BarIndicator is the streaming counterpart of Indicator for indicators that
// need the full OHLC bar rather than a single value.
type BarIndicator interface {
	Name() string
	Warmup() int
	Reset()
	Update(b market.Bar)
	Ready() bool
	Value() float64
}

// ATR calculates the Average True Range of the time-sorted bars for the
// given period, seeded with the mean of the first period true ranges and
// then Wilder-smoothed.
func ATR[T market.Bar](bars []T, period int) (float64, error) {
	if period <= 0 {
		return 0, fmt.Errorf("atr: period %d: %w", period, ErrInvalidData)
	}
	if len(bars) < period+1 {
		return 0, fmt.Errorf("atr: need %d bars, got %d: %w", period+1, len(bars), ErrDataNotEnough)
	}

	a := NewATR(period)
	for _, b := range sortedByTime(bars) {
		a.Update(b)
	}
	return a.Value(), nil
}

// StreamingATR is a streaming Average True Range indicator.
type StreamingATR struct {
	period    int
	atr       float64
	count     int
	warmupSum float64
	prev      market.Bar
}

// NewATR creates a new Average True Range indicator with the given period
func NewATR(period int) *StreamingATR {
	if period <= 0 {
		panic("ATR period must be > 0")
	}
	return &StreamingATR{period: period}
}

func (a *StreamingATR) Name() string {
	return fmt.Sprintf("ATR(%d)", a.period)
}

func (a *StreamingATR) Warmup() int {
	// the first bar only seeds the previous close
	return a.period + 1
}

func (a *StreamingATR) Reset() {
	a.atr = 0
	a.count = 0
	a.warmupSum = 0
	a.prev = nil
}

func (a *StreamingATR) Update(b market.Bar) {
	if a.prev == nil {
		a.prev = b
		return
	}

	tr := trueRange(b, a.prev)
	a.prev = b

	if a.count < a.period {
		a.warmupSum += tr
		a.count++
		if a.count == a.period {
			a.atr = a.warmupSum / float64(a.period)
		}
		return
	}
	a.atr = (a.atr*float64(a.period-1) + tr) / float64(a.period)
}

func (a *StreamingATR) Ready() bool {
	return a.count >= a.period
}

func (a *StreamingATR) Value() float64 {
	if !a.Ready() {
		return 0
	}
	return a.atr
}

// trueRange is the widest of high-low, |high-prevClose| and |low-prevClose|.
func trueRange(curr, prev market.Bar) float64 {
	highLow := curr.HighPrice() - curr.LowPrice()
	highClose := math.Abs(curr.HighPrice() - prev.ClosePrice())
	lowClose := math.Abs(curr.LowPrice() - prev.ClosePrice())
	return max(highLow, highClose, lowClose)
}

// ATRChannel is a Keltner-style band: the EMA of closes +/- mult*ATR.
// It is tagged Envelope since it is an envelope around the average.
func ATRChannel[T market.Bar](bars []T, period int, mult float64) (Channel, error) {
	atr, err := ATR(bars, period)
	if err != nil {
		return Channel{}, err
	}
	sorted := sortedByTime(bars)
	mid := positionalEMA(market.BarValues(sorted))
	return Channel{
		Kind: Envelope,
		band: Band{Upper: mid + mult*atr, Mid: mid, Lower: mid - mult*atr},
	}, nil
}
