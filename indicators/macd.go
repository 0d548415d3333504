package indicators

import (
	"fmt"

	"github.com/rustyeddy/ta/market"
)

const (
	MACDWindow = 26
	macdFast   = 12
	macdSignal = 9
)

// MACD holds the three averages behind the MACD lines.
//
// All three are position-weighted EMAs of price over the trailing 26, 12
// and 9 observations, each restarting its own position index. The signal
// line is therefore an EMA of price, not of the MACD line.
type MACD struct {
	ema9  float64
	ema12 float64
	ema26 float64
}

// NewMACD computes MACD from the MACDWindow most recent observations in
// series. Older observations are ignored.
func NewMACD[T market.ValueSource](series []T) (MACD, error) {
	if len(series) < MACDWindow {
		return MACD{}, fmt.Errorf("macd: need %d observations, got %d: %w", MACDWindow, len(series), ErrDataNotEnough)
	}
	sorted := sortedByTime(series)
	recent := sorted[len(sorted)-MACDWindow:]

	return MACD{
		ema26: positionalEMA(recent),
		ema12: positionalEMA(recent[MACDWindow-macdFast:]),
		ema9:  positionalEMA(recent[MACDWindow-macdSignal:]),
	}, nil
}

// Fast is the MACD line, EMA(12) - EMA(26).
func (m MACD) Fast() float64 {
	return m.ema12 - m.ema26
}

// Slow is the signal line.
func (m MACD) Slow() float64 {
	return m.ema9
}

func (m MACD) Histogram() float64 {
	return m.Fast() - m.Slow()
}
