package indicators

import (
	"fmt"

	"github.com/rustyeddy/ta/market"
)

// ForceIndex is the price change between two bars scaled by the later
// bar's volume. It is a market.ValueSource with weight 1, so a sequence of
// them can be smoothed with SMA or EMA.
type ForceIndex struct {
	value float64
	time  market.Timestamp
}

func NewForceIndex[T market.Bar](prev, curr T) ForceIndex {
	return ForceIndex{
		value: (curr.ClosePrice() - prev.ClosePrice()) * float64(curr.TotalExecVolume()),
		time:  curr.EpochTime(),
	}
}

func (f ForceIndex) Value() float64              { return f.value }
func (f ForceIndex) Weight() uint64              { return 1 }
func (f ForceIndex) EpochTime() market.Timestamp { return f.time }

// ForceIndexSeries sorts bars by time and returns the force index of every
// consecutive pair.
func ForceIndexSeries[T market.Bar](bars []T) ([]ForceIndex, error) {
	if len(bars) < 2 {
		return nil, fmt.Errorf("force index: need 2 bars, got %d: %w", len(bars), ErrDataNotEnough)
	}
	sorted := sortedByTime(bars)
	out := make([]ForceIndex, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		out = append(out, NewForceIndex(sorted[i-1], sorted[i]))
	}
	return out, nil
}
