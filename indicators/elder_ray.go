package indicators

import (
	"fmt"

	"github.com/rustyeddy/ta/market"
)

// ElderRay measures buying and selling pressure relative to the EMA.
type ElderRay struct {
	askForce float64
	bidForce float64
}

func NewElderRay[T market.ValueSource](series []T) (ElderRay, error) {
	if len(series) == 0 {
		return ElderRay{}, fmt.Errorf("elder ray: %w", ErrEmptyData)
	}
	ema, err := EMA(series)
	if err != nil {
		return ElderRay{}, fmt.Errorf("elder ray: %w", err)
	}

	high := series[0].Value()
	low := high
	for _, v := range series[1:] {
		high = max(high, v.Value())
		low = min(low, v.Value())
	}

	return ElderRay{
		askForce: low - ema.Value(),
		bidForce: high - ema.Value(),
	}, nil
}

// AskForce is the sellers' force, min - EMA.
func (e ElderRay) AskForce() float64 { return e.askForce }

// BidForce is the buyers' force, max - EMA.
func (e ElderRay) BidForce() float64 { return e.bidForce }
