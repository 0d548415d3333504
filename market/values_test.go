package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandleCapabilities(t *testing.T) {
	c := Candle{Open: 10, High: 12, Low: 8, Close: 11, Amount: 1100, Volume: 100, Time: Days(1)}

	var bar Bar = c
	var vs ValueSource = c

	assert.Equal(t, 11.0, bar.ClosePrice())
	assert.Equal(t, 11.0, vs.Value())
	assert.Equal(t, uint64(100), vs.Weight())
	assert.Equal(t, Days(1), vs.EpochTime())
	assert.InDelta(t, 10.0, c.Typical(), 1e-12)
}

func TestTickCapabilities(t *testing.T) {
	tk := Tick{Instrument: "EUR_USD", Time: Seconds(5), Size: 3, BA: BA{Bid: 1.0849, Ask: 1.0851}}

	var et ExecutionTick = tk
	assert.InDelta(t, 1.0850, et.Price(), 1e-12)
	assert.InDelta(t, 0.0002, tk.Spread(), 1e-12)
	assert.Equal(t, uint64(3), et.Volume())
	assert.Equal(t, tk.Mid(), tk.Value())
}

func TestBarValues(t *testing.T) {
	bars := []Candle{
		{Close: 1, Volume: 10, Time: Days(1)},
		{Close: 2, Volume: 20, Time: Days(2)},
	}
	vals := BarValues(bars)
	require.Len(t, vals, 2)
	assert.Equal(t, 2.0, vals[1].Value())
	assert.Equal(t, uint64(20), vals[1].Weight())
	assert.Equal(t, Days(2), vals[1].EpochTime())
}

func TestTickValues(t *testing.T) {
	ticks := []Tick{
		{Time: Seconds(1), Size: 4, BA: BA{Bid: 99, Ask: 101}},
	}
	vals := TickValues(ticks)
	require.Len(t, vals, 1)
	assert.Equal(t, 100.0, vals[0].Value())
	assert.Equal(t, uint64(4), vals[0].Weight())
}
