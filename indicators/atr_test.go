package indicators

import (
	"testing"

	"github.com/rustyeddy/ta/internal/fixtures"
	"github.com/rustyeddy/ta/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hlc(h, l, c float64, day uint64) market.Candle {
	return market.Candle{High: h, Low: l, Close: c, Time: market.Days(day)}
}

func TestATRDetailed(t *testing.T) {
	bars := []market.Candle{
		hlc(10, 8, 9, 1),
		hlc(11, 9, 10, 2),
		hlc(12, 10, 11, 3),
		hlc(11, 9, 10, 4),
		hlc(12, 10, 11, 5),
		hlc(13, 11, 12, 6),
	}
	atr, err := ATR(bars, 3)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, atr, 1e-12)

	_, err = ATR(bars, 6)
	assert.ErrorIs(t, err, ErrDataNotEnough)
	_, err = ATR(bars, 0)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestTrueRange(t *testing.T) {
	current := market.Candle{High: 110, Low: 100, Close: 105}
	previous := market.Candle{Close: 120}
	assert.Equal(t, 20.0, trueRange(current, previous))
}

func TestStreamingATR(t *testing.T) {
	a := NewATR(2)
	assert.Equal(t, "ATR(2)", a.Name())
	assert.Equal(t, 3, a.Warmup())

	a.Update(hlc(10, 8, 9, 1))
	a.Update(hlc(12, 9, 11, 2)) // tr 3
	assert.False(t, a.Ready())
	a.Update(hlc(12, 11, 11, 3)) // tr 1
	require.True(t, a.Ready())
	assert.InDelta(t, 2.0, a.Value(), 1e-12)

	a.Update(hlc(15, 11, 14, 4)) // tr 4 -> (2*1 + 4)/2
	assert.InDelta(t, 3.0, a.Value(), 1e-12)

	a.Reset()
	assert.False(t, a.Ready())
	assert.Equal(t, 0.0, a.Value())
}

func TestATRChannel(t *testing.T) {
	bars := fixtures.Bars()
	ch, err := ATRChannel(bars, 3, 2)
	require.NoError(t, err)

	atr, err := ATR(bars, 3)
	require.NoError(t, err)
	band := ch.Band()
	assert.InDelta(t, 1028.5714285714287, band.Mid, 1e-10)
	assert.InDelta(t, 4*atr, band.Upper-band.Lower, 1e-9)
}

func TestADX(t *testing.T) {
	adx := NewADX(3)
	assert.Equal(t, "ADX(3)", adx.Name())
	assert.Equal(t, 7, adx.Warmup())

	// steady uptrend: every bar makes a higher high and a higher low
	for i := 0; i < adx.Warmup(); i++ {
		assert.False(t, adx.Ready())
		base := 100 + float64(i)*2
		adx.Update(hlc(base+1, base-1, base, uint64(i)))
	}
	require.True(t, adx.Ready())
	// only +DM is ever positive, so DX and ADX are 100
	assert.InDelta(t, 100.0, adx.Value(), 1e-9)

	adx.Reset()
	assert.False(t, adx.Ready())
	assert.Equal(t, 0.0, adx.Value())
}
