package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rustyeddy/ta/config"
	"github.com/rustyeddy/ta/id"
	"github.com/rustyeddy/ta/indicators"
	"github.com/rustyeddy/ta/internal/fixtures"
	"github.com/rustyeddy/ta/internal/logger"
	"github.com/rustyeddy/ta/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestBuilder(cfg *config.Config) *Builder {
	b := NewBuilder(cfg, logger.Discard())
	b.now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	return b
}

func TestBuildShortSeries(t *testing.T) {
	cfg := config.Default()
	cfg.MovingAverage.Scope = 3
	cfg.Stochastic.Window = 3
	cfg.Stochastic.Smoothing = 2
	cfg.ForceIndex.Smoothing = 3
	cfg.Volatility.Period = 3

	bars := fixtures.Bars()
	r, err := newTestBuilder(cfg).Build(bars)
	require.NoError(t, err)

	assert.Equal(t, 7, r.Bars)
	assert.Equal(t, bars[0].Time, r.From)
	assert.Equal(t, bars[6].Time, r.To)

	created, err := id.Time(r.ID)
	require.NoError(t, err)
	assert.True(t, r.CreatedAt.Equal(created))

	assert.InDelta(t, 1028.5714285714287, r.EMA, 1e-10)
	assert.InDelta(t, 1131.4285714285716, r.Envelope.Upper, 1e-10)
	assert.InDelta(t, 1546.503825949666, r.Bollinger.Upper, 1e-10)

	require.NotNil(t, r.StreamingSMA)
	assert.InDelta(t, (1000.0+900+950)/3, *r.StreamingSMA, 1e-9)
	require.NotNil(t, r.StreamingEMA)

	assert.Nil(t, r.MACD)
	assert.Equal(t, []string{"macd"}, r.Skipped)

	require.NotNil(t, r.ForceIndex)
	assert.Equal(t, 50000.0, r.ForceIndex.Last)

	require.NotNil(t, r.Stochastic)
	assert.InDelta(t, 37.5, r.Stochastic.K, 1e-10)
	assert.InDelta(t, 31.25, r.Stochastic.D, 1e-10)
	assert.InDelta(t, 250.0/700*100, r.Stochastic.Slow, 1e-10)

	require.NotNil(t, r.Volatility)
	assert.InDelta(t, 18400.0/81, r.Volatility.ATR, 1e-9)
	assert.InDelta(t, r.EMA, r.Volatility.Channel.Mid, 1e-10)
	assert.InDelta(t, r.EMA+2*18400.0/81, r.Volatility.Channel.Upper, 1e-9)
	require.NotNil(t, r.Volatility.ADX)
	assert.GreaterOrEqual(t, *r.Volatility.ADX, 0.0)
	assert.LessOrEqual(t, *r.Volatility.ADX, 100.0)
}

func TestBuildDefaultsSkipLongIndicators(t *testing.T) {
	r, err := newTestBuilder(config.Default()).Build(fixtures.Bars())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"SMA(20)", "EMA(20)", "macd", "stochastic", "atr", "ADX(14)"}, r.Skipped)
	assert.Nil(t, r.Volatility)
	assert.Nil(t, r.StreamingSMA)
	assert.Nil(t, r.Stochastic)
	assert.NotNil(t, r.ForceIndex)
}

func TestBuildRandomWalk(t *testing.T) {
	bars := fixtures.RandomWalk(60, 100, 7)
	r, err := newTestBuilder(config.Default()).Build(bars)
	require.NoError(t, err)

	assert.Empty(t, r.Skipped)
	require.NotNil(t, r.MACD)
	require.NotNil(t, r.Stochastic)
	require.NotNil(t, r.StreamingEMA)
	require.NotNil(t, r.Volatility)
	require.NotNil(t, r.Volatility.ADX)

	want, err := indicators.NewMACD(bars)
	require.NoError(t, err)
	assert.Equal(t, want.Histogram(), r.MACD.Histogram)

	assert.GreaterOrEqual(t, r.Stochastic.K, 0.0)
	assert.LessOrEqual(t, r.Stochastic.K, 100.0)
	assert.GreaterOrEqual(t, r.Bollinger.Upper, r.Bollinger.Lower)
}

func TestBuildEmpty(t *testing.T) {
	_, err := newTestBuilder(config.Default()).Build([]market.Candle{})
	assert.ErrorIs(t, err, indicators.ErrEmptyData)
}

func TestEncode(t *testing.T) {
	r, err := newTestBuilder(config.Default()).Build(fixtures.Bars())
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Encode(&buf, "json"))

		var decoded Report
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, r.ID, decoded.ID)
		assert.Equal(t, r.Envelope, decoded.Envelope)
		assert.Equal(t, r.Skipped, decoded.Skipped)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, r.Encode(&buf, "yaml"))
		assert.Contains(t, buf.String(), "elder_ray:")

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, r.ID, decoded["id"])
	})

	t.Run("unknown", func(t *testing.T) {
		assert.Error(t, r.Encode(&bytes.Buffer{}, "csv"))
	})
}
