package indicators

import (
	"fmt"

	"github.com/rustyeddy/ta/market"
)

// StreamingSMA is a streaming Simple Moving Average. After warmup it steps
// with SMASlide using the exact evicted value.
type StreamingSMA struct {
	period int
	window []market.ValueSource
	avg    MovingAverage
}

// NewSMA creates a new streaming Simple Moving Average with the given period.
func NewSMA(period int) *StreamingSMA {
	if period <= 0 {
		panic("SMA period must be > 0")
	}
	return &StreamingSMA{
		period: period,
		window: make([]market.ValueSource, 0, period),
	}
}

func (m *StreamingSMA) Name() string {
	return fmt.Sprintf("SMA(%d)", m.period)
}

func (m *StreamingSMA) Warmup() int {
	return m.period
}

func (m *StreamingSMA) Reset() {
	m.window = m.window[:0]
	m.avg = MovingAverage{}
}

func (m *StreamingSMA) Update(v market.ValueSource) {
	if len(m.window) < m.period {
		m.window = append(m.window, v)
		if len(m.window) == m.period {
			// period > 0, the window is never empty here
			m.avg, _ = SMA(m.window)
		}
		return
	}

	evicted := m.window[0]
	copy(m.window, m.window[1:])
	m.window[m.period-1] = v
	m.avg, _ = SMASlide(m.period, m.avg, evicted.Value(), v)
}

func (m *StreamingSMA) Ready() bool {
	return len(m.window) >= m.period
}

func (m *StreamingSMA) Value() float64 {
	if !m.Ready() {
		return 0
	}
	return m.avg.Value()
}

// StreamingEMA is a streaming Exponential Moving Average seeded with the SMA
// of its first period observations, then stepped with EMAFrom.
type StreamingEMA struct {
	period int
	count  int
	seed   []market.ValueSource
	avg    MovingAverage
}

// NewEMA creates a new streaming Exponential Moving Average with the given period.
func NewEMA(period int) *StreamingEMA {
	if period <= 0 {
		panic("EMA period must be > 0")
	}
	return &StreamingEMA{
		period: period,
		seed:   make([]market.ValueSource, 0, period),
	}
}

func (e *StreamingEMA) Name() string {
	return fmt.Sprintf("EMA(%d)", e.period)
}

func (e *StreamingEMA) Warmup() int {
	return e.period
}

func (e *StreamingEMA) Reset() {
	e.count = 0
	e.seed = e.seed[:0]
	e.avg = MovingAverage{}
}

func (e *StreamingEMA) Update(v market.ValueSource) {
	e.count++
	if e.count <= e.period {
		e.seed = append(e.seed, v)
		if e.count == e.period {
			sma, _ := SMA(e.seed)
			e.avg = MovingAverage{Kind: Exponential, value: sma.Value()}
			e.seed = e.seed[:0]
		}
		return
	}
	e.avg, _ = EMAFrom(e.period, e.avg, v)
}

func (e *StreamingEMA) Ready() bool {
	return e.count >= e.period
}

func (e *StreamingEMA) Value() float64 {
	if !e.Ready() {
		return 0
	}
	return e.avg.Value()
}

var (
	_ Indicator = (*StreamingSMA)(nil)
	_ Indicator = (*StreamingEMA)(nil)
)
