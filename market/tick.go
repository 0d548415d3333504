package market

type BA struct {
	Bid float64 `json:"bid" yaml:"bid"`
	Ask float64 `json:"ask" yaml:"ask"`
}

// Tick is a quote plus the size traded at it. It satisfies ExecutionTick
// and ValueSource, both reporting the mid price.
type Tick struct {
	Instrument string    `json:"instrument" yaml:"instrument"`
	Time       Timestamp `json:"time" yaml:"time"`
	Size       uint64    `json:"size" yaml:"size"`
	BA
}

func (t Tick) Mid() float64 {
	return (t.Bid + t.Ask) / 2
}

func (t Tick) Spread() float64 {
	return t.Ask - t.Bid
}

func (t Tick) Price() float64       { return t.Mid() }
func (t Tick) Volume() uint64       { return t.Size }
func (t Tick) EpochTime() Timestamp { return t.Time }
func (t Tick) Value() float64       { return t.Mid() }
func (t Tick) Weight() uint64       { return t.Size }
