package market

// Point is a bare ValueSource: a value, a weight and a time.
type Point struct {
	V float64   `json:"value" yaml:"value"`
	W uint64    `json:"weight" yaml:"weight"`
	T Timestamp `json:"time" yaml:"time"`
}

func (p Point) Value() float64       { return p.V }
func (p Point) Weight() uint64       { return p.W }
func (p Point) EpochTime() Timestamp { return p.T }
