package market

// ValueSource is the minimal shape an averaging indicator needs: a scalar
// value, a weight (usually volume) and the observation time.
type ValueSource interface {
	Value() float64
	Weight() uint64
	EpochTime() Timestamp
}

// Bar is one OHLCV observation aggregated over an interval.
type Bar interface {
	OpenPrice() float64
	HighPrice() float64
	LowPrice() float64
	ClosePrice() float64
	TotalExecAmount() float64
	TotalExecVolume() uint64
	EpochTime() Timestamp
}

// ExecutionTick is a single execution: traded price and size.
type ExecutionTick interface {
	Price() float64
	Volume() uint64
	EpochTime() Timestamp
}
