package market

type barValue struct{ Bar }

func (b barValue) Value() float64 { return b.ClosePrice() }
func (b barValue) Weight() uint64 { return b.TotalExecVolume() }

type tickValue struct{ ExecutionTick }

func (t tickValue) Value() float64 { return t.Price() }
func (t tickValue) Weight() uint64 { return t.Volume() }

// BarValues views bars as close prices weighted by volume.
func BarValues[T Bar](bars []T) []ValueSource {
	out := make([]ValueSource, len(bars))
	for i, b := range bars {
		out[i] = barValue{b}
	}
	return out
}

// TickValues views ticks as traded prices weighted by size.
func TickValues[T ExecutionTick](ticks []T) []ValueSource {
	out := make([]ValueSource, len(ticks))
	for i, t := range ticks {
		out[i] = tickValue{t}
	}
	return out
}
