package market

// Candle represents OHLCV candlestick data. It satisfies both Bar and
// ValueSource; as a ValueSource it reports its close and volume.
type Candle struct {
	Open   float64   `json:"open" yaml:"open"`
	High   float64   `json:"high" yaml:"high"`
	Low    float64   `json:"low" yaml:"low"`
	Close  float64   `json:"close" yaml:"close"`
	Amount float64   `json:"amount" yaml:"amount"`
	Volume uint64    `json:"volume" yaml:"volume"`
	Time   Timestamp `json:"time" yaml:"time"`
}

func (c Candle) OpenPrice() float64       { return c.Open }
func (c Candle) HighPrice() float64       { return c.High }
func (c Candle) LowPrice() float64        { return c.Low }
func (c Candle) ClosePrice() float64      { return c.Close }
func (c Candle) TotalExecAmount() float64 { return c.Amount }
func (c Candle) TotalExecVolume() uint64  { return c.Volume }
func (c Candle) EpochTime() Timestamp     { return c.Time }

func (c Candle) Value() float64 { return c.Close }
func (c Candle) Weight() uint64 { return c.Volume }

// Typical returns (open+high+low)/3.
func (c Candle) Typical() float64 {
	return (c.Open + c.High + c.Low) / 3
}
