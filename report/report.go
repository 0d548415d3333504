// Package report evaluates every indicator over one bar series with the
// parameters from a config.Config.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/rustyeddy/ta/config"
	"github.com/rustyeddy/ta/id"
	"github.com/rustyeddy/ta/indicators"
	"github.com/rustyeddy/ta/market"
	"gopkg.in/yaml.v3"
)

// Report is a snapshot of indicator values for one series. Sections whose
// indicator could not be computed are nil and listed in Skipped.
type Report struct {
	ID        string           `json:"id" yaml:"id"`
	CreatedAt time.Time        `json:"created_at" yaml:"created_at"`
	Bars      int              `json:"bars" yaml:"bars"`
	From      market.Timestamp `json:"from" yaml:"from"`
	To        market.Timestamp `json:"to" yaml:"to"`

	SMA          float64         `json:"sma" yaml:"sma"`
	EMA          float64         `json:"ema" yaml:"ema"`
	StreamingSMA *float64        `json:"streaming_sma,omitempty" yaml:"streaming_sma,omitempty"`
	StreamingEMA *float64        `json:"streaming_ema,omitempty" yaml:"streaming_ema,omitempty"`
	Envelope     indicators.Band `json:"envelope" yaml:"envelope"`
	Bollinger    indicators.Band `json:"bollinger" yaml:"bollinger"`
	MACD         *MACD           `json:"macd,omitempty" yaml:"macd,omitempty"`
	ElderRay     ElderRay        `json:"elder_ray" yaml:"elder_ray"`
	ForceIndex   *ForceIndex     `json:"force_index,omitempty" yaml:"force_index,omitempty"`
	Stochastic   *Stochastic     `json:"stochastic,omitempty" yaml:"stochastic,omitempty"`
	Volatility   *Volatility     `json:"volatility,omitempty" yaml:"volatility,omitempty"`
	Skipped      []string        `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

type MACD struct {
	Fast      float64 `json:"fast" yaml:"fast"`
	Slow      float64 `json:"slow" yaml:"slow"`
	Histogram float64 `json:"histogram" yaml:"histogram"`
}

type ElderRay struct {
	AskForce float64 `json:"ask_force" yaml:"ask_force"`
	BidForce float64 `json:"bid_force" yaml:"bid_force"`
}

type ForceIndex struct {
	Last     float64 `json:"last" yaml:"last"`
	Smoothed float64 `json:"smoothed" yaml:"smoothed"`
}

type Stochastic struct {
	K    float64 `json:"k" yaml:"k"`
	D    float64 `json:"d" yaml:"d"`
	Slow float64 `json:"slow" yaml:"slow"`
}

// Volatility is filled once ATR is ready. ADX needs about twice the
// history and stays nil until then.
type Volatility struct {
	ATR     float64         `json:"atr" yaml:"atr"`
	Channel indicators.Band `json:"atr_channel" yaml:"atr_channel"`
	ADX     *float64        `json:"adx,omitempty" yaml:"adx,omitempty"`
}

// Builder computes reports. The zero value is not usable; call NewBuilder.
type Builder struct {
	cfg *config.Config
	log *slog.Logger
	now func() time.Time
}

func NewBuilder(cfg *config.Config, log *slog.Logger) *Builder {
	return &Builder{cfg: cfg, log: log, now: time.Now}
}

// Build evaluates every indicator over bars. It fails only when bars is
// empty; indicators that need more history than bars provides, or that hit
// a degenerate window, are skipped and named in Report.Skipped.
func (b *Builder) Build(bars []market.Candle) (*Report, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("build report: %w", indicators.ErrEmptyData)
	}

	created := b.now().UTC()
	r := &Report{
		ID:        id.At(created),
		CreatedAt: created,
		Bars:      len(bars),
		From:      bars[0].Time,
		To:        bars[0].Time,
	}
	for _, c := range bars {
		r.From = min(r.From, c.Time)
		r.To = max(r.To, c.Time)
	}

	sma, err := indicators.SMA(bars)
	if err != nil {
		return nil, err
	}
	r.SMA = sma.Value()

	ema, err := indicators.EMA(bars)
	if err != nil {
		return nil, err
	}
	r.EMA = ema.Value()
	r.Envelope = indicators.EnvelopeFrom(ema, b.cfg.Envelope.Coefficient).Band()

	bb, err := indicators.BollingerBand(bars, b.cfg.Bollinger.Multiplier, b.cfg.Bollinger.ExponentialMid)
	if err != nil {
		return nil, err
	}
	r.Bollinger = bb.Band()

	er, err := indicators.NewElderRay(bars)
	if err != nil {
		return nil, err
	}
	r.ElderRay = ElderRay{AskForce: er.AskForce(), BidForce: er.BidForce()}

	b.streaming(r, bars)
	b.macd(r, bars)
	b.forceIndex(r, bars)
	b.stochastic(r, bars)
	b.volatility(r, bars)

	b.log.Debug("report built",
		slog.String("id", r.ID),
		slog.Int("bars", r.Bars),
		slog.Any("skipped", r.Skipped),
	)
	return r, nil
}

func (b *Builder) skip(r *Report, name string, err error) {
	b.log.Debug("indicator skipped", slog.String("indicator", name), slog.String("reason", err.Error()))
	r.Skipped = append(r.Skipped, name)
}

func (b *Builder) streaming(r *Report, bars []market.Candle) {
	scope := b.cfg.MovingAverage.Scope
	sma := indicators.NewSMA(scope)
	ema := indicators.NewEMA(scope)
	for _, c := range sortedBars(bars) {
		sma.Update(c)
		ema.Update(c)
	}
	if !sma.Ready() {
		b.skip(r, sma.Name(), fmt.Errorf("need %d bars: %w", sma.Warmup(), indicators.ErrDataNotEnough))
		b.skip(r, ema.Name(), fmt.Errorf("need %d bars: %w", ema.Warmup(), indicators.ErrDataNotEnough))
		return
	}
	s, e := sma.Value(), ema.Value()
	r.StreamingSMA = &s
	r.StreamingEMA = &e
}

func (b *Builder) macd(r *Report, bars []market.Candle) {
	m, err := indicators.NewMACD(bars)
	if err != nil {
		b.skip(r, "macd", err)
		return
	}
	r.MACD = &MACD{Fast: m.Fast(), Slow: m.Slow(), Histogram: m.Histogram()}
}

func (b *Builder) forceIndex(r *Report, bars []market.Candle) {
	series, err := indicators.ForceIndexSeries(bars)
	if err != nil {
		b.skip(r, "force_index", err)
		return
	}
	n := min(b.cfg.ForceIndex.Smoothing, len(series))
	smoothed, err := indicators.EMA(series[len(series)-n:])
	if err != nil {
		b.skip(r, "force_index", err)
		return
	}
	r.ForceIndex = &ForceIndex{Last: series[len(series)-1].Value(), Smoothed: smoothed.Value()}
}

func (b *Builder) stochastic(r *Report, bars []market.Candle) {
	window := b.cfg.Stochastic.Window
	ks, err := indicators.RollingFastStochastic(bars, window)
	if err != nil {
		b.skip(r, "stochastic", err)
		return
	}
	n := min(b.cfg.Stochastic.Smoothing, len(ks))
	d, err := indicators.IntoSlow(ks[len(ks)-n:])
	if err != nil {
		b.skip(r, "stochastic", err)
		return
	}
	sorted := sortedBars(bars)
	slow, err := indicators.SlowStochastic(sorted[len(sorted)-window:])
	if err != nil {
		b.skip(r, "stochastic", err)
		return
	}
	r.Stochastic = &Stochastic{K: ks[len(ks)-1].Value(), D: d.Value(), Slow: slow.Value()}
}

func (b *Builder) volatility(r *Report, bars []market.Candle) {
	period := b.cfg.Volatility.Period
	adx := indicators.NewADX(period)

	atr, err := indicators.ATR(bars, period)
	if err != nil {
		b.skip(r, "atr", err)
		b.skip(r, adx.Name(), err)
		return
	}
	ch, err := indicators.ATRChannel(bars, period, b.cfg.Volatility.ATRMultiplier)
	if err != nil {
		b.skip(r, "atr", err)
		b.skip(r, adx.Name(), err)
		return
	}
	r.Volatility = &Volatility{ATR: atr, Channel: ch.Band()}

	for _, c := range sortedBars(bars) {
		adx.Update(c)
	}
	if !adx.Ready() {
		b.skip(r, adx.Name(), fmt.Errorf("need %d bars: %w", adx.Warmup(), indicators.ErrDataNotEnough))
		return
	}
	v := adx.Value()
	r.Volatility.ADX = &v
}

// Encode writes r as "yaml" or "json".
func (r *Report) Encode(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
