package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rustyeddy/ta/indicators"
	"github.com/rustyeddy/ta/internal/fixtures"
	"github.com/rustyeddy/ta/market"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run every indicator over the reference series",
	Long: `Evaluates each indicator over the built-in reference series and prints
the results. Useful as a smoke test and as a worked example.

Series:
  prices      - seven daily closes
  long prices - thirty daily closes (MACD, Elder Ray)
  bars        - seven daily OHLCV bars (channels, stochastic, force index)`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	log.Info("demo started")

	steps := []struct {
		name string
		run  func(io.Writer) error
	}{
		{"moving averages", demoMovingAverages},
		{"channels", demoChannels},
		{"macd", demoMACD},
		{"elder ray", demoElderRay},
		{"force index", demoForceIndex},
		{"stochastic", demoStochastic},
		{"volatility", demoVolatility},
	}
	for _, s := range steps {
		fmt.Fprintf(out, "=== %s ===\n", s.name)
		if err := s.run(out); err != nil {
			return fmt.Errorf("%s: %w", s.name, err)
		}
		fmt.Fprintln(out)
		log.Debug("demo step done", slog.String("step", s.name))
	}
	return nil
}

func demoMovingAverages(out io.Writer) error {
	prices := fixtures.Prices()
	sma, err := indicators.SMA(prices)
	if err != nil {
		return err
	}
	ema, err := indicators.EMA(prices)
	if err != nil {
		return err
	}
	next := market.Point{V: 900, W: 1, T: fixtures.Now}
	smaNext, err := indicators.SMAFrom(cfg.MovingAverage.Scope, sma, next)
	if err != nil {
		return err
	}
	emaNext, err := indicators.EMAFrom(cfg.MovingAverage.Scope, ema, next)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "SMA:  %.4f\n", sma.Value())
	fmt.Fprintf(out, "EMA:  %.4f\n", ema.Value())
	fmt.Fprintf(out, "next %.0f, scope %d -> SMA %.4f, EMA %.4f\n", next.V, cfg.MovingAverage.Scope, smaNext.Value(), emaNext.Value())
	return nil
}

func demoChannels(out io.Writer) error {
	bars := fixtures.Bars()
	env, err := indicators.EnvelopeBand(bars, cfg.Envelope.Coefficient)
	if err != nil {
		return err
	}
	bb, err := indicators.BollingerBand(bars, cfg.Bollinger.Multiplier, cfg.Bollinger.ExponentialMid)
	if err != nil {
		return err
	}
	printBand(out, env)
	printBand(out, bb)
	return nil
}

func printBand(out io.Writer, ch indicators.Channel) {
	b := ch.Band()
	fmt.Fprintf(out, "%-10s upper %.4f  mid %.4f  lower %.4f\n", ch.Kind, b.Upper, b.Mid, b.Lower)
}

func demoMACD(out io.Writer) error {
	m, err := indicators.NewMACD(fixtures.LongPrices())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "fast %.4f  slow %.4f  histogram %.4f\n", m.Fast(), m.Slow(), m.Histogram())
	return nil
}

func demoElderRay(out io.Writer) error {
	er, err := indicators.NewElderRay(fixtures.LongPrices())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "bear (ask) %.4f  bull (bid) %.4f\n", er.AskForce(), er.BidForce())
	return nil
}

func demoForceIndex(out io.Writer) error {
	series, err := indicators.ForceIndexSeries(fixtures.Bars())
	if err != nil {
		return err
	}
	for _, fi := range series {
		fmt.Fprintf(out, "%s  %.0f\n", fi.EpochTime(), fi.Value())
	}
	smoothed, err := indicators.EMA(series)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "smoothed %.4f\n", smoothed.Value())
	return nil
}

func demoStochastic(out io.Writer) error {
	bars := fixtures.Bars()
	ks, err := indicators.RollingFastStochastic(bars, 3)
	if err != nil {
		return err
	}
	for _, k := range ks {
		fmt.Fprintf(out, "%%K %s  %.4f\n", k.EpochTime(), k.Value())
	}
	d, err := indicators.IntoSlow(ks)
	if err != nil {
		return err
	}
	slow, err := indicators.SlowStochastic(bars)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%%D (smoothed %%K) %.4f\n", d.Value())
	fmt.Fprintf(out, "%%D (whole window) %.4f\n", slow.Value())
	return nil
}

func demoVolatility(out io.Writer) error {
	bars := fixtures.Bars()
	atr, err := indicators.ATR(bars, 3)
	if err != nil {
		return err
	}
	ch, err := indicators.ATRChannel(bars, 3, 2)
	if err != nil {
		return err
	}
	band := ch.Band()
	fmt.Fprintf(out, "ATR(3) %.4f\n", atr)
	fmt.Fprintf(out, "atr channel  upper %.4f  mid %.4f  lower %.4f\n", band.Upper, band.Mid, band.Lower)

	adx := indicators.NewADX(3)
	for _, b := range bars {
		adx.Update(b)
	}
	fmt.Fprintf(out, "%s %.4f (ready %t)\n", adx.Name(), adx.Value(), adx.Ready())
	return nil
}
