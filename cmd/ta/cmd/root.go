package cmd

import (
	"log/slog"

	"github.com/rustyeddy/ta/config"
	"github.com/rustyeddy/ta/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string

	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ta",
	Short: "Technical analysis indicators for OHLCV bars and ticks",
	Long: `ta computes classic technical analysis indicators from time-stamped
market observations.

It provides:
  - Simple and exponential moving averages, batch and streaming
  - Envelope and Bollinger channels
  - MACD, Elder Ray and Force Index
  - Fast and slow stochastic oscillators

Indicator parameters come from a YAML or JSON config file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default settings when empty)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log.level from the config")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg = config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	l, err := logger.New(cmd.ErrOrStderr(), "ta", cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	log = l
	log.Debug("config loaded", slog.String("file", cfgFile))
	return nil
}
