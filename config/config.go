package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the indicator parameters used by reports and the CLI.
type Config struct {
	Log           LogConfig           `json:"log" yaml:"log"`
	MovingAverage MovingAverageConfig `json:"moving_average" yaml:"moving_average"`
	Envelope      EnvelopeConfig      `json:"envelope" yaml:"envelope"`
	Bollinger     BollingerConfig     `json:"bollinger" yaml:"bollinger"`
	Stochastic    StochasticConfig    `json:"stochastic" yaml:"stochastic"`
	ForceIndex    ForceIndexConfig    `json:"force_index" yaml:"force_index"`
	Volatility    VolatilityConfig    `json:"volatility" yaml:"volatility"`
	Output        OutputConfig        `json:"output" yaml:"output"`
}

type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format string `json:"format" yaml:"format"` // json or text
}

// MovingAverageConfig sets the window the streaming averages run over.
type MovingAverageConfig struct {
	Scope int `json:"scope" yaml:"scope"`
}

type EnvelopeConfig struct {
	Coefficient float64 `json:"coefficient" yaml:"coefficient"`
}

type BollingerConfig struct {
	Multiplier     float64 `json:"multiplier" yaml:"multiplier"`
	ExponentialMid bool    `json:"exponential_mid" yaml:"exponential_mid"`
}

// StochasticConfig sets the %K lookback and how many %K samples are
// averaged into %D.
type StochasticConfig struct {
	Window    int `json:"window" yaml:"window"`
	Smoothing int `json:"smoothing" yaml:"smoothing"`
}

type ForceIndexConfig struct {
	Smoothing int `json:"smoothing" yaml:"smoothing"`
}

// VolatilityConfig drives ATR, the ATR channel and ADX.
type VolatilityConfig struct {
	Period        int     `json:"period" yaml:"period"`
	ATRMultiplier float64 `json:"atr_multiplier" yaml:"atr_multiplier"`
}

type OutputConfig struct {
	Format string `json:"format" yaml:"format"` // yaml or json
}

// LoadFromFile loads configuration from a file (YAML, falling back to JSON)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (YAML for .yaml/.yml, JSON otherwise)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be 'json' or 'text'")
	}
	if c.MovingAverage.Scope <= 0 {
		return fmt.Errorf("moving_average.scope must be positive")
	}
	if c.Envelope.Coefficient < 0 || c.Envelope.Coefficient >= 1 {
		return fmt.Errorf("envelope.coefficient must be between 0 and 1")
	}
	if c.Bollinger.Multiplier <= 0 {
		return fmt.Errorf("bollinger.multiplier must be positive")
	}
	if c.Stochastic.Window <= 0 {
		return fmt.Errorf("stochastic.window must be positive")
	}
	if c.Stochastic.Smoothing <= 0 {
		return fmt.Errorf("stochastic.smoothing must be positive")
	}
	if c.ForceIndex.Smoothing <= 0 {
		return fmt.Errorf("force_index.smoothing must be positive")
	}
	if c.Volatility.Period <= 0 {
		return fmt.Errorf("volatility.period must be positive")
	}
	if c.Volatility.ATRMultiplier <= 0 {
		return fmt.Errorf("volatility.atr_multiplier must be positive")
	}
	if c.Output.Format != "yaml" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be 'yaml' or 'json'")
	}
	return nil
}

// Default returns a configuration with conventional indicator settings.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		MovingAverage: MovingAverageConfig{Scope: 20},
		Envelope:      EnvelopeConfig{Coefficient: 0.1},
		Bollinger: BollingerConfig{
			Multiplier:     2,
			ExponentialMid: true,
		},
		Stochastic: StochasticConfig{
			Window:    14,
			Smoothing: 3,
		},
		ForceIndex: ForceIndexConfig{Smoothing: 13},
		Volatility: VolatilityConfig{
			Period:        14,
			ATRMultiplier: 2,
		},
		Output: OutputConfig{Format: "yaml"},
	}
}
