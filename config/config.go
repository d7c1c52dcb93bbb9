package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	ServiceName string           `yaml:"service_name"`
	LogLevel    string           `yaml:"log_level"`
	Instrument  InstrumentConfig `yaml:"instrument"`
}

type InstrumentConfig struct {
	Symbol          string `yaml:"symbol"`
	TickSize        string `yaml:"tick_size"`
	InitialCapacity int    `yaml:"initial_capacity"`
}

// Tick parses TickSize. It defaults to 1 when unset.
func (c InstrumentConfig) Tick() (decimal.Decimal, error) {
	if c.TickSize == "" {
		return decimal.NewFromInt(1), nil
	}

	tick, err := decimal.NewFromString(c.TickSize)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse tick_size %q: %w", c.TickSize, err)
	}
	if !tick.IsPositive() {
		return decimal.Zero, fmt.Errorf("tick_size must be positive, got %s", tick)
	}
	return tick, nil
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.readFromFile",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, fmt.Errorf("read config: %w", err)
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if _, err := cfg.Instrument.Tick(); err != nil {
		sugar.Error("Invalid instrument config")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
