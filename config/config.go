// Package config loads the YAML configuration shared by the jsonxl commands.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/sheet"
	"github.com/arloliu/jsonxl/tabular"
)

// DefaultAnonymizerDir is the directory jsonanon processes when none is given.
const DefaultAnonymizerDir = "./Examples"

type Config struct {
	Log        LogConfig        `yaml:"log"`
	Anonymizer AnonymizerConfig `yaml:"anonymizer"`
	Converter  ConverterConfig  `yaml:"converter"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type AnonymizerConfig struct {
	Dir string `yaml:"dir"`
}

type ConverterConfig struct {
	SheetName        string `yaml:"sheet_name"`
	DisableAutoWidth bool   `yaml:"disable_auto_width"`
	MaxColumns       int    `yaml:"max_columns"`
	CollectAllSeries bool   `yaml:"collect_all_series"`
}

type MetricsConfig struct {
	// Textfile is where counters are written after a run. Empty disables it.
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()

	return &cfg
}

// Load reads, defaults and validates the configuration at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errs.ErrInvalidConfig, path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Anonymizer.Dir == "" {
		c.Anonymizer.Dir = DefaultAnonymizerDir
	}
	if c.Converter.SheetName == "" {
		c.Converter.SheetName = sheet.DefaultSheetName
	}
	if c.Converter.MaxColumns == 0 {
		c.Converter.MaxColumns = tabular.DefaultMaxColumns
	}
}

// Validate checks values that defaults cannot repair. Flag overrides are
// applied before the commands call it again.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", errs.ErrInvalidConfig, err)
	}
	if c.Converter.MaxColumns < 0 {
		return fmt.Errorf("%w: converter.max_columns must be positive, got %d",
			errs.ErrInvalidConfig, c.Converter.MaxColumns)
	}
	if c.Converter.SheetName == "" {
		return fmt.Errorf("%w: converter.sheet_name is required", errs.ErrInvalidConfig)
	}

	return nil
}

// NewLogger builds a console logger at the configured level.
func (l LogConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log.level: %w", errs.ErrInvalidConfig, err)
	}

	zcfg := zap.NewProductionConfig()
	if l.Development {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Sampling = nil

	return zcfg.Build()
}
