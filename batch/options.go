package batch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/jsonxl/internal/options"
	"github.com/arloliu/jsonxl/sheet"
)

// Config holds driver settings shared by Anonymizer and Converter.
// The sheet settings only affect Converter.
type Config struct {
	FS        FS
	Logger    *zap.Logger
	Metrics   *Metrics
	Writer    sheet.Writer
	SheetName string
	AutoWidth bool
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{
		FS:        OSFS{},
		Logger:    zap.NewNop(),
		Writer:    sheet.NewXLSXWriter(),
		SheetName: sheet.DefaultSheetName,
		AutoWidth: true,
	}
}

// WithFS replaces the local filesystem.
func WithFS(fsys FS) Option {
	return options.New(func(cfg *Config) error {
		if fsys == nil {
			return fmt.Errorf("filesystem cannot be nil")
		}
		cfg.FS = fsys

		return nil
	})
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
		}
	})
}

// WithMetrics records counters into m.
func WithMetrics(m *Metrics) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Metrics = m
	})
}

// WithWriter replaces the xlsx writer.
func WithWriter(w sheet.Writer) Option {
	return options.New(func(cfg *Config) error {
		if w == nil {
			return fmt.Errorf("sheet writer cannot be nil")
		}
		cfg.Writer = w

		return nil
	})
}

// WithSheetName sets the worksheet name of generated workbooks.
func WithSheetName(name string) Option {
	return options.New(func(cfg *Config) error {
		if name == "" {
			return fmt.Errorf("sheet name cannot be empty")
		}
		cfg.SheetName = name

		return nil
	})
}

// WithAutoWidth enables or disables header based column widths.
func WithAutoWidth(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		cfg.AutoWidth = enabled
	})
}
