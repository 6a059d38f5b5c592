package timeseries

import (
	"github.com/arloliu/jsonxl/internal/options"
	"github.com/arloliu/jsonxl/value"
)

// Strategy identifies which extraction strategy produced rows.
type Strategy uint8

const (
	StrategyNone Strategy = iota
	StrategyAzure
	StrategyDetected
)

func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyAzure:
		return "azure"
	case StrategyDetected:
		return "detected"
	default:
		return "unknown"
	}
}

// Config holds extractor settings.
type Config struct {
	Mode ScanMode
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithCollectAll makes Detect collect every qualifying array.
func WithCollectAll() Option {
	return options.NoError(func(cfg *Config) {
		cfg.Mode = ScanAll
	})
}

// WithScanMode sets the Detect scan mode.
func WithScanMode(mode ScanMode) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Mode = mode
	})
}

// Extractor runs the Azure strategy and then Detect.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor. The default scan mode is ScanFirst.
func NewExtractor(opts ...Option) (*Extractor, error) {
	e := &Extractor{cfg: Config{Mode: ScanFirst}}
	if err := options.Apply(&e.cfg, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Extract returns the rows of the first strategy that yields any, and which
// strategy that was. A document with no time series shape yields no rows and
// StrategyNone.
func (e *Extractor) Extract(doc value.Value) ([]*value.Object, Strategy) {
	if rows := Azure(doc); len(rows) > 0 {
		return rows, StrategyAzure
	}
	if rows := Detect(doc, e.cfg.Mode); len(rows) > 0 {
		return rows, StrategyDetected
	}

	return nil, StrategyNone
}

// Extract runs a default Extractor over doc.
func Extract(doc value.Value) []*value.Object {
	e := &Extractor{cfg: Config{Mode: ScanFirst}}
	rows, _ := e.Extract(doc)

	return rows
}
