// Package tabular projects parsed JSON documents onto spreadsheet rows.
//
// Projector.Project picks the first applicable strategy:
//
//  1. a custom Processor, when one is configured;
//  2. time series rows from package timeseries;
//  3. a root array, one flattened row per element plus an "index" column;
//  4. the largest top-level array field, one row per element carrying the
//     flattened non-array top-level fields and a "<field>Index" column;
//  5. the whole document flattened into a single row.
package tabular

import (
	"fmt"
	"unicode/utf16"

	"go.uber.org/zap"

	"github.com/arloliu/jsonxl/flatten"
	"github.com/arloliu/jsonxl/internal/options"
	"github.com/arloliu/jsonxl/timeseries"
	"github.com/arloliu/jsonxl/value"
)

const (
	// DefaultMaxColumns is the column count above which a single flattened row
	// is reported as wide.
	DefaultMaxColumns = 100
	// IndexKey names the element index column of a root array.
	IndexKey = "index"

	minColumnWidth     = 10
	columnWidthPadding = 2
)

// Strategy identifies how a projection was produced.
type Strategy uint8

const (
	StrategyCustom Strategy = iota + 1
	StrategyTimeSeries
	StrategyRootArray
	StrategyArrayField
	StrategyDocument
)

func (s Strategy) String() string {
	switch s {
	case StrategyCustom:
		return "custom"
	case StrategyTimeSeries:
		return "timeseries"
	case StrategyRootArray:
		return "root-array"
	case StrategyArrayField:
		return "array-field"
	case StrategyDocument:
		return "document"
	default:
		return "unknown"
	}
}

// Processor replaces the built-in strategies with a caller-supplied one.
type Processor func(doc value.Value) ([]*value.Object, error)

// Projection is the result of projecting one document.
type Projection struct {
	Rows     []*value.Object
	Strategy Strategy
	// Series is the time series strategy when Strategy is StrategyTimeSeries.
	Series timeseries.Strategy
	// Field is the expanded top-level field when Strategy is StrategyArrayField.
	Field string
	// Wide is set when a single document row exceeds the configured MaxColumns.
	Wide bool
}

// Config holds projector settings.
type Config struct {
	MaxColumns int
	ScanMode   timeseries.ScanMode
	Processor  Processor
	Logger     *zap.Logger
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithMaxColumns sets the wide-row warning threshold.
func WithMaxColumns(n int) Option {
	return options.New(func(cfg *Config) error {
		if n <= 0 {
			return fmt.Errorf("max columns must be positive, got %d", n)
		}
		cfg.MaxColumns = n

		return nil
	})
}

// WithCollectAllSeries makes time series detection collect every qualifying array.
func WithCollectAllSeries(enabled bool) Option {
	return options.NoError(func(cfg *Config) {
		if enabled {
			cfg.ScanMode = timeseries.ScanAll
		} else {
			cfg.ScanMode = timeseries.ScanFirst
		}
	})
}

// WithProcessor installs a custom processor.
func WithProcessor(p Processor) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Processor = p
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

// Projector turns documents into rows. It holds no per-document state.
type Projector struct {
	cfg       Config
	extractor *timeseries.Extractor
}

// NewProjector creates a projector.
func NewProjector(opts ...Option) (*Projector, error) {
	p := &Projector{
		cfg: Config{
			MaxColumns: DefaultMaxColumns,
			ScanMode:   timeseries.ScanFirst,
			Logger:     zap.NewNop(),
		},
	}
	if err := options.Apply(&p.cfg, opts...); err != nil {
		return nil, err
	}

	extractor, err := timeseries.NewExtractor(timeseries.WithScanMode(p.cfg.ScanMode))
	if err != nil {
		return nil, err
	}
	p.extractor = extractor

	return p, nil
}

// Project converts doc to rows. Only a custom Processor can fail.
func (p *Projector) Project(doc value.Value) (Projection, error) {
	if p.cfg.Processor != nil {
		rows, err := p.cfg.Processor(doc)
		if err != nil {
			return Projection{}, fmt.Errorf("custom processor: %w", err)
		}

		return Projection{Rows: rows, Strategy: StrategyCustom}, nil
	}

	if rows, series := p.extractor.Extract(doc); len(rows) > 0 {
		p.cfg.Logger.Debug("time series detected",
			zap.Stringer("series", series),
			zap.Int("rows", len(rows)))

		return Projection{Rows: rows, Strategy: StrategyTimeSeries, Series: series}, nil
	}

	p.cfg.Logger.Debug("no time series detected, flattening document")

	if elems, ok := doc.AsArray(); ok {
		return Projection{Rows: rootArrayRows(elems), Strategy: StrategyRootArray}, nil
	}

	if obj, ok := doc.AsObject(); ok {
		if field, elems, ok := largestArrayField(obj); ok {
			p.cfg.Logger.Info("expanding top-level array field",
				zap.String("field", field),
				zap.Int("rows", len(elems)))

			return Projection{
				Rows:     arrayFieldRows(obj, field, elems),
				Strategy: StrategyArrayField,
				Field:    field,
			}, nil
		}
	}

	row := flatten.Flatten(doc, "")
	proj := Projection{Rows: []*value.Object{row}, Strategy: StrategyDocument}
	if row.Len() > p.cfg.MaxColumns {
		proj.Wide = true
		p.cfg.Logger.Warn("flattened row has too many columns",
			zap.Int("columns", row.Len()),
			zap.Int("max_columns", p.cfg.MaxColumns))
	}

	return proj, nil
}

func rootArrayRows(elems []value.Value) []*value.Object {
	rows := make([]*value.Object, len(elems))
	for i, e := range elems {
		row := value.NewObject()
		row.Set(IndexKey, value.Int(int64(i)))
		row.Merge(flatten.Flatten(e, ""))
		rows[i] = row
	}

	return rows
}

// largestArrayField returns the top-level array field with the most elements.
// Ties go to the field that comes first.
func largestArrayField(obj *value.Object) (string, []value.Value, bool) {
	var (
		best     string
		bestElem []value.Value
		found    bool
	)
	for key, v := range obj.All() {
		elems, ok := v.AsArray()
		if !ok {
			continue
		}
		if !found || len(elems) > len(bestElem) {
			best, bestElem, found = key, elems, true
		}
	}

	return best, bestElem, found
}

func arrayFieldRows(obj *value.Object, field string, elems []value.Value) []*value.Object {
	shared := flatten.Fields(obj, func(_ string, v value.Value) bool {
		return v.IsArray()
	})
	indexKey := field + timeseries.IndexSuffix

	rows := make([]*value.Object, len(elems))
	for i, e := range elems {
		row := value.NewObjectSize(shared.Len() + 1)
		row.Set(indexKey, value.Int(int64(i)))
		row.Merge(shared)
		row.Merge(flatten.Flatten(e, ""))
		rows[i] = row
	}

	return rows
}

// ColumnWidths returns max(len(header)+2, 10) for every key of the first row,
// with lengths counted in UTF-16 code units. It returns nil for no rows.
func ColumnWidths(rows []*value.Object) []float64 {
	if len(rows) == 0 {
		return nil
	}

	keys := rows[0].Keys()
	widths := make([]float64, len(keys))
	for i, k := range keys {
		w := len(utf16.Encode([]rune(k))) + columnWidthPadding
		widths[i] = float64(max(w, minColumnWidth))
	}

	return widths
}
