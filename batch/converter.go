package batch

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arloliu/jsonxl/compress"
	"github.com/arloliu/jsonxl/format"
	"github.com/arloliu/jsonxl/internal/options"
	"github.com/arloliu/jsonxl/sheet"
	"github.com/arloliu/jsonxl/tabular"
	"github.com/arloliu/jsonxl/value"
)

// Pair is one input document and the workbook it converts to.
type Pair struct {
	In  string
	Out string
}

// Converter turns JSON files into xlsx workbooks.
type Converter struct {
	cfg       Config
	projector *tabular.Projector
}

// NewConverter creates a converter. A nil projector means tabular defaults.
func NewConverter(projector *tabular.Projector, opts ...Option) (*Converter, error) {
	c := &Converter{cfg: defaultConfig(), projector: projector}
	if err := options.Apply(&c.cfg, opts...); err != nil {
		return nil, err
	}

	if c.projector == nil {
		p, err := tabular.NewProjector(tabular.WithLogger(c.cfg.Logger))
		if err != nil {
			return nil, err
		}
		c.projector = p
	}

	return c, nil
}

// File converts in to the workbook out.
func (c *Converter) File(in, out string) error {
	err := c.file(in, out)
	c.cfg.Metrics.fileDone(ToolConverter, err)
	if err != nil {
		c.cfg.Logger.Error("conversion failed",
			zap.String("path", in),
			zap.String("output", out),
			zap.Error(err))

		return err
	}

	return nil
}

func (c *Converter) file(in, out string) error {
	if !format.IsJSON(in) {
		c.cfg.Logger.Warn("input extension is not .json, it may not be a JSON document", zap.String("path", in))
	}

	codec, err := compress.ForPath(in)
	if err != nil {
		return err
	}

	c.cfg.Logger.Info("reading JSON file", zap.String("path", in))

	raw, err := c.cfg.FS.ReadFile(in)
	if err != nil {
		return err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	doc, err := value.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	proj, err := c.projector.Project(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	c.cfg.Logger.Info("rows projected",
		zap.String("path", in),
		zap.Stringer("strategy", proj.Strategy),
		zap.Int("rows", len(proj.Rows)))

	opts := sheet.Options{SheetName: c.cfg.SheetName}
	if c.cfg.AutoWidth {
		opts.ColumnWidths = tabular.ColumnWidths(proj.Rows)
	}

	book, err := c.cfg.Writer.Write(proj.Rows, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", out, err)
	}

	if err := c.cfg.FS.WriteFile(out, book, DefaultFileMode); err != nil {
		return err
	}

	c.cfg.Metrics.addRows(len(proj.Rows))
	c.cfg.Logger.Info("workbook written", zap.String("output", out), zap.Int("rows", len(proj.Rows)))

	return nil
}

// Dir converts every JSON file directly inside inDir into
// outDir/<name>.xlsx, creating outDir first. An inDir without JSON files
// yields a zero Result.
func (c *Converter) Dir(inDir, outDir string) (Result, error) {
	if err := c.cfg.FS.MkdirAll(outDir); err != nil {
		return Result{}, err
	}

	files, err := c.cfg.FS.ListJSON(inDir)
	if err != nil {
		c.cfg.Logger.Error("failed to list directory", zap.String("dir", inDir), zap.Error(err))
		return Result{}, err
	}

	if len(files) == 0 {
		c.cfg.Logger.Info("no JSON files in directory", zap.String("dir", inDir))
		return Result{}, nil
	}

	c.cfg.Logger.Info("converting directory",
		zap.String("dir", inDir),
		zap.String("output", outDir),
		zap.Int("files", len(files)))

	var res Result
	for _, f := range files {
		res.record(f, c.File(f, filepath.Join(outDir, format.WorkbookName(f))))
	}

	c.logResult(res)

	return res, nil
}

// Pairs converts each pair in order. A pair whose input is a directory is
// converted with Dir; a directory that cannot be listed counts as one failure.
func (c *Converter) Pairs(pairs []Pair) Result {
	var res Result
	for _, p := range pairs {
		isDir, err := c.cfg.FS.IsDir(p.In)
		if err == nil && isDir {
			sub, err := c.Dir(p.In, p.Out)
			if err != nil {
				res.record(p.In, err)
				continue
			}
			res.Merge(sub)

			continue
		}

		c.cfg.Logger.Info("converting file", zap.String("path", p.In), zap.String("output", p.Out))
		res.record(p.In, c.File(p.In, p.Out))
	}

	c.logResult(res)

	return res
}

func (c *Converter) logResult(res Result) {
	c.cfg.Logger.Info("conversion finished",
		zap.Int("success", res.Success),
		zap.Int("failed", res.Failed))
}
