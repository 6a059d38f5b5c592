package batch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/jsonxl/anonymize"
	"github.com/arloliu/jsonxl/compress"
	"github.com/arloliu/jsonxl/internal/options"
	"github.com/arloliu/jsonxl/value"
)

// Anonymizer rewrites JSON files in place with their sensitive fields
// anonymized. Compressed files are written back in the same compression.
type Anonymizer struct {
	cfg  Config
	anon *anonymize.Anonymizer
}

// NewAnonymizer creates a driver around anon. All files of one driver share
// anon's mapping.
func NewAnonymizer(anon *anonymize.Anonymizer, opts ...Option) (*Anonymizer, error) {
	if anon == nil {
		return nil, fmt.Errorf("anonymizer cannot be nil")
	}

	a := &Anonymizer{cfg: defaultConfig(), anon: anon}
	if err := options.Apply(&a.cfg, opts...); err != nil {
		return nil, err
	}

	return a, nil
}

// File anonymizes one file. On any error the file is left untouched.
func (a *Anonymizer) File(path string) error {
	a.cfg.Logger.Info("processing file", zap.String("path", path))

	err := a.file(path)
	a.cfg.Metrics.fileDone(ToolAnonymizer, err)
	if err != nil {
		a.cfg.Logger.Error("failed to anonymize file", zap.String("path", path), zap.Error(err))
		return err
	}

	a.cfg.Logger.Info("file processed", zap.String("path", path))

	return nil
}

func (a *Anonymizer) file(path string) error {
	codec, err := compress.ForPath(path)
	if err != nil {
		return err
	}

	raw, err := a.cfg.FS.ReadFile(path)
	if err != nil {
		return err
	}

	data, err := codec.Decompress(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	doc, err := value.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	before := a.anon.Generator().Stats()
	out := a.anon.Anonymize(doc)
	after := a.anon.Generator().Stats()

	encoded, err := codec.Compress(value.MarshalIndent(out))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	if err := a.cfg.FS.WriteFile(path, encoded, DefaultFileMode); err != nil {
		return err
	}

	a.cfg.Metrics.addAnonymized(
		(after.Generated+after.CacheHits)-(before.Generated+before.CacheHits),
		after.Collisions-before.Collisions,
	)

	return nil
}

// Dir anonymizes every JSON file directly inside dir. Individual failures
// are counted in the Result; only an unreadable dir returns an error.
func (a *Anonymizer) Dir(dir string) (Result, error) {
	a.cfg.Logger.Info("processing directory", zap.String("dir", dir))

	files, err := a.cfg.FS.ListJSON(dir)
	if err != nil {
		a.cfg.Logger.Error("failed to list directory", zap.String("dir", dir), zap.Error(err))
		return Result{}, err
	}

	a.cfg.Logger.Info("found JSON files", zap.String("dir", dir), zap.Int("count", len(files)))

	var res Result
	for _, f := range files {
		res.record(f, a.File(f))
	}

	stats := a.anon.Generator().Stats()
	a.cfg.Logger.Info("directory processed",
		zap.String("dir", dir),
		zap.Int("success", res.Success),
		zap.Int("failed", res.Failed),
		zap.Int("generated", stats.Generated),
		zap.Int("collisions", stats.Collisions))

	return res, nil
}
