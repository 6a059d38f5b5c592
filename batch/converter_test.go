package batch

import (
	"bytes"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap/zaptest"

	"github.com/arloliu/jsonxl/compress"
	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/tabular"
)

const seriesDoc = `{"host":"h1","points":[{"time":"t1","cpu":1.5},{"time":"t2","cpu":2}]}`

// failingFS rejects writes to one path.
type failingFS struct {
	OSFS
	failOn string
}

func (f failingFS) WriteFile(path string, data []byte, perm iofs.FileMode) error {
	if path == f.failOn {
		return fmt.Errorf("%w: %s: disk full", errs.ErrWriteFailed, path)
	}

	return f.OSFS.WriteFile(path, data, perm)
}

func newConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()

	c, err := NewConverter(nil, append([]Option{WithLogger(zaptest.NewLogger(t))}, opts...)...)
	require.NoError(t, err)

	return c
}

func readRows(t *testing.T, path, sheetName string) [][]string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)

	return rows
}

func TestConverter_File(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "metrics.json")
	out := filepath.Join(dir, "metrics.xlsx")
	writeFile(t, in, seriesDoc)

	metrics := NewMetrics()
	c := newConverter(t, WithMetrics(metrics))
	require.NoError(t, c.File(in, out))

	require.Equal(t, [][]string{
		{"host", "time", "cpu", "pointsIndex"},
		{"h1", "t1", "1.5", "0"},
		{"h1", "t2", "2", "1"},
	}, readRows(t, out, "Data"))

	require.InDelta(t, 2, testutil.ToFloat64(metrics.rows), 0)
	require.InDelta(t, 1, testutil.ToFloat64(metrics.files.WithLabelValues(ToolConverter, resultSuccess)), 0)
}

func TestConverter_File_SheetOptions(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.json")
	out := filepath.Join(dir, "doc.xlsx")
	writeFile(t, in, `[{"a":1}]`)

	c := newConverter(t, WithSheetName("MyData"), WithAutoWidth(false))
	require.NoError(t, c.File(in, out))
	require.Equal(t, [][]string{{"index", "a"}, {"0", "1"}}, readRows(t, out, "MyData"))
}

func TestConverter_File_Compressed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "metrics.json.lz4")
	out := filepath.Join(dir, "metrics.xlsx")

	compressed, err := compress.NewLZ4Compressor().Compress([]byte(seriesDoc))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(in, compressed, 0o600))

	require.NoError(t, newConverter(t).File(in, out))
	require.Len(t, readRows(t, out, "Data"), 3)
}

func TestConverter_File_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	writeFile(t, bad, `{"a":`)

	c := newConverter(t)

	err := c.File(filepath.Join(dir, "missing.json"), filepath.Join(dir, "x.xlsx"))
	require.ErrorIs(t, err, errs.ErrFileNotFound)

	err = c.File(bad, filepath.Join(dir, "bad.xlsx"))
	require.ErrorIs(t, err, errs.ErrInvalidJSON)
	require.NoFileExists(t, filepath.Join(dir, "bad.xlsx"))

	c = newConverter(t, WithSheetName("bad/name"))
	good := filepath.Join(dir, "good.json")
	writeFile(t, good, `{}`)
	err = c.File(good, filepath.Join(dir, "good.xlsx"))
	require.ErrorIs(t, err, errs.ErrInvalidSheetName)
}

func TestConverter_Dir(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "nested", "outputs")

	writeFile(t, filepath.Join(in, "one.json"), seriesDoc)
	writeFile(t, filepath.Join(in, "two.json"), `{"broken":`)
	writeFile(t, filepath.Join(in, "three.JSON"), `{"a":{"b":1}}`)
	writeFile(t, filepath.Join(in, "readme.md"), `# not json`)

	res, err := newConverter(t).Dir(in, out)
	require.NoError(t, err)
	require.Equal(t, 2, res.Success)
	require.Equal(t, 1, res.Failed)
	require.Equal(t, filepath.Join(in, "two.json"), res.Failures[0].Path)

	require.FileExists(t, filepath.Join(out, "one.xlsx"))
	require.FileExists(t, filepath.Join(out, "three.xlsx"))
	require.NoFileExists(t, filepath.Join(out, "two.xlsx"))
	require.Equal(t, [][]string{{"a.b"}, {"1"}}, readRows(t, filepath.Join(out, "three.xlsx"), "Data"))
}

func TestConverter_Dir_Empty(t *testing.T) {
	out := filepath.Join(t.TempDir(), "outputs")

	res, err := newConverter(t).Dir(t.TempDir(), out)
	require.NoError(t, err)
	require.Zero(t, res.Total())
	require.DirExists(t, out)
}

func TestConverter_Dir_WriteFailureContinues(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "a.json"), `{"x":1}`)
	writeFile(t, filepath.Join(in, "b.json"), `{"x":2}`)

	c := newConverter(t, WithFS(failingFS{failOn: filepath.Join(out, "a.xlsx")}))
	res, err := c.Dir(in, out)
	require.NoError(t, err)
	require.Equal(t, 1, res.Success)
	require.Equal(t, 1, res.Failed)
	require.ErrorIs(t, res.Failures[0].Err, errs.ErrWriteFailed)
	require.FileExists(t, filepath.Join(out, "b.xlsx"))
}

func TestConverter_Pairs(t *testing.T) {
	dir := t.TempDir()
	inDir := filepath.Join(dir, "in")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.Mkdir(inDir, 0o755))
	writeFile(t, filepath.Join(inDir, "d.json"), `{"k":"v"}`)
	writeFile(t, filepath.Join(dir, "f.json"), `{"k":"v"}`)

	res := newConverter(t).Pairs([]Pair{
		{In: filepath.Join(dir, "f.json"), Out: filepath.Join(dir, "f.xlsx")},
		{In: filepath.Join(dir, "missing.json"), Out: filepath.Join(dir, "m.xlsx")},
		{In: inDir, Out: outDir},
	})

	require.Equal(t, 2, res.Success)
	require.Equal(t, 1, res.Failed)
	require.ErrorIs(t, res.Err(), errs.ErrFileNotFound)
	require.FileExists(t, filepath.Join(dir, "f.xlsx"))
	require.FileExists(t, filepath.Join(outDir, "d.xlsx"))
}

func TestConverter_CustomProjector(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "wide.json")
	out := filepath.Join(dir, "wide.xlsx")
	writeFile(t, in, `{"a":1,"b":2,"c":3}`)

	p, err := tabular.NewProjector(tabular.WithMaxColumns(2))
	require.NoError(t, err)
	c, err := NewConverter(p)
	require.NoError(t, err)

	require.NoError(t, c.File(in, out))
	require.Equal(t, [][]string{{"a", "b", "c"}, {"1", "2", "3"}}, readRows(t, out, "Data"))
}

func TestNewConverter_InvalidOptions(t *testing.T) {
	_, err := NewConverter(nil, WithSheetName(""))
	require.Error(t, err)

	_, err = NewConverter(nil, WithWriter(nil))
	require.Error(t, err)
}
