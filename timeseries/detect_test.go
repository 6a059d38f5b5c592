package timeseries

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsonxl/value"
)

func TestDetect_RootArray(t *testing.T) {
	rows := Detect(value.MustParse(`[{"timestamp":"t1","v":1},{"timestamp":"t2","v":2}]`), ScanFirst)

	require.Equal(t, []string{
		`{"timestamp":"t1","v":1,"Index":0}`,
		`{"timestamp":"t2","v":2,"Index":1}`,
	}, rowsJSON(rows))
}

func TestDetect_CarriesAncestorScalars(t *testing.T) {
	doc := value.MustParse(`{
		"host": "vm-1",
		"metrics": {
			"name": "cpu",
			"tags": {"ignored": "sibling"},
			"points": [{"time": "t1", "v": 1}, {"v": 2}]
		},
		"region": "eu"
	}`)

	rows := Detect(doc, ScanFirst)

	require.Equal(t, []string{
		`{"host":"vm-1","region":"eu","metrics.name":"cpu","time":"t1","v":1,"metrics.pointsIndex":0}`,
		`{"host":"vm-1","region":"eu","metrics.name":"cpu","v":2,"metrics.pointsIndex":1}`,
	}, rowsJSON(rows))
}

func TestDetect_ElementOverridesContext(t *testing.T) {
	doc := value.MustParse(`[{"date":"d"}]`)
	require.Equal(t, []string{`{"date":"d","Index":0}`}, rowsJSON(Detect(doc, ScanFirst)))

	doc = value.MustParse(`{"v":"ctx","s":[{"date":"d","v":"own"}]}`)
	require.Equal(t, []string{`{"v":"own","date":"d","sIndex":0}`}, rowsJSON(Detect(doc, ScanFirst)))
}

func TestDetect_NestedArrayPaths(t *testing.T) {
	doc := value.MustParse(`{"groups":[{"label":"a","series":[{"createdAt":"c1"}]}]}`)

	rows := Detect(doc, ScanFirst)

	require.Equal(t, []string{
		`{"groups[0].label":"a","createdAt":"c1","groups[0].seriesIndex":0}`,
	}, rowsJSON(rows))
}

func TestDetect_FalsyTimeFieldIgnored(t *testing.T) {
	require.Empty(t, Detect(value.MustParse(`[{"time":""},{"date":0},{"timestamp":null}]`), ScanFirst))
	require.Empty(t, Detect(value.MustParse(`[1,"time",null]`), ScanFirst))
	require.Empty(t, Detect(value.MustParse(`{"a":{"b":1}}`), ScanFirst))
}

func TestDetect_NonObjectElementsStillEmitted(t *testing.T) {
	rows := Detect(value.MustParse(`[{"time":"t"},7]`), ScanFirst)

	require.Equal(t, []string{`{"time":"t","Index":0}`, `{"Index":1}`}, rowsJSON(rows))
}

func TestDetect_ConsumedArrayNotSearched(t *testing.T) {
	doc := value.MustParse(`[{"time":"t","inner":[{"time":"x"},{"time":"y"}]}]`)

	rows := Detect(doc, ScanAll)

	require.Len(t, rows, 1)
}

func TestDetect_ScanModes(t *testing.T) {
	doc := value.MustParse(`{
		"first": {"points": [{"time": "a"}]},
		"second": [{"time": "b"}, {"time": "c"}]
	}`)

	t.Run("first match stops the search", func(t *testing.T) {
		require.Equal(t, []string{`{"time":"a","first.pointsIndex":0}`}, rowsJSON(Detect(doc, ScanFirst)))
	})

	t.Run("collect all", func(t *testing.T) {
		require.Equal(t, []string{
			`{"time":"a","first.pointsIndex":0}`,
			`{"time":"b","secondIndex":0}`,
			`{"time":"c","secondIndex":1}`,
		}, rowsJSON(Detect(doc, ScanAll)))
	})
}

func TestScanMode_String(t *testing.T) {
	require.Equal(t, "first", ScanFirst.String())
	require.Equal(t, "all", ScanAll.String())
	require.Equal(t, "unknown", ScanMode(9).String())
}
