package timeseries

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jsonxl/value"
)

func TestExtractor_PrefersAzure(t *testing.T) {
	e, err := NewExtractor()
	require.NoError(t, err)

	rows, strategy := e.Extract(value.MustParse(azureDoc))

	require.Equal(t, StrategyAzure, strategy)
	require.Len(t, rows, 2)
}

func TestExtractor_FallsBackToDetect(t *testing.T) {
	e, err := NewExtractor()
	require.NoError(t, err)

	rows, strategy := e.Extract(value.MustParse(`{"values":[],"points":[{"time":"t"}]}`))

	require.Equal(t, StrategyDetected, strategy)
	require.Len(t, rows, 1)
}

func TestExtractor_None(t *testing.T) {
	e, err := NewExtractor()
	require.NoError(t, err)

	rows, strategy := e.Extract(value.MustParse(`{"items":[{"a":1},{"a":2}]}`))

	require.Equal(t, StrategyNone, strategy)
	require.Empty(t, rows)
	require.Equal(t, "none", strategy.String())
}

func TestExtractor_CollectAll(t *testing.T) {
	doc := value.MustParse(`{"a":[{"time":"1"}],"b":[{"time":"2"}]}`)

	first, err := NewExtractor()
	require.NoError(t, err)
	rows, _ := first.Extract(doc)
	require.Len(t, rows, 1)

	all, err := NewExtractor(WithCollectAll())
	require.NoError(t, err)
	rows, _ = all.Extract(doc)
	require.Len(t, rows, 2)

	viaMode, err := NewExtractor(WithScanMode(ScanAll))
	require.NoError(t, err)
	rows, _ = viaMode.Extract(doc)
	require.Len(t, rows, 2)
}

func TestExtract(t *testing.T) {
	require.Len(t, Extract(value.MustParse(azureDoc)), 2)
	require.Empty(t, Extract(value.MustParse(`{}`)))
}
