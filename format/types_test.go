package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionFromPath(t *testing.T) {
	tests := []struct {
		path string
		want CompressionType
	}{
		{"a.json", CompressionNone},
		{"a.json.zst", CompressionZstd},
		{"dir/a.JSON.ZST", CompressionZstd},
		{"a.json.s2", CompressionS2},
		{"a.json.lz4", CompressionLZ4},
		{"a.json.gz", CompressionNone},
		{"noext", CompressionNone},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, CompressionFromPath(tt.path))
		})
	}
}

func TestIsJSON(t *testing.T) {
	require.True(t, IsJSON("a.json"))
	require.True(t, IsJSON("A.Json"))
	require.True(t, IsJSON("a.json.lz4"))
	require.True(t, IsJSON("/x/y/a.json.S2"))
	require.False(t, IsJSON("a.txt"))
	require.False(t, IsJSON("a.zst"))
	require.False(t, IsJSON("json"))
	require.False(t, IsJSON("a.json.bak"))
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"in/data.json", "data"},
		{"in/data.JSON", "data"},
		{"in/data.json.zst", "data"},
		{"data.v2.json.lz4", "data.v2"},
		{"data.txt", "data.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, BaseName(tt.path))
		})
	}

	require.Equal(t, "data.xlsx", WorkbookName("in/data.json.s2"))
}

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestCompressionType_Extension(t *testing.T) {
	require.Equal(t, ".zst", CompressionZstd.Extension())
	require.Equal(t, ".s2", CompressionS2.Extension())
	require.Equal(t, ".lz4", CompressionLZ4.Extension())
	require.Empty(t, CompressionNone.Extension())
}
