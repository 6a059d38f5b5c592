package hash

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRolling32(t *testing.T) {
	tests := []struct {
		name string
		data string
		want int32
	}{
		{"empty string", "", 0},
		{"single char", "a", 97},
		{"two chars", "ab", 3105},
		{"hello", "hello", 99162322},
		{"hello world", "hello world", 1794106052},
		{"wraps to negative", "meter-abc", -939348962},
		{"surrogate pair", "\U0001F600", 1772899},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rolling32(tt.data))
		})
	}
}

func TestRolling32_Deterministic(t *testing.T) {
	s := randString(32)
	require.Equal(t, Rolling32(s), Rolling32(s))
}

func TestRolling32_KnownCollision(t *testing.T) {
	// "Aa" and "BB" share a hash under the multiplier-31 scheme.
	require.Equal(t, Rolling32("Aa"), Rolling32("BB"))
}

func TestAbs32(t *testing.T) {
	require.Equal(t, int64(5), Abs32(-5))
	require.Equal(t, int64(5), Abs32(5))
	require.Equal(t, int64(0), Abs32(0))
	require.Equal(t, int64(1)<<31, Abs32(math.MinInt32))
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Fingerprint(tt.data))
		})
	}
}

func TestFingerprintPair(t *testing.T) {
	require.Equal(t, Fingerprint("a\x00b"), FingerprintPair("a", "b"))
	require.NotEqual(t, FingerprintPair("ab", ""), FingerprintPair("a", "b"))
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkRolling32(b *testing.B) {
	randStr := randString(36)
	b.ResetTimer()
	for b.Loop() {
		Rolling32(randStr)
	}
}
