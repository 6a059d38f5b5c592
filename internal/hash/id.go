package hash

import (
	"unicode/utf16"

	"github.com/cespare/xxhash/v2"
)

// Rolling32 computes the 32-bit polynomial string hash (multiplier 31) over the
// UTF-16 code units of data, wrapping to a signed 32-bit integer at every step.
//
// It is the hash used to derive anonymized identifiers. It is not collision
// resistant: distinct inputs can and do share a value.
func Rolling32(data string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(data)) {
		h = (h << 5) - h + int32(c)
	}

	return h
}

// Abs32 returns the absolute value of h widened to 64 bits, so that
// math.MinInt32 maps to 2^31 instead of overflowing.
func Abs32(h int32) int64 {
	v := int64(h)
	if v < 0 {
		return -v
	}

	return v
}

// Fingerprint computes the xxHash64 of the given string.
func Fingerprint(data string) uint64 {
	return xxhash.Sum64String(data)
}

// FingerprintPair computes the xxHash64 of two strings joined by a NUL byte.
func FingerprintPair(a, b string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(a)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(b)

	return d.Sum64()
}
