// Package compress decodes and encodes whole compressed files.
//
// Each codec works on complete file images in the format produced by the
// corresponding command-line tool, so "zstd", "s2c" and "lz4" outputs can be
// fed to jsonxl directly.
package compress

import (
	"fmt"

	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/format"
)

// Compressor compresses a complete file image.
//
// The returned slice is owned by the caller; data is not modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a complete file image.
//
// Empty input decompresses to nil. Corrupted input or input in another
// format returns an error.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. Implementations are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec returns a new Codec for compressionType. target describes the
// caller's use and appears in the error message.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrUnsupportedCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

// ForPath returns the built-in Codec matching path's extension.
func ForPath(path string) (Codec, error) {
	return GetCodec(format.CompressionFromPath(path))
}
