// Package format names the file formats jsonxl reads and writes.
package format

import (
	"path/filepath"
	"strings"
)

type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed file.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard frame.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 frame.
)

const (
	// ExtJSON is the extension of JSON documents.
	ExtJSON = ".json"
	// ExtXLSX is the extension of generated workbooks.
	ExtXLSX = ".xlsx"
)

var compressionExts = map[string]CompressionType{
	".zst": CompressionZstd,
	".s2":  CompressionS2,
	".lz4": CompressionLZ4,
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension of c, or "" for CompressionNone.
func (c CompressionType) Extension() string {
	for ext, typ := range compressionExts {
		if typ == c {
			return ext
		}
	}

	return ""
}

// CompressionFromPath infers the compression of a file from its extension.
// Matching is case-insensitive; unknown extensions mean CompressionNone.
func CompressionFromPath(path string) CompressionType {
	if typ, ok := compressionExts[strings.ToLower(filepath.Ext(path))]; ok {
		return typ
	}

	return CompressionNone
}

// IsJSON reports whether path names a JSON document, optionally compressed.
func IsJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(trimCompression(path)), ExtJSON)
}

// BaseName strips the directory, any compression extension and a trailing
// .json extension from path: "in/data.json.zst" becomes "data".
func BaseName(path string) string {
	name := trimCompression(filepath.Base(path))
	if ext := filepath.Ext(name); strings.EqualFold(ext, ExtJSON) {
		name = name[:len(name)-len(ext)]
	}

	return name
}

// WorkbookName returns the output workbook file name for an input path.
func WorkbookName(path string) string {
	return BaseName(path) + ExtXLSX
}

func trimCompression(path string) string {
	ext := filepath.Ext(path)
	if _, ok := compressionExts[strings.ToLower(ext)]; ok {
		return path[:len(path)-len(ext)]
	}

	return path
}
