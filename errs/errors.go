// Package errs defines the sentinel errors returned by jsonxl packages.
//
// Callers should compare with errors.Is, since most errors are wrapped with the
// offending path or field name before they reach the caller.
package errs

import "errors"

var (
	// ErrFileNotFound is returned when an input file or directory does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidJSON is returned when an input document cannot be parsed.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrWriteFailed is returned when an output file cannot be written.
	ErrWriteFailed = errors.New("write failed")
	// ErrNotADirectory is returned when a directory operation is given a regular file.
	ErrNotADirectory = errors.New("not a directory")

	// ErrInvalidFieldType is returned when a sensitive field holds a value that is
	// neither a string nor null. The value is left untouched.
	ErrInvalidFieldType = errors.New("sensitive field value is not a string")
	// ErrDuplicateOriginal is returned when the same original value is registered twice.
	ErrDuplicateOriginal = errors.New("original value already tracked")
	// ErrEmptyOriginal is returned when an empty original value is registered.
	ErrEmptyOriginal = errors.New("original value is empty")

	// ErrInvalidSheetName is returned when a worksheet name is rejected.
	ErrInvalidSheetName = errors.New("invalid sheet name")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")

	// ErrInvalidConfig is returned when a configuration file fails validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidArguments is returned when command-line arguments cannot be interpreted.
	ErrInvalidArguments = errors.New("invalid arguments")
)
