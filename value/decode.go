package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/jsonxl/errs"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse decodes a single JSON document from data. A leading UTF-8 byte order
// mark is ignored. Trailing non-whitespace content is an error.
//
// All syntax errors wrap errs.ErrInvalidJSON.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
}

// MustParse is like Parse but panics on error. It is intended for tests and
// package-level fixtures.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}

	return v
}

// Decode reads exactly one JSON document from r.
func Decode(r io.Reader) (Value, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber()

	v, err := decodeValue(decoder)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return Null(), fmt.Errorf("%w: %w", errs.ErrInvalidJSON, err)
	}

	if t, err := decoder.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return Null(), fmt.Errorf("%w: %w", errs.ErrInvalidJSON, err)
		}

		return Null(), fmt.Errorf("%w: unexpected trailing content %v at offset %d",
			errs.ErrInvalidJSON, t, decoder.InputOffset())
	}

	return v, nil
}

func decodeValue(decoder *json.Decoder) (Value, error) {
	t, err := decoder.Token()
	if err != nil {
		return Null(), err
	}

	switch tok := t.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(tok), nil
	case json.Number:
		return Number(tok), nil
	case string:
		return String(tok), nil
	case json.Delim:
		switch tok {
		case '{':
			return decodeObject(decoder)
		case '[':
			return decodeArray(decoder)
		}
	}

	return Null(), fmt.Errorf("unexpected token %v at offset %d", t, decoder.InputOffset())
}

func decodeObject(decoder *json.Decoder) (Value, error) {
	obj := NewObject()
	for decoder.More() {
		t, err := decoder.Token()
		if err != nil {
			return Null(), fmt.Errorf("failed to read key: %w", err)
		}

		key, ok := t.(string)
		if !ok {
			return Null(), fmt.Errorf("expected string key, got %T", t)
		}

		v, err := decodeValue(decoder)
		if err != nil {
			return Null(), fmt.Errorf("field %q: %w", key, err)
		}
		obj.Set(key, v)
	}

	// closing '}'
	if _, err := decoder.Token(); err != nil {
		return Null(), fmt.Errorf("failed to read object end: %w", err)
	}

	return FromObject(obj), nil
}

func decodeArray(decoder *json.Decoder) (Value, error) {
	elems := make([]Value, 0)
	for decoder.More() {
		v, err := decodeValue(decoder)
		if err != nil {
			return Null(), fmt.Errorf("element %d: %w", len(elems), err)
		}
		elems = append(elems, v)
	}

	// closing ']'
	if _, err := decoder.Token(); err != nil {
		return Null(), fmt.Errorf("failed to read array end: %w", err)
	}

	return Array(elems...), nil
}
