// Package flatten turns nested JSON values into single-level rows keyed by
// composed paths.
//
// Object fields are joined with dots and array elements are addressed with
// bracketed indexes, so {"a":[{"b":1}]} becomes {"a[0].b":1}.
package flatten

import (
	"strconv"

	"github.com/arloliu/jsonxl/value"
)

// Flatten returns a new row mapping every scalar (and null) leaf of v to its
// path, prefixed with prefix when it is non-empty.
//
// When v is an array its indexes act as keys ("0", "1", ...). A scalar v
// yields an empty row. Later keys overwrite earlier ones on collision. v is
// not modified.
func Flatten(v value.Value, prefix string) *value.Object {
	out := value.NewObject()
	flattenInto(out, v, prefix)

	return out
}

// Fields flattens every field of obj except those for which skip returns true.
func Fields(obj *value.Object, skip func(key string, v value.Value) bool) *value.Object {
	out := value.NewObject()
	for key, v := range obj.All() {
		if skip != nil && skip(key, v) {
			continue
		}
		flattenField(out, key, v)
	}

	return out
}

func flattenInto(out *value.Object, v value.Value, prefix string) {
	switch v.Kind() {
	case value.KindObject:
		obj, _ := v.AsObject()
		for key, field := range obj.All() {
			flattenField(out, join(prefix, key), field)
		}
	case value.KindArray:
		elems, _ := v.AsArray()
		for i, e := range elems {
			flattenField(out, join(prefix, strconv.Itoa(i)), e)
		}
	}
}

// flattenField places v under key, expanding containers.
func flattenField(out *value.Object, key string, v value.Value) {
	switch v.Kind() {
	case value.KindArray:
		elems, _ := v.AsArray()
		for i, e := range elems {
			arrayKey := key + "[" + strconv.Itoa(i) + "]"
			if e.IsContainer() {
				flattenInto(out, e, arrayKey)
			} else {
				out.Set(arrayKey, e)
			}
		}
	case value.KindObject:
		flattenInto(out, v, key)
	default:
		out.Set(key, v)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
