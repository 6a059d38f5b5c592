// Package value provides an insertion-ordered, dynamically typed JSON tree.
//
// A Value is a tagged variant over the six JSON kinds. Objects keep their keys
// in document order, which the flattening and projection code depends on to
// produce stable column orders. Numbers keep their literal text, so parsing a
// document and encoding it again does not reformat numeric fields.
//
// # Decoding
//
// Parse and Decode build a Value from JSON text using token streaming:
//
//	doc, err := value.Parse(data)
//	if errors.Is(err, errs.ErrInvalidJSON) {
//	    // not a JSON document
//	}
//
// Duplicate object keys keep the position of their first occurrence and the
// value of their last one.
//
// # Encoding
//
// MarshalIndent produces the same layout as JavaScript's
// JSON.stringify(v, null, 2): two-space indentation, "key": value separators,
// empty containers rendered as {} and [], no trailing newline and no HTML
// escaping. Marshal produces the compact form.
package value
