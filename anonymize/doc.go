// Package anonymize replaces sensitive identifier fields in JSON trees with
// deterministic pseudonymous values.
//
// A Generator derives an anonymized value from a (field name, original value)
// pair using a 32-bit polynomial string hash and memoizes the result in a
// Mapping, so the same identifier is rewritten the same way everywhere it
// appears during a run. An Anonymizer walks a value.Value and routes the values
// of sensitive keys (see SensitiveFields) through its Generator.
//
// Output formats depend on the field name:
//
//	meterId   |hash| as 32 zero-padded hex digits grouped like a UUID,
//	          e.g. anon-00000000-0000-0000-0000-000037fd53e2
//	id        only the "subscriptions/<segment>" part of a resource path is
//	          rewritten, to "subscriptions/anon-<hex>"
//	others    anon-<hex>
//
// The hash is not collision resistant. Two distinct identifiers of the same
// field can alias to one anonymized value; such collisions are left in the
// output but counted in Stats and logged.
package anonymize
