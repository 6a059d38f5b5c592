package value

import "iter"

// Object is an insertion-ordered JSON object.
//
// Setting a key that already exists replaces its value in place, so the key
// keeps its original column position. A nil *Object behaves as an empty,
// read-only object.
type Object struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// NewObject creates an empty object.
func NewObject() *Object {
	return NewObjectSize(0)
}

// NewObjectSize creates an empty object with room for n fields.
func NewObjectSize(n int) *Object {
	return &Object{
		keys:  make([]string, 0, n),
		vals:  make([]Value, 0, n),
		index: make(map[string]int, n),
	}
}

// Len returns the number of fields.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}

	return len(o.keys)
}

// Keys returns the field names in insertion order. The returned slice must
// not be modified.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}

	return o.keys
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Null(), false
	}
	i, ok := o.index[key]
	if !ok {
		return Null(), false
	}

	return o.vals[i], true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.index[key]

	return ok
}

// Set stores v under key, appending the key if it is new.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.vals[i] = v
		return
	}

	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, v)
}

// Merge sets every field of other on o, in other's order.
func (o *Object) Merge(other *Object) {
	if other == nil {
		return
	}
	for i, k := range other.keys {
		o.Set(k, other.vals[i])
	}
}

// Clone returns a copy of o. Field values are shared, not deep-copied.
func (o *Object) Clone() *Object {
	if o == nil {
		return NewObject()
	}

	c := NewObjectSize(len(o.keys))
	for i, k := range o.keys {
		c.index[k] = i
	}
	c.keys = append(c.keys, o.keys...)
	c.vals = append(c.vals, o.vals...)

	return c
}

// All returns an iterator over the fields in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for i, k := range o.keys {
			if !yield(k, o.vals[i]) {
				return
			}
		}
	}
}

// Equal reports whether o and other hold the same keys in the same order with
// equal values.
func (o *Object) Equal(other *Object) bool {
	if o.Len() != other.Len() {
		return false
	}
	if o.Len() == 0 {
		return true
	}
	for i, k := range o.keys {
		if other.keys[i] != k || !o.vals[i].Equal(other.vals[i]) {
			return false
		}
	}

	return true
}
