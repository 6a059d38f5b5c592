package anonymize

type mappingKey struct {
	field    string
	original string
}

// Mapping memoizes anonymized values by (field, original value).
//
// A Mapping only grows. Share one Mapping across every document of a run to
// keep identical identifiers anonymized identically across files.
type Mapping struct {
	entries map[mappingKey]string
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[mappingKey]string)}
}

// Lookup returns the anonymized value stored for (field, original).
func (m *Mapping) Lookup(field, original string) (string, bool) {
	v, ok := m.entries[mappingKey{field: field, original: original}]
	return v, ok
}

// Store records the anonymized value for (field, original).
func (m *Mapping) Store(field, original, anonymized string) {
	m.entries[mappingKey{field: field, original: original}] = anonymized
}

// Len returns the number of stored pairs.
func (m *Mapping) Len() int {
	return len(m.entries)
}
