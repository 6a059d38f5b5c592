package collision

import (
	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/internal/hash"
)

// Collision describes two distinct originals of one field that were anonymized
// to the same value.
type Collision struct {
	Field      string
	Anonymized string
	First      string // Original registered first
	Second     string // Original that collided with First
}

// Tracker detects anonymized-value collisions. It maps the fingerprint of
// (field, anonymized value) to the original that produced it, and keeps the
// collisions in the order they were detected.
//
// Collisions are reported, not resolved: the anonymized output is unchanged.
type Tracker struct {
	originals  map[uint64]string // fingerprint(field, anonymized) → original
	collisions []Collision
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		originals:  make(map[uint64]string),
		collisions: make([]Collision, 0),
	}
}

// Track registers that original was anonymized to anonymized for field.
//
// Returns:
//   - bool: true if another original of the same field already produced anonymized
//   - error: ErrEmptyOriginal for an empty original, ErrDuplicateOriginal if the
//     same original was already registered for this anonymized value
func (t *Tracker) Track(field, original, anonymized string) (bool, error) {
	if original == "" {
		return false, errs.ErrEmptyOriginal
	}

	key := hash.FingerprintPair(field, anonymized)
	existing, exists := t.originals[key]
	if !exists {
		t.originals[key] = original
		return false, nil
	}

	if existing == original {
		return false, errs.ErrDuplicateOriginal
	}

	t.collisions = append(t.collisions, Collision{
		Field:      field,
		Anonymized: anonymized,
		First:      existing,
		Second:     original,
	})

	return true, nil
}

// HasCollision returns true if at least one collision has been detected.
func (t *Tracker) HasCollision() bool {
	return len(t.collisions) > 0
}

// Collisions returns the detected collisions in detection order.
func (t *Tracker) Collisions() []Collision {
	return t.collisions
}

// Count returns the number of distinct anonymized values tracked.
func (t *Tracker) Count() int {
	return len(t.originals)
}

// Reset clears all tracked values and collisions.
func (t *Tracker) Reset() {
	for k := range t.originals {
		delete(t.originals, k)
	}
	t.collisions = t.collisions[:0]
}
