package anonymize

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/internal/collision"
	"github.com/arloliu/jsonxl/internal/hash"
	"github.com/arloliu/jsonxl/internal/options"
	"github.com/arloliu/jsonxl/value"
)

// Tag prefixes every anonymized value.
const Tag = "anon"

const (
	FieldMeterID          = "meterId"
	FieldProductID        = "productId"
	FieldSkuID            = "skuId"
	FieldServiceID        = "serviceId"
	FieldCustomerEntityID = "CustomerEntityId"
	FieldID               = "id"
)

// SensitiveFields lists the object keys whose values are anonymized, matched
// by exact name at any depth.
var SensitiveFields = []string{
	FieldMeterID,
	FieldProductID,
	FieldSkuID,
	FieldServiceID,
	FieldCustomerEntityID,
	FieldID,
}

var sensitiveSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(SensitiveFields))
	for _, f := range SensitiveFields {
		set[f] = struct{}{}
	}

	return set
}()

var subscriptionPattern = regexp.MustCompile(`subscriptions/[^/]+`)

// IsSensitive reports whether key names a sensitive field.
func IsSensitive(key string) bool {
	_, ok := sensitiveSet[key]
	return ok
}

// Stats counts generator activity.
type Stats struct {
	Generated  int // values computed by hashing
	CacheHits  int // values served from the mapping
	Collisions int // distinct originals aliased to an existing anonymized value
	Skipped    int // sensitive values left untouched because they are not strings
}

// Generator derives anonymized identifiers. It is not safe for concurrent use.
type Generator struct {
	mapping *Mapping
	tracker *collision.Tracker
	logger  *zap.Logger
	stats   Stats
}

// Option configures a Generator.
type Option = options.Option[*Generator]

// WithMapping makes the generator use m instead of a fresh mapping.
func WithMapping(m *Mapping) Option {
	return options.New(func(g *Generator) error {
		if m == nil {
			return fmt.Errorf("mapping cannot be nil")
		}
		g.mapping = m

		return nil
	})
}

// WithLogger sets the logger used to report collisions.
func WithLogger(logger *zap.Logger) Option {
	return options.NoError(func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	})
}

// NewGenerator creates a generator with an empty mapping unless WithMapping is given.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		mapping: NewMapping(),
		tracker: collision.NewTracker(),
		logger:  zap.NewNop(),
	}
	if err := options.Apply(g, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// Generate returns the anonymized form of original for field.
//
// An empty original is returned unchanged. Results are memoized, so repeated
// calls with the same pair return the same string.
func (g *Generator) Generate(field, original string) string {
	if original == "" {
		return original
	}

	if cached, ok := g.mapping.Lookup(field, original); ok {
		g.stats.CacheHits++
		return cached
	}

	anonymized := derive(field, original)
	g.mapping.Store(field, original, anonymized)
	g.stats.Generated++

	collided, err := g.tracker.Track(field, original, anonymized)
	if err != nil {
		g.logger.Debug("collision tracking skipped", zap.String("field", field), zap.Error(err))
	}
	if collided {
		g.stats.Collisions++
		g.logger.Warn("anonymized value collision",
			zap.String("field", field),
			zap.String("anonymized", anonymized))
	}

	return anonymized
}

// GenerateValue anonymizes a sensitive field value.
//
// Null and the empty string are returned unchanged. Any other non-string value
// is returned unchanged together with errs.ErrInvalidFieldType.
func (g *Generator) GenerateValue(field string, v value.Value) (value.Value, error) {
	if v.IsNull() {
		return v, nil
	}

	s, ok := v.AsString()
	if !ok {
		g.stats.Skipped++
		return v, fmt.Errorf("%w: field %q holds %s", errs.ErrInvalidFieldType, field, v.Kind())
	}

	return value.String(g.Generate(field, s)), nil
}

// Stats returns the counters accumulated so far.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Collisions returns the collisions detected so far, in detection order.
func (g *Generator) Collisions() []collision.Collision {
	return g.tracker.Collisions()
}

// Mapping returns the mapping backing the generator.
func (g *Generator) Mapping() *Mapping {
	return g.mapping
}

func derive(field, original string) string {
	abs := hash.Abs32(hash.Rolling32(original))
	hexHash := strconv.FormatInt(abs, 16)

	switch field {
	case FieldMeterID:
		return Tag + "-" + uuidShape(abs)
	case FieldID:
		loc := subscriptionPattern.FindStringIndex(original)
		if loc == nil {
			return original
		}

		return original[:loc[0]] + "subscriptions/" + Tag + "-" + hexHash + original[loc[1]:]
	default:
		return Tag + "-" + hexHash
	}
}

// uuidShape renders abs as 32 zero-padded hex digits grouped 8-4-4-4-12.
func uuidShape(abs int64) string {
	padded := fmt.Sprintf("%032x", abs)

	raw, err := hex.DecodeString(padded)
	if err != nil {
		return padded
	}
	id, err := uuid.FromBytes(raw)
	if err != nil {
		return padded
	}

	return id.String()
}
