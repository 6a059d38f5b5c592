package anonymize

import (
	"errors"

	"go.uber.org/zap"

	"github.com/arloliu/jsonxl/errs"
	"github.com/arloliu/jsonxl/value"
)

// Anonymizer rewrites the sensitive fields of JSON trees.
type Anonymizer struct {
	gen    *Generator
	logger *zap.Logger
}

// New creates an Anonymizer backed by a new Generator built from opts.
func New(opts ...Option) (*Anonymizer, error) {
	gen, err := NewGenerator(opts...)
	if err != nil {
		return nil, err
	}

	return NewWithGenerator(gen), nil
}

// NewWithGenerator creates an Anonymizer that shares gen and its mapping.
func NewWithGenerator(gen *Generator) *Anonymizer {
	return &Anonymizer{gen: gen, logger: gen.logger}
}

// Generator returns the generator used by the anonymizer.
func (a *Anonymizer) Generator() *Generator {
	return a.gen
}

// Anonymize returns a copy of v in which every value stored under a sensitive
// key is anonymized. Other values are copied unchanged. The input tree is not
// modified.
func (a *Anonymizer) Anonymize(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindArray:
		elems, _ := v.AsArray()
		out := make([]value.Value, len(elems))
		for i, e := range elems {
			out[i] = a.Anonymize(e)
		}

		return value.Array(out...)
	case value.KindObject:
		obj, _ := v.AsObject()
		out := value.NewObjectSize(obj.Len())
		for key, field := range obj.All() {
			if !IsSensitive(key) {
				out.Set(key, a.Anonymize(field))
				continue
			}

			anonymized, err := a.gen.GenerateValue(key, field)
			if errors.Is(err, errs.ErrInvalidFieldType) {
				a.logger.Debug("sensitive field left unchanged", zap.String("field", key), zap.Error(err))
			}
			out.Set(key, anonymized)
		}

		return value.FromObject(out)
	default:
		return v
	}
}
