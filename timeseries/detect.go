package timeseries

import (
	"strconv"

	"github.com/arloliu/jsonxl/value"
)

// TimeFields are the element keys that mark an array as a time series. The
// field must hold a truthy value.
var TimeFields = []string{"timeStamp", "timestamp", "time", "date", "datetime", "createdAt", "updatedAt"}

// IndexSuffix is appended to an array's path to name its row index column.
const IndexSuffix = "Index"

// ScanMode selects how many qualifying arrays Detect consumes.
type ScanMode uint8

const (
	// ScanFirst stops the whole search at the first qualifying array.
	ScanFirst ScanMode = iota
	// ScanAll collects the rows of every qualifying array in the tree.
	ScanAll
)

func (m ScanMode) String() string {
	switch m {
	case ScanFirst:
		return "first"
	case ScanAll:
		return "all"
	default:
		return "unknown"
	}
}

type detector struct {
	mode ScanMode
	rows []*value.Object
}

// Detect searches doc depth-first, in document order, for arrays of time
// series points and returns one row per element of the arrays it consumes.
//
// Each row holds, in order: the scalar fields of every ancestor object keyed by
// dotted path, the element's own fields, and "<path>Index". Scalar fields of
// sibling subtrees never leak into each other's rows. A consumed array is not
// searched for nested series.
func Detect(doc value.Value, mode ScanMode) []*value.Object {
	d := &detector{mode: mode}
	d.visit(doc, "", value.NewObject())

	return d.rows
}

// visit returns true when the search must stop.
func (d *detector) visit(v value.Value, path string, ctx *value.Object) bool {
	switch v.Kind() {
	case value.KindArray:
		elems, _ := v.AsArray()
		if isSeries(elems) {
			d.emit(elems, path, ctx)
			return d.mode == ScanFirst
		}

		for i, e := range elems {
			if !e.IsContainer() {
				continue
			}
			if d.visit(e, path+"["+strconv.Itoa(i)+"]", ctx) {
				return true
			}
		}
	case value.KindObject:
		obj, _ := v.AsObject()

		scoped := ctx.Clone()
		for key, f := range obj.All() {
			if f.IsScalar() {
				scoped.Set(join(path, key), f)
			}
		}

		for key, f := range obj.All() {
			if !f.IsContainer() {
				continue
			}
			if d.visit(f, join(path, key), scoped) {
				return true
			}
		}
	}

	return false
}

func (d *detector) emit(elems []value.Value, path string, ctx *value.Object) {
	indexKey := path + IndexSuffix
	for i, e := range elems {
		row := ctx.Clone()
		if obj, ok := e.AsObject(); ok {
			row.Merge(obj)
		}
		row.Set(indexKey, value.Int(int64(i)))
		d.rows = append(d.rows, row)
	}
}

// isSeries reports whether at least one element is an object with a truthy
// time field.
func isSeries(elems []value.Value) bool {
	for _, e := range elems {
		obj, ok := e.AsObject()
		if !ok {
			continue
		}
		for _, tf := range TimeFields {
			if v, ok := obj.Get(tf); ok && v.Truthy() {
				return true
			}
		}
	}

	return false
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
