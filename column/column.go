// Package column implements the immutable, frozen column storage layer
// (spec §3.1, §4.1, component C3). Columns are built by freezing a buffer
// (see package buffer) and are safe for concurrent, side-effect-free reads
// for as long as they're reachable.
package column

import (
	"time"

	"github.com/vineetp6/belt/util"
)

// Category is a column's storage family.
type Category int

const (
	Numeric Category = iota
	Categorical
	Free
)

func (c Category) String() string {
	switch c {
	case Numeric:
		return "NUMERIC"
	case Categorical:
		return "CATEGORICAL"
	case Free:
		return "FREE"
	default:
		return "UNKNOWN"
	}
}

// Capability flags the views a column supports.
type Capability int

const (
	NumericReadable Capability = 1 << iota
	ObjectReadable
	Sortable
)

// Capabilities is a bitset of Capability flags.
type Capabilities int

// Has reports whether all bits of c are set.
func (caps Capabilities) Has(c Capability) bool { return Capabilities(c)&caps == Capabilities(c) }

// Type names the declared element type (numeric, categorical, free/object,
// date-time, time, ...) independent of storage Category — several Types
// (e.g. nominal text vs. an ordinal encoding) can share CATEGORICAL storage.
type Type struct {
	name     string
	category Category
	elemType interface{} // zero value of the element type, e.g. "" for string
}

// NewType declares a column type with the given display name, storage
// category and representative element value (used only to describe the
// dictionary element type for categorical/free types).
func NewType(name string, category Category, elemType interface{}) Type {
	return Type{name: name, category: category, elemType: elemType}
}

func (t Type) String() string    { return t.name }
func (t Type) Category() Category { return t.category }

var (
	// Real is the standard dense 64-bit floating point numeric type.
	Real = NewType("real", Numeric, float64(0))
	// Nominal is the standard dictionary-coded categorical type over strings.
	Nominal = NewType("nominal", Categorical, "")
	// TimeOfDay is a Numeric-category type whose values are a nanosecond-of-
	// day offset (spec §3.1: "declared type ... date-time, time"). It is
	// backed by plain NumericColumn storage, since a single float64 per row
	// covers the nanosecond-of-day range exactly.
	TimeOfDay = NewType("time", Numeric, float64(0))
	// DateTime is a Numeric-category type with second-plus-nanosecond
	// precision, backed by DateTimeColumn instead of NumericColumn (spec
	// §3.1; ground: ApplierNumericToDateTime.java's HighPrecisionDateTimeBuffer).
	DateTime = NewType("date-time", Numeric, time.Time{})
)

// FreeType declares a free/object column type with the given display name
// and representative zero value of its element type T.
func FreeType[T any](name string, zero T) Type {
	return NewType(name, Free, zero)
}

// Column is the immutable, frozen, bulk-fillable read-side storage
// abstraction (spec §3.1/§4.1). Every concrete column kind (numeric,
// categorical, free) implements this trait; dispatch happens through the
// interface, never through type-switch-as-RTTI inside calculator code.
type Column interface {
	// Size returns the column's row count.
	Size() int
	// Type returns the column's declared element type.
	Type() Type
	// Category returns the column's storage family.
	Category() Category
	// Capabilities returns the column's supported views.
	Capabilities() Capabilities

	// FillNumeric bulk-copies the numeric view of dst.len/stride consecutive
	// rows starting at startRow into dst at dstOffset with the given stride.
	// Requires NumericReadable; rows past Size() are left untouched in dst.
	FillNumeric(dst []float64, startRow, dstOffset, stride int)
	// FillObject bulk-copies the object view, symmetric to FillNumeric.
	// Requires ObjectReadable.
	FillObject(dst []interface{}, startRow, dstOffset, stride int)
}

// Dictionary is implemented by categorical columns (spec §3.1).
type Dictionary interface {
	// DictionarySize returns len(V), including the index-0 missing sentinel.
	DictionarySize() int
	// IntData returns the unpacked raw index stream (categorical only).
	IntData() []int32
}

// GetDictionary returns the dictionary values of a categorical column typed
// as []T, or an unsupported-operation error for any other column.
func GetDictionary[T any](c Column) ([]T, error) {
	type typedDict interface{ dictionaryValues() []interface{} }
	d, ok := c.(typedDict)
	if !ok {
		return nil, util.UnsupportedError("column of type %s has no dictionary", c.Type())
	}
	raw := d.dictionaryValues()
	out := make([]T, len(raw))
	for i, v := range raw {
		if v == nil {
			var zero T
			out[i] = zero
			continue
		}
		out[i] = v.(T)
	}
	return out, nil
}
