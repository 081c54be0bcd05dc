package buffer

import (
	"math"

	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/util"
)

// roundHalfUp implements spec §4.1's round(x) with round(0.5)=1, round(-0.5)=0
// (Java's Math.round semantics), unlike Go's math.Round which rounds halves
// away from zero in both directions.
func roundHalfUp(x float64) float64 { return math.Floor(x + 0.5) }

// RealBuffer is a fixed-length f64 buffer (spec §4.2 "fixed real").
type RealBuffer struct {
	frozenFlag
	data []float64
}

// NewRealBuffer allocates a fixed-length real buffer of length n.
func NewRealBuffer(n int) (*RealBuffer, error) {
	if n < 0 {
		return nil, util.ArgumentError("buffer: negative length %d", n)
	}
	return &RealBuffer{data: util.AllocFloat64(n)}, nil
}

func (b *RealBuffer) Size() int { return len(b.data) }

func (b *RealBuffer) Get(i int) float64 { return b.data[i] }

func (b *RealBuffer) Set(i int, v float64) error {
	if b.Frozen() {
		return util.StateError("buffer: write to frozen buffer")
	}
	b.data[i] = v
	return nil
}

// ToColumn seals the buffer and returns an immutable numeric column of typ.
// typ's category must be column.Numeric.
func (b *RealBuffer) ToColumn(typ column.Type) (*column.NumericColumn, error) {
	if typ.Category() != column.Numeric {
		return nil, util.ArgumentError("buffer: column type %s is not numeric", typ)
	}
	b.Freeze()
	return column.NewNumericColumn(typ, b.data), nil
}

// IntegerBuffer is a fixed-length f64 buffer whose writes round to the
// nearest integer (spec §4.2 "fixed integer").
type IntegerBuffer struct {
	frozenFlag
	data []float64
}

// NewIntegerBuffer allocates a fixed-length integer buffer of length n.
func NewIntegerBuffer(n int) (*IntegerBuffer, error) {
	if n < 0 {
		return nil, util.ArgumentError("buffer: negative length %d", n)
	}
	return &IntegerBuffer{data: util.AllocFloat64(n)}, nil
}

func (b *IntegerBuffer) Size() int { return len(b.data) }

func (b *IntegerBuffer) Get(i int) float64 { return b.data[i] }

func (b *IntegerBuffer) Set(i int, v float64) error {
	if b.Frozen() {
		return util.StateError("buffer: write to frozen buffer")
	}
	b.data[i] = roundHalfUp(v)
	return nil
}

// ToColumn seals the buffer and returns an immutable numeric column of typ.
func (b *IntegerBuffer) ToColumn(typ column.Type) (*column.NumericColumn, error) {
	if typ.Category() != column.Numeric {
		return nil, util.ArgumentError("buffer: column type %s is not numeric", typ)
	}
	b.Freeze()
	return column.NewNumericColumn(typ, b.data), nil
}

// GrowingRealBuffer is a resizable f64 buffer (spec §4.2 "growing real").
type GrowingRealBuffer struct {
	frozenFlag
	data []float64
}

// NewGrowingRealBuffer allocates a growing real buffer of initial length n.
func NewGrowingRealBuffer(n int) (*GrowingRealBuffer, error) {
	if n < 0 {
		return nil, util.ArgumentError("buffer: negative length %d", n)
	}
	return &GrowingRealBuffer{data: util.AllocFloat64(n)}, nil
}

func (b *GrowingRealBuffer) Size() int { return len(b.data) }

func (b *GrowingRealBuffer) Get(i int) float64 { return b.data[i] }

func (b *GrowingRealBuffer) Set(i int, v float64) error {
	if b.Frozen() {
		return util.StateError("buffer: write to frozen buffer")
	}
	b.data[i] = v
	return nil
}

// Resize truncates or zero-extends the buffer to length n. Fails with a
// state-error once frozen.
func (b *GrowingRealBuffer) Resize(n int) error {
	if b.Frozen() {
		return util.StateError("buffer: resize of frozen buffer")
	}
	if n < 0 {
		return util.ArgumentError("buffer: negative length %d", n)
	}
	b.data = util.ReallocFloat64(b.data, n)
	return nil
}

// ToColumn seals the buffer and returns an immutable numeric column of typ.
func (b *GrowingRealBuffer) ToColumn(typ column.Type) (*column.NumericColumn, error) {
	if typ.Category() != column.Numeric {
		return nil, util.ArgumentError("buffer: column type %s is not numeric", typ)
	}
	b.Freeze()
	return column.NewNumericColumn(typ, b.data), nil
}

// GrowingIntegerBuffer is a resizable f64 buffer whose writes round to the
// nearest integer (spec §4.2 "growing integer").
type GrowingIntegerBuffer struct {
	frozenFlag
	data []float64
}

// NewGrowingIntegerBuffer allocates a growing integer buffer of initial
// length n.
func NewGrowingIntegerBuffer(n int) (*GrowingIntegerBuffer, error) {
	if n < 0 {
		return nil, util.ArgumentError("buffer: negative length %d", n)
	}
	return &GrowingIntegerBuffer{data: util.AllocFloat64(n)}, nil
}

func (b *GrowingIntegerBuffer) Size() int { return len(b.data) }

func (b *GrowingIntegerBuffer) Get(i int) float64 { return b.data[i] }

func (b *GrowingIntegerBuffer) Set(i int, v float64) error {
	if b.Frozen() {
		return util.StateError("buffer: write to frozen buffer")
	}
	b.data[i] = roundHalfUp(v)
	return nil
}

// Resize truncates or zero-extends the buffer to length n.
func (b *GrowingIntegerBuffer) Resize(n int) error {
	if b.Frozen() {
		return util.StateError("buffer: resize of frozen buffer")
	}
	if n < 0 {
		return util.ArgumentError("buffer: negative length %d", n)
	}
	b.data = util.ReallocFloat64(b.data, n)
	return nil
}

// ToColumn seals the buffer and returns an immutable numeric column of typ.
func (b *GrowingIntegerBuffer) ToColumn(typ column.Type) (*column.NumericColumn, error) {
	if typ.Category() != column.Numeric {
		return nil, util.ArgumentError("buffer: column type %s is not numeric", typ)
	}
	b.Freeze()
	return column.NewNumericColumn(typ, b.data), nil
}
