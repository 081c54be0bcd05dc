package buffer

import (
	"math"
	"time"

	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/util"
)

// TimeBuffer is the mutable counterpart of a column.TimeOfDay column (spec
// §3.1 "time" buffer variant): a fixed-length store of nanosecond-of-day
// offsets, one float64 per row (the full 24h range fits exactly, with room
// to spare, in a float64's 53-bit mantissa). Missing is NaN. Ground:
// ApplierCategoricalToTime.java's TimeColumnBuffer.set(i, LocalTime), with a
// Go-idiomatic time.Duration (the nanosecond-of-day offset) in place of the
// LocalTime argument.
type TimeBuffer struct {
	frozenFlag
	data []float64
}

// NewTimeBuffer allocates a fixed-length time-of-day buffer of length n.
func NewTimeBuffer(n int) (*TimeBuffer, error) {
	if n < 0 {
		return nil, util.ArgumentError("buffer: negative length %d", n)
	}
	data := util.AllocFloat64(n)
	for i := range data {
		data[i] = math.NaN()
	}
	return &TimeBuffer{data: data}, nil
}

func (b *TimeBuffer) Size() int { return len(b.data) }

// Get returns the nanosecond-of-day offset stored at i, and whether it is
// present (false for a missing row, in which case 0 is returned).
func (b *TimeBuffer) Get(i int) (time.Duration, bool) {
	v := b.data[i]
	if math.IsNaN(v) {
		return 0, false
	}
	return time.Duration(v), true
}

// Set writes the nanosecond-of-day offset of d at row i, or the missing
// sentinel if isMissing.
func (b *TimeBuffer) Set(i int, d time.Duration, isMissing bool) error {
	if b.Frozen() {
		return util.StateError("buffer: write to frozen buffer")
	}
	if isMissing {
		b.data[i] = math.NaN()
		return nil
	}
	b.data[i] = float64(d.Nanoseconds())
	return nil
}

// ToColumn seals the buffer and returns an immutable numeric column of typ
// (ordinarily column.TimeOfDay). typ's category must be column.Numeric.
func (b *TimeBuffer) ToColumn(typ column.Type) (*column.NumericColumn, error) {
	if typ.Category() != column.Numeric {
		return nil, util.ArgumentError("buffer: column type %s is not numeric", typ)
	}
	b.Freeze()
	return column.NewNumericColumn(typ, b.data), nil
}

func (b *TimeBuffer) String() string {
	return formatBuffer("Time", len(b.data), func(i int) string {
		v := b.data[i]
		if math.IsNaN(v) {
			return "?"
		}
		return time.Duration(v).String()
	})
}
