package buffer

import (
	"math"
	"time"

	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/util"
)

// DateTimeBuffer is the mutable counterpart of a column.DateTimeColumn (spec
// §3.1 "date-time" buffer variant): fixed-length, second-plus-nanosecond
// precision. Ground: ApplierNumericToDateTime.java's
// HighPrecisionDateTimeBuffer.set(i, Instant).
type DateTimeBuffer struct {
	frozenFlag
	seconds []float64
	nanos   []int32
}

// NewDateTimeBuffer allocates a fixed-length date-time buffer of length n.
func NewDateTimeBuffer(n int) (*DateTimeBuffer, error) {
	if n < 0 {
		return nil, util.ArgumentError("buffer: negative length %d", n)
	}
	seconds := util.AllocFloat64(n)
	for i := range seconds {
		seconds[i] = math.NaN()
	}
	return &DateTimeBuffer{seconds: seconds, nanos: util.AllocInt32(n)}, nil
}

func (b *DateTimeBuffer) Size() int { return len(b.seconds) }

// Get returns the timestamp stored at i, and whether it is present.
func (b *DateTimeBuffer) Get(i int) (time.Time, bool) {
	if math.IsNaN(b.seconds[i]) {
		return time.Time{}, false
	}
	return time.Unix(int64(b.seconds[i]), int64(b.nanos[i])).UTC(), true
}

// Set writes t at row i, or the missing sentinel if isMissing.
func (b *DateTimeBuffer) Set(i int, t time.Time, isMissing bool) error {
	if b.Frozen() {
		return util.StateError("buffer: write to frozen buffer")
	}
	if isMissing {
		b.seconds[i] = math.NaN()
		b.nanos[i] = 0
		return nil
	}
	b.seconds[i] = float64(t.Unix())
	b.nanos[i] = int32(t.Nanosecond())
	return nil
}

// ToColumn seals the buffer and returns an immutable date-time column of typ
// (ordinarily column.DateTime). typ's category must be column.Numeric.
func (b *DateTimeBuffer) ToColumn(typ column.Type) (*column.DateTimeColumn, error) {
	if typ.Category() != column.Numeric {
		return nil, util.ArgumentError("buffer: column type %s is not numeric", typ)
	}
	b.Freeze()
	return column.NewDateTimeColumn(typ, b.seconds, b.nanos), nil
}

func (b *DateTimeBuffer) String() string {
	return formatBuffer("DateTime", len(b.seconds), func(i int) string {
		if math.IsNaN(b.seconds[i]) {
			return "?"
		}
		return time.Unix(int64(b.seconds[i]), int64(b.nanos[i])).UTC().Format(time.RFC3339Nano)
	})
}
