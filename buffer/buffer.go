// Package buffer implements the mutable write-side counterpart of package
// column (spec §3.1, §4.2, component C2). Every buffer flavor follows the
// same lifecycle: open -> (writes) -> frozen -> column. Freezing is
// one-way; a frozen buffer rejects further writes and resizes with a
// state-error (spec §3.2 invariant 4).
package buffer

import "sync/atomic"

// Buffer is the common contract every buffer flavor satisfies (spec §4.2).
type Buffer interface {
	// Size returns the number of logical elements.
	Size() int
	// Freeze seals the buffer; idempotent. After Freeze, set/resize fail.
	Freeze()
	// Frozen reports whether Freeze has been called.
	Frozen() bool
}

// frozenFlag is embedded by every concrete buffer to implement the shared
// freeze/idempotence behavior with a single atomic bool, avoiding a mutex on
// the hot write path for the common (not-yet-frozen) case.
type frozenFlag struct {
	frozen int32
}

func (f *frozenFlag) Freeze()      { atomic.StoreInt32(&f.frozen, 1) }
func (f *frozenFlag) Frozen() bool { return atomic.LoadInt32(&f.frozen) != 0 }
