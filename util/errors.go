// Package util holds storage and error-handling primitives shared by the
// column, buffer, reader and transform packages.
package util

import (
	"github.com/cockroachdb/errors"
)

// Sentinel kinds for the belt error taxonomy (spec §7). Every error belt
// raises is marked with one of these via errors.Mark, so callers can test
// kind membership with errors.Is regardless of the wrapped message. A
// UserError wrapping another belt error carries both its own mark and the
// inner error's.
var (
	ErrNull            = errors.New("belt: null argument")
	ErrArgument        = errors.New("belt: invalid argument")
	ErrState           = errors.New("belt: invalid state")
	ErrIndex           = errors.New("belt: index out of range")
	ErrUnsupported     = errors.New("belt: unsupported operation")
	ErrCancelled       = errors.New("belt: cancelled")
	ErrUser            = errors.New("belt: user callback error")
)

// NullError reports that a required argument or callback result was missing.
func NullError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrNull)
}

// ArgumentError reports an invalid argument (negative size, category
// mismatch, dictionary overflow in a throwing buffer, ...).
func ArgumentError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrArgument)
}

// StateError reports an operation attempted on a buffer after freeze.
func StateError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrState)
}

// IndexError reports an out-of-range row access or illegal cursor position.
func IndexError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrIndex)
}

// UnsupportedError reports an operation requested on a column lacking the
// needed capability.
func UnsupportedError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrUnsupported)
}

// CancelledError reports that the executor stopped because its context was
// cancelled between batches.
func CancelledError(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrCancelled)
}

// UserError wraps a panic or error surfaced from a user-supplied lambda so it
// propagates transparently from the blocking executor call (spec §7: the
// first observed failure is re-raised, others may still complete).
func UserError(recovered interface{}) error {
	if err, ok := recovered.(error); ok {
		return errors.Mark(errors.Wrap(err, "belt: panic in user callback"), ErrUser)
	}
	return errors.Mark(errors.Newf("belt: panic in user callback: %v", recovered), ErrUser)
}

// IsNull, IsArgument, ... classify an error by kind.
func IsNull(err error) bool        { return errors.Is(err, ErrNull) }
func IsArgument(err error) bool    { return errors.Is(err, ErrArgument) }
func IsState(err error) bool       { return errors.Is(err, ErrState) }
func IsIndex(err error) bool       { return errors.Is(err, ErrIndex) }
func IsUnsupported(err error) bool { return errors.Is(err, ErrUnsupported) }
func IsCancelled(err error) bool   { return errors.Is(err, ErrCancelled) }
func IsUser(err error) bool        { return errors.Is(err, ErrUser) }
