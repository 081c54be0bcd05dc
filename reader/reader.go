// Package reader implements buffered row cursors over columns (spec §4.3,
// component C4). Every reader is a single-threaded forward cursor: it must
// not be shared across goroutines, and it amortizes per-row overhead by
// bulk-filling a chunk buffer via the underlying column's Fill* methods.
package reader

import "github.com/vineetp6/belt/util"

// BeforeFirst is the sentinel cursor position before any Move()/Read() has
// happened (spec §6). It is the only legal negative position.
const BeforeFirst = -1

// SmallBufferSize is the default per-column chunk size (spec §3.1).
const SmallBufferSize = 512

// validatePosition rejects any position less than BeforeFirst.
func validatePosition(p int) error {
	if p < BeforeFirst {
		return util.IndexError("reader: position %d is before BEFORE_FIRST", p)
	}
	return nil
}
