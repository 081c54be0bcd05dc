package reader

import "github.com/vineetp6/belt/column"

// ObjectReader is a chunked forward cursor over a single column's object
// view, typed as T (spec §4.3). Ground: GeneralRowReaderTests.java's
// ObjectColumnReader usage.
type ObjectReader[T any] struct {
	col         column.Column
	chunk       []interface{}
	chunkBase   int
	cursor      int
	needsRefill bool
}

// NewObjectReader creates a reader over col with the default chunk size.
func NewObjectReader[T any](col column.Column) *ObjectReader[T] {
	return NewObjectReaderSized[T](col, SmallBufferSize)
}

// NewObjectReaderSized creates a reader over col with an explicit chunk size.
func NewObjectReaderSized[T any](col column.Column, bufferSize int) *ObjectReader[T] {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &ObjectReader[T]{col: col, chunk: make([]interface{}, bufferSize), cursor: BeforeFirst, needsRefill: true}
}

// Read advances the cursor by one and returns the object view of the new
// current row, type-asserted to T (the zero value of T if the slot is nil).
func (r *ObjectReader[T]) Read() T {
	r.cursor++
	if r.needsRefill || r.cursor-r.chunkBase == len(r.chunk) {
		r.chunkBase = r.cursor
		r.col.FillObject(r.chunk, r.chunkBase, 0, 1)
		r.needsRefill = false
	}
	v := r.chunk[r.cursor-r.chunkBase]
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// SetPosition sets the cursor so the next Read() returns row p+1.
func (r *ObjectReader[T]) SetPosition(p int) error {
	if err := validatePosition(p); err != nil {
		return err
	}
	r.cursor = p
	r.needsRefill = true
	return nil
}
