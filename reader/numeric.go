package reader

import "github.com/vineetp6/belt/column"

// NumericReader is a chunked forward cursor over a single column's numeric
// view (spec §4.3). Ground: GeneralRowReaderTests.java's ColumnReader usage.
type NumericReader struct {
	col         column.Column
	chunk       []float64
	chunkBase   int
	cursor      int
	needsRefill bool
}

// NewNumericReader creates a reader over col with the default chunk size.
func NewNumericReader(col column.Column) *NumericReader {
	return NewNumericReaderSized(col, SmallBufferSize)
}

// NewNumericReaderSized creates a reader over col with an explicit chunk
// size, e.g. to bound scratch memory for a desired sweep length.
func NewNumericReaderSized(col column.Column, bufferSize int) *NumericReader {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &NumericReader{col: col, chunk: make([]float64, bufferSize), cursor: BeforeFirst, needsRefill: true}
}

// Read advances the cursor by one and returns the numeric view of the new
// current row, refilling the chunk buffer from the column when exhausted.
func (r *NumericReader) Read() float64 {
	r.cursor++
	if r.needsRefill || r.cursor-r.chunkBase == len(r.chunk) {
		r.chunkBase = r.cursor
		r.col.FillNumeric(r.chunk, r.chunkBase, 0, 1)
		r.needsRefill = false
	}
	return r.chunk[r.cursor-r.chunkBase]
}

// SetPosition sets the cursor so the next Read() returns row p+1. Passing
// BeforeFirst resets the reader to its initial state. p must be >= BeforeFirst.
func (r *NumericReader) SetPosition(p int) error {
	if err := validatePosition(p); err != nil {
		return err
	}
	r.cursor = p
	r.needsRefill = true
	return nil
}
