package reader

import (
	"math"
	"strconv"

	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/util"
)

// Row is the per-row accessor view handed to multi-column reducers (spec
// §4.3). It is only valid for the lifetime of the current Move() call.
type Row interface {
	GetNumeric(j int) float64
	GetIndex(j int) int
	GetObject(j int) interface{}
}

// columnSlot tracks the per-column scratch state shared by RowReader and
// GeneralRowReader: a numeric chunk (if the column is NumericReadable or
// Categorical, since the index view is derived from the numeric view) and an
// object chunk (if the column is ObjectReadable).
type columnSlot struct {
	col        column.Column
	numChunk   []float64
	objChunk   []interface{}
	chunkBase  int
	isCategory bool
}

func newColumnSlot(col column.Column, bufSize int, wantNumeric, wantObject bool) *columnSlot {
	s := &columnSlot{col: col, isCategory: col.Category() == column.Categorical}
	if wantNumeric && col.Capabilities().Has(column.NumericReadable) {
		s.numChunk = make([]float64, bufSize)
	}
	if wantObject && col.Capabilities().Has(column.ObjectReadable) {
		s.objChunk = make([]interface{}, bufSize)
	}
	return s
}

func (s *columnSlot) refill(base int) {
	s.chunkBase = base
	if s.numChunk != nil {
		s.col.FillNumeric(s.numChunk, base, 0, 1)
	}
	if s.objChunk != nil {
		s.col.FillObject(s.objChunk, base, 0, 1)
	}
}

func (s *columnSlot) numeric(cursor int) float64 {
	if s.numChunk == nil {
		return math.NaN()
	}
	return s.numChunk[cursor-s.chunkBase]
}

func (s *columnSlot) index(cursor int) int {
	if !s.isCategory || s.numChunk == nil {
		return 0
	}
	v := s.numChunk[cursor-s.chunkBase]
	if math.IsNaN(v) {
		return 0
	}
	return int(v)
}

func (s *columnSlot) object(cursor int) interface{} {
	if s.objChunk == nil {
		return nil
	}
	return s.objChunk[cursor-s.chunkBase]
}

// multiReaderCore is the shared fill-scheduling state for RowReader and
// GeneralRowReader: one chunk buffer per view per column, sized so that
// total scratch across all columns stays near desiredRows (spec §4.3: "per
// column B = max(1, desiredRows / W)").
type multiReaderCore struct {
	slots       []*columnSlot
	height      int
	cursor      int
	needsRefill bool
}

func newMultiReaderCore(cols []column.Column, desiredRows int, wantNumeric, wantObject bool) (*multiReaderCore, error) {
	if len(cols) == 0 {
		return nil, util.ArgumentError("reader: at least one column is required")
	}
	height := cols[0].Size()
	for _, c := range cols {
		if c.Size() != height {
			return nil, util.ArgumentError("reader: all columns must share one height")
		}
	}
	w := len(cols)
	bufSize := desiredRows / w
	if bufSize < 1 {
		bufSize = 1
	}
	slots := make([]*columnSlot, w)
	for i, c := range cols {
		slots[i] = newColumnSlot(c, bufSize, wantNumeric, wantObject)
	}
	return &multiReaderCore{slots: slots, height: height, cursor: BeforeFirst, needsRefill: true}, nil
}

func (m *multiReaderCore) width() int      { return len(m.slots) }
func (m *multiReaderCore) position() int   { return m.cursor }
func (m *multiReaderCore) remaining() int  { return m.height - (m.cursor + 1) }
func (m *multiReaderCore) hasRemaining() bool { return m.cursor+1 < m.height }

func (m *multiReaderCore) move() {
	m.cursor++
	if m.needsRefill || m.cursor-m.slots[0].chunkBase == cap0(m.slots) {
		for _, s := range m.slots {
			s.refill(m.cursor)
		}
		m.needsRefill = false
	}
}

// cap0 returns the chunk capacity, derived from whichever chunk (numeric or
// object) slot 0 actually allocated.
func cap0(slots []*columnSlot) int {
	s := slots[0]
	if s.numChunk != nil {
		return len(s.numChunk)
	}
	if s.objChunk != nil {
		return len(s.objChunk)
	}
	return 1
}

func (m *multiReaderCore) setPosition(p int) error {
	if err := validatePosition(p); err != nil {
		return err
	}
	m.cursor = p
	m.needsRefill = true
	return nil
}

// RowReader is a multi-column cursor over columns guaranteed categorical
// (spec §4.3). It exposes only GetNumeric/GetIndex; GetObject is not needed
// for the categorical-specialized reducers that use it.
type RowReader struct {
	core *multiReaderCore
}

// NewRowReader creates a RowReader over cols with a default total-scratch
// target of SmallBufferSize rows. Every column must be categorical.
func NewRowReader(cols []column.Column) (*RowReader, error) {
	return NewRowReaderSized(cols, SmallBufferSize)
}

// NewRowReaderSized creates a RowReader with an explicit total-scratch target.
func NewRowReaderSized(cols []column.Column, desiredRows int) (*RowReader, error) {
	for _, c := range cols {
		if c.Category() != column.Categorical {
			return nil, util.UnsupportedError("reader: RowReader requires categorical columns")
		}
	}
	core, err := newMultiReaderCore(cols, desiredRows, true, false)
	if err != nil {
		return nil, err
	}
	return &RowReader{core: core}, nil
}

func (r *RowReader) Width() int         { return r.core.width() }
func (r *RowReader) Position() int      { return r.core.position() }
func (r *RowReader) Remaining() int     { return r.core.remaining() }
func (r *RowReader) HasRemaining() bool { return r.core.hasRemaining() }
func (r *RowReader) Move()              { r.core.move() }
func (r *RowReader) SetPosition(p int) error { return r.core.setPosition(p) }

func (r *RowReader) GetNumeric(j int) float64 { return r.core.slots[j].numeric(r.core.cursor) }
func (r *RowReader) GetIndex(j int) int       { return r.core.slots[j].index(r.core.cursor) }

// GetObject always returns nil: RowReader only guarantees a numeric/index
// view over its (categorical-only) columns. It satisfies the Row interface
// so RowReader and GeneralRowReader can share reducer code.
func (r *RowReader) GetObject(j int) interface{} { return nil }

// GeneralRowReader is a multi-column cursor over columns of mixed category
// (spec §4.3). Ground: GeneralRowReaderTests.java.
type GeneralRowReader struct {
	core *multiReaderCore
}

// NewGeneralRowReader creates a GeneralRowReader over cols with a default
// total-scratch target of SmallBufferSize rows.
func NewGeneralRowReader(cols []column.Column) (*GeneralRowReader, error) {
	return NewGeneralRowReaderSized(cols, SmallBufferSize)
}

// NewGeneralRowReaderSized creates a GeneralRowReader with an explicit
// total-scratch target.
func NewGeneralRowReaderSized(cols []column.Column, desiredRows int) (*GeneralRowReader, error) {
	core, err := newMultiReaderCore(cols, desiredRows, true, true)
	if err != nil {
		return nil, err
	}
	return &GeneralRowReader{core: core}, nil
}

func (r *GeneralRowReader) Width() int         { return r.core.width() }
func (r *GeneralRowReader) Position() int      { return r.core.position() }
func (r *GeneralRowReader) Remaining() int     { return r.core.remaining() }
func (r *GeneralRowReader) HasRemaining() bool { return r.core.hasRemaining() }
func (r *GeneralRowReader) Move()              { r.core.move() }
func (r *GeneralRowReader) SetPosition(p int) error { return r.core.setPosition(p) }

func (r *GeneralRowReader) GetNumeric(j int) float64   { return r.core.slots[j].numeric(r.core.cursor) }
func (r *GeneralRowReader) GetIndex(j int) int         { return r.core.slots[j].index(r.core.cursor) }
func (r *GeneralRowReader) GetObject(j int) interface{} { return r.core.slots[j].object(r.core.cursor) }

// String implements the stable toString contract (spec §6):
// "General Row reader (<rows>x<cols>)\nRow position: <p>".
func (r *GeneralRowReader) String() string {
	p := "BEFORE_FIRST"
	if r.core.cursor != BeforeFirst {
		p = strconv.Itoa(r.core.cursor)
	}
	return "General Row reader (" + strconv.Itoa(r.core.height) + "x" + strconv.Itoa(r.core.width()) + ")\nRow position: " + p
}
