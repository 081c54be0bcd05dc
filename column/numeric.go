package column

// NumericColumn is a dense, fixed-width 64-bit float column (spec §3.1).
// Ground: GeneralRowReaderTests.java's DoubleArrayColumn.
type NumericColumn struct {
	typ  Type
	data []float64
}

// NewNumericColumn wraps data (taken by reference, not copied — callers must
// not retain a mutable alias after construction) as a frozen numeric column
// of the given type.
func NewNumericColumn(typ Type, data []float64) *NumericColumn {
	return &NumericColumn{typ: typ, data: data}
}

func (c *NumericColumn) Size() int               { return len(c.data) }
func (c *NumericColumn) Type() Type               { return c.typ }
func (c *NumericColumn) Category() Category       { return Numeric }
func (c *NumericColumn) Capabilities() Capabilities {
	return Capabilities(NumericReadable | Sortable)
}

func (c *NumericColumn) FillNumeric(dst []float64, startRow, dstOffset, stride int) {
	rows := len(dst) / stride
	for i := 0; i < rows; i++ {
		row := startRow + i
		if row >= len(c.data) {
			break
		}
		dst[dstOffset+i*stride] = c.data[row]
	}
}

func (c *NumericColumn) FillObject(dst []interface{}, startRow, dstOffset, stride int) {
	// Numeric columns are not OBJECT_READABLE (spec §4.1); calling this is a
	// programming error in belt itself, not a user-facing one, so it panics
	// rather than returning an error.
	panic("column: FillObject called on a non-OBJECT_READABLE numeric column")
}

// RawData exposes the backing slice for zero-copy consumers (e.g. the
// categorical-specialized int reducer reads raw indices the same way).
func (c *NumericColumn) RawData() []float64 { return c.data }
