package column

import "math"

// FreeColumn is a boxed vector of arbitrary objects (spec §3.1). Ground:
// GeneralRowReaderTests.java's SimpleFreeColumn.
type FreeColumn struct {
	typ  Type
	data []interface{}
}

// NewFreeColumn wraps data as a frozen free/object column of the given type.
func NewFreeColumn(typ Type, data []interface{}) *FreeColumn {
	return &FreeColumn{typ: typ, data: data}
}

func (c *FreeColumn) Size() int         { return len(c.data) }
func (c *FreeColumn) Type() Type        { return c.typ }
func (c *FreeColumn) Category() Category { return Free }
func (c *FreeColumn) Capabilities() Capabilities {
	return Capabilities(ObjectReadable)
}

func (c *FreeColumn) FillNumeric(dst []float64, startRow, dstOffset, stride int) {
	// Free columns are not NUMERIC_READABLE; every value reads as NaN per
	// spec §3.2 invariant 3, but belt never actually calls this since
	// Capabilities() excludes NumericReadable — present for completeness.
	rows := len(dst) / stride
	for i := 0; i < rows; i++ {
		if startRow+i >= len(c.data) {
			break
		}
		dst[dstOffset+i*stride] = math.NaN()
	}
}

func (c *FreeColumn) FillObject(dst []interface{}, startRow, dstOffset, stride int) {
	rows := len(dst) / stride
	n := len(c.data)
	for i := 0; i < rows; i++ {
		row := startRow + i
		if row >= n {
			break
		}
		dst[dstOffset+i*stride] = c.data[row]
	}
}
