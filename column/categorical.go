package column

import (
	"math"

	"github.com/vineetp6/belt/util"
)

// indexStore abstracts over the three raw storage shapes a categorical
// column's indices can live in: packed (U2/U4/U8), []uint16 (U16) or []int32
// (I32). Columns dispatch through this instead of a type switch per format.
type indexStore interface {
	size() int
	get(i int) int32
	unpacked() []int32 // materializes the full unpacked index stream
}

type packedStore struct{ p *util.PackedIntegers }

func (s packedStore) size() int       { return s.p.Size() }
func (s packedStore) get(i int) int32 { return int32(s.p.Get(i)) }
func (s packedStore) unpacked() []int32 {
	out := make([]int32, s.p.Size())
	for i := range out {
		out[i] = int32(s.p.Get(i))
	}
	return out
}

type uint16Store struct{ data []uint16 }

func (s uint16Store) size() int         { return len(s.data) }
func (s uint16Store) get(i int) int32   { return int32(s.data[i]) }
func (s uint16Store) unpacked() []int32 {
	out := make([]int32, len(s.data))
	for i, v := range s.data {
		out[i] = int32(v)
	}
	return out
}

type int32Store struct{ data []int32 }

func (s int32Store) size() int         { return len(s.data) }
func (s int32Store) get(i int) int32   { return s.data[i] }
func (s int32Store) unpacked() []int32 { return s.data }

// CategoricalColumn is a dictionary-coded column: a packed index vector plus
// an ordered dictionary where index 0 means missing (spec §3.1). Ground:
// GeneralRowReaderTests.java's SimpleCategoricalColumn.
type CategoricalColumn struct {
	typ        Type
	store      indexStore
	format     util.Format
	dictionary []interface{} // dictionary[0] is always nil (the missing sentinel)
}

// NewCategoricalColumn constructs a frozen categorical column from packed
// (U2/U4/U8) index storage and a dictionary.
func NewCategoricalColumn(typ Type, packed *util.PackedIntegers, dictionary []interface{}) *CategoricalColumn {
	return &CategoricalColumn{typ: typ, store: packedStore{packed}, format: packed.Format(), dictionary: dictionary}
}

// NewCategoricalColumnU16 constructs a frozen categorical column from U16
// index storage and a dictionary.
func NewCategoricalColumnU16(typ Type, data []uint16, dictionary []interface{}) *CategoricalColumn {
	return &CategoricalColumn{typ: typ, store: uint16Store{data}, format: util.U16, dictionary: dictionary}
}

// NewCategoricalColumnI32 constructs a frozen categorical column from I32
// index storage and a dictionary.
func NewCategoricalColumnI32(typ Type, data []int32, dictionary []interface{}) *CategoricalColumn {
	return &CategoricalColumn{typ: typ, store: int32Store{data}, format: util.I32, dictionary: dictionary}
}

func (c *CategoricalColumn) Size() int         { return c.store.size() }
func (c *CategoricalColumn) Type() Type        { return c.typ }
func (c *CategoricalColumn) Category() Category { return Categorical }
func (c *CategoricalColumn) Capabilities() Capabilities {
	return Capabilities(NumericReadable | ObjectReadable | Sortable)
}

// Format returns the packed index format backing this column.
func (c *CategoricalColumn) Format() util.Format { return c.format }

func (c *CategoricalColumn) FillNumeric(dst []float64, startRow, dstOffset, stride int) {
	rows := len(dst) / stride
	n := c.store.size()
	for i := 0; i < rows; i++ {
		row := startRow + i
		if row >= n {
			break
		}
		idx := c.store.get(row)
		if idx == 0 {
			dst[dstOffset+i*stride] = math.NaN()
		} else {
			dst[dstOffset+i*stride] = float64(idx)
		}
	}
}

func (c *CategoricalColumn) FillObject(dst []interface{}, startRow, dstOffset, stride int) {
	rows := len(dst) / stride
	n := c.store.size()
	for i := 0; i < rows; i++ {
		row := startRow + i
		if row >= n {
			break
		}
		dst[dstOffset+i*stride] = c.dictionary[c.store.get(row)]
	}
}

// DictionarySize returns len(V) including the missing sentinel at index 0.
func (c *CategoricalColumn) DictionarySize() int { return len(c.dictionary) }

// IntData returns the unpacked raw index stream.
func (c *CategoricalColumn) IntData() []int32 { return c.store.unpacked() }

func (c *CategoricalColumn) dictionaryValues() []interface{} { return c.dictionary }
