package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vineetp6/belt/util"
)

func dict(values ...interface{}) []interface{} {
	return append([]interface{}{nil}, values...)
}

func TestCategoricalColumnPackedU8Basics(t *testing.T) {
	p := util.NewPackedIntegers(util.U8, 4)
	p.Set(0, 1)
	p.Set(1, 2)
	p.Set(2, 0)
	p.Set(3, 1)
	c := NewCategoricalColumn(Nominal, p, dict("x", "y"))

	require.Equal(t, 4, c.Size())
	require.Equal(t, Categorical, c.Category())
	require.True(t, c.Capabilities().Has(NumericReadable))
	require.True(t, c.Capabilities().Has(ObjectReadable))
	require.Equal(t, 3, c.DictionarySize())
}

func TestCategoricalColumnNumericViewMissingIsNaN(t *testing.T) {
	// spec §8: ∀ i, C.getIndex(i) ∈ [0, dictionary.size), and the numeric
	// view of index 0 is NaN.
	p := util.NewPackedIntegers(util.U8, 3)
	p.Set(0, 0)
	p.Set(1, 1)
	p.Set(2, 2)
	c := NewCategoricalColumn(Nominal, p, dict("a", "b"))

	dst := make([]float64, 3)
	c.FillNumeric(dst, 0, 0, 1)
	require.True(t, math.IsNaN(dst[0]))
	require.Equal(t, 1.0, dst[1])
	require.Equal(t, 2.0, dst[2])
}

func TestCategoricalColumnObjectViewMatchesDictionaryLookup(t *testing.T) {
	// spec §8: ∀ i, C.getObject(i) = C.dictionary[C.getIndex(i)].
	p := util.NewPackedIntegers(util.U8, 3)
	p.Set(0, 0)
	p.Set(1, 1)
	p.Set(2, 2)
	c := NewCategoricalColumn(Nominal, p, dict("a", "b"))

	dst := make([]interface{}, 3)
	c.FillObject(dst, 0, 0, 1)
	require.Equal(t, []interface{}{nil, "a", "b"}, dst)
}

func TestCategoricalColumnIntDataUnpacksRawIndices(t *testing.T) {
	p := util.NewPackedIntegers(util.U2, 4)
	p.Set(0, 1)
	p.Set(1, 2)
	p.Set(2, 3)
	p.Set(3, 0)
	c := NewCategoricalColumn(Nominal, p, dict("a", "b", "c"))
	require.Equal(t, []int32{1, 2, 3, 0}, c.IntData())
}

func TestCategoricalColumnU16AndI32Variants(t *testing.T) {
	u16 := NewCategoricalColumnU16(Nominal, []uint16{0, 1, 2}, dict("a", "b"))
	require.Equal(t, []int32{0, 1, 2}, u16.IntData())

	i32 := NewCategoricalColumnI32(Nominal, []int32{2, 0, 1}, dict("a", "b"))
	require.Equal(t, []int32{2, 0, 1}, i32.IntData())
}

func TestGetDictionaryTypedSlice(t *testing.T) {
	p := util.NewPackedIntegers(util.U8, 1)
	c := NewCategoricalColumn(Nominal, p, dict("x", "y"))
	d, err := GetDictionary[string](c)
	require.NoError(t, err)
	require.Equal(t, []string{"", "x", "y"}, d)
}

func TestGetDictionaryUnsupportedOnNonCategorical(t *testing.T) {
	c := NewNumericColumn(Real, []float64{1})
	_, err := GetDictionary[string](c)
	require.True(t, util.IsUnsupported(err))
}

func TestCategoricalColumnFillStopsAtColumnEnd(t *testing.T) {
	p := util.NewPackedIntegers(util.U8, 2)
	p.Set(0, 1)
	p.Set(1, 1)
	c := NewCategoricalColumn(Nominal, p, dict("a"))
	dst := []interface{}{"sentinel", "sentinel", "sentinel"}
	c.FillObject(dst, 1, 0, 1)
	require.Equal(t, []interface{}{"a", "sentinel", "sentinel"}, dst)
}
