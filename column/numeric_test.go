package column

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericColumnBasics(t *testing.T) {
	c := NewNumericColumn(Real, []float64{1, 2, 3})
	require.Equal(t, 3, c.Size())
	require.Equal(t, Numeric, c.Category())
	require.True(t, c.Capabilities().Has(NumericReadable))
	require.False(t, c.Capabilities().Has(ObjectReadable))
}

func TestNumericColumnFillNumericMatchesValues(t *testing.T) {
	// spec §8: fill(dst, start, 0, 1) produces dst[i] = C.getNumeric(start+i).
	c := NewNumericColumn(Real, []float64{10, 20, 30, 40, 50})
	dst := make([]float64, 3)
	c.FillNumeric(dst, 1, 0, 1)
	require.Equal(t, []float64{20, 30, 40}, dst)
}

func TestNumericColumnFillStopsAtColumnEnd(t *testing.T) {
	c := NewNumericColumn(Real, []float64{1, 2, 3})
	dst := []float64{-1, -1, -1, -1}
	c.FillNumeric(dst, 1, 0, 1)
	require.Equal(t, []float64{2, 3, -1, -1}, dst, "rows past Size() must be left untouched")
}

func TestNumericColumnFillWithStride(t *testing.T) {
	c := NewNumericColumn(Real, []float64{1, 2, 3})
	dst := make([]float64, 6)
	c.FillNumeric(dst, 0, 0, 2)
	require.Equal(t, []float64{1, 0, 2, 0, 3, 0}, dst)
}

func TestNumericColumnFillObjectPanics(t *testing.T) {
	c := NewNumericColumn(Real, []float64{1})
	require.Panics(t, func() { c.FillObject(make([]interface{}, 1), 0, 0, 1) })
}

func TestNumericColumnRawData(t *testing.T) {
	c := NewNumericColumn(Real, []float64{7, 8})
	require.Equal(t, []float64{7, 8}, c.RawData())
}

func TestNumericColumnZeroLength(t *testing.T) {
	c := NewNumericColumn(Real, nil)
	require.Equal(t, 0, c.Size())
	dst := make([]float64, 2)
	c.FillNumeric(dst, 0, 0, 1)
	require.Equal(t, []float64{0, 0}, dst)
}
