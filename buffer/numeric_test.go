package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/util"
)

func TestRealBufferSetGet(t *testing.T) {
	b, err := NewRealBuffer(3)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 1.5))
	require.NoError(t, b.Set(1, -2.25))
	require.Equal(t, 1.5, b.Get(0))
	require.Equal(t, -2.25, b.Get(1))
	require.Equal(t, 3, b.Size())
}

func TestRealBufferNegativeLengthIsArgumentError(t *testing.T) {
	_, err := NewRealBuffer(-1)
	require.True(t, util.IsArgument(err))
}

func TestRealBufferFreezeRejectsSet(t *testing.T) {
	b, err := NewRealBuffer(2)
	require.NoError(t, err)
	b.Freeze()
	b.Freeze() // idempotent
	require.True(t, b.Frozen())
	err = b.Set(0, 1)
	require.True(t, util.IsState(err))
}

func TestRealBufferToColumnRejectsWrongCategory(t *testing.T) {
	b, err := NewRealBuffer(2)
	require.NoError(t, err)
	_, err = b.ToColumn(column.Nominal)
	require.True(t, util.IsArgument(err))
}

func TestRealBufferToColumnFreezesAndProducesMatchingColumn(t *testing.T) {
	b, err := NewRealBuffer(3)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 1))
	require.NoError(t, b.Set(1, 2))
	require.NoError(t, b.Set(2, 3))

	col, err := b.ToColumn(column.Real)
	require.NoError(t, err)
	require.True(t, b.Frozen())
	require.Equal(t, 3, col.Size())

	dst := make([]float64, 3)
	col.FillNumeric(dst, 0, 0, 1)
	require.Equal(t, []float64{1, 2, 3}, dst)
}

func TestIntegerBufferRoundsHalfUp(t *testing.T) {
	b, err := NewIntegerBuffer(5)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0.5))
	require.NoError(t, b.Set(1, -0.5))
	require.NoError(t, b.Set(2, 1.5))
	require.NoError(t, b.Set(3, 2.4))
	require.NoError(t, b.Set(4, -1.5))

	require.Equal(t, 1.0, b.Get(0))
	require.Equal(t, 0.0, b.Get(1))
	require.Equal(t, 2.0, b.Get(2))
	require.Equal(t, 2.0, b.Get(3))
	require.Equal(t, -1.0, b.Get(4))
}

func TestIntegerBufferFrozenRejectsSet(t *testing.T) {
	b, err := NewIntegerBuffer(1)
	require.NoError(t, err)
	b.Freeze()
	err = b.Set(0, 1)
	require.True(t, util.IsState(err))
}

func TestGrowingRealBufferResize(t *testing.T) {
	b, err := NewGrowingRealBuffer(2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 5))
	require.NoError(t, b.Set(1, 6))

	require.NoError(t, b.Resize(4))
	require.Equal(t, 4, b.Size())
	require.Equal(t, 5.0, b.Get(0))
	require.Equal(t, 6.0, b.Get(1))
	require.Equal(t, 0.0, b.Get(2))
	require.Equal(t, 0.0, b.Get(3))

	require.NoError(t, b.Resize(1))
	require.Equal(t, 1, b.Size())
	require.Equal(t, 5.0, b.Get(0))
}

func TestGrowingRealBufferResizeAfterFreezeIsStateError(t *testing.T) {
	b, err := NewGrowingRealBuffer(2)
	require.NoError(t, err)
	b.Freeze()
	err = b.Resize(5)
	require.True(t, util.IsState(err))
}

func TestGrowingIntegerBufferResizeAndRounding(t *testing.T) {
	b, err := NewGrowingIntegerBuffer(1)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 3.6))
	require.Equal(t, 4.0, b.Get(0))
	require.NoError(t, b.Resize(3))
	require.Equal(t, 3, b.Size())
	require.NoError(t, b.Set(2, 9.5))
	require.Equal(t, 10.0, b.Get(2))
}

func TestRealBufferZeroLength(t *testing.T) {
	b, err := NewRealBuffer(0)
	require.NoError(t, err)
	require.Equal(t, 0, b.Size())
}

func TestRealBufferNaNAndInfRoundTrip(t *testing.T) {
	b, err := NewRealBuffer(2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, math.NaN()))
	require.NoError(t, b.Set(1, math.Inf(1)))
	require.True(t, math.IsNaN(b.Get(0)))
	require.True(t, math.IsInf(b.Get(1), 1))
}
