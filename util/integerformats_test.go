package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatMaxValue(t *testing.T) {
	require.Equal(t, 3, U2.MaxValue())
	require.Equal(t, 15, U4.MaxValue())
	require.Equal(t, 255, U8.MaxValue())
	require.Equal(t, 65535, U16.MaxValue())
	require.Equal(t, math.MaxInt32, I32.MaxValue())
}

func TestFormatIndicesPerByte(t *testing.T) {
	require.Equal(t, 4, U2.IndicesPerByte())
	require.Equal(t, 2, U4.IndicesPerByte())
	require.Equal(t, 1, U8.IndicesPerByte())
	require.Equal(t, 0, U16.IndicesPerByte())
	require.Equal(t, 0, I32.IndicesPerByte())
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "UNSIGNED_INT2", U2.String())
	require.Equal(t, "UNSIGNED_INT4", U4.String())
	require.Equal(t, "UNSIGNED_INT8", U8.String())
	require.Equal(t, "UNSIGNED_INT16", U16.String())
	require.Equal(t, "SIGNED_INT32", I32.String())
}

func TestPackedIntegersU2RoundTrip(t *testing.T) {
	p := NewPackedIntegers(U2, 10)
	require.Equal(t, 10, p.Size())
	for i := 0; i < 10; i++ {
		p.Set(i, i%4)
	}
	for i := 0; i < 10; i++ {
		require.Equal(t, i%4, p.Get(i))
	}
}

func TestPackedIntegersU4RoundTrip(t *testing.T) {
	p := NewPackedIntegers(U4, 20)
	for i := 0; i < 20; i++ {
		p.Set(i, i%16)
	}
	for i := 0; i < 20; i++ {
		require.Equal(t, i%16, p.Get(i))
	}
}

func TestPackedIntegersU8RoundTrip(t *testing.T) {
	p := NewPackedIntegers(U8, 300)
	for i := 0; i < 300; i++ {
		p.Set(i, i%256)
	}
	for i := 0; i < 300; i++ {
		require.Equal(t, i%256, p.Get(i))
	}
}

func TestPackedIntegersNonPackedFormatPanics(t *testing.T) {
	require.Panics(t, func() { NewPackedIntegers(U16, 4) })
}

func TestPackedIntegersU2DoesNotLeakIntoNeighborLanes(t *testing.T) {
	// A byte holds 4 packed U2 values; writing to one lane must not disturb
	// its neighbors within the same byte.
	p := NewPackedIntegers(U2, 4)
	p.Set(0, 3)
	p.Set(1, 0)
	p.Set(2, 2)
	p.Set(3, 1)
	require.Equal(t, 3, p.Get(0))
	require.Equal(t, 0, p.Get(1))
	require.Equal(t, 2, p.Get(2))
	require.Equal(t, 1, p.Get(3))
}
