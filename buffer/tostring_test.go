package buffer

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vineetp6/belt/util"
)

func TestRealBufferStringShortFormatsAllValues(t *testing.T) {
	b, err := NewRealBuffer(3)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 1.0))
	require.NoError(t, b.Set(1, math.NaN()))
	require.NoError(t, b.Set(2, math.Inf(-1)))

	s := b.String()
	require.True(t, strings.HasPrefix(s, "Real Buffer (3)\n("))
	require.Contains(t, s, "1.000")
	require.Contains(t, s, "?")
	require.Contains(t, s, "-Infinity")
}

func TestIntegerBufferStringFormatsPlainDecimals(t *testing.T) {
	b, err := NewIntegerBuffer(2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 5))
	require.NoError(t, b.Set(1, -3))
	require.Equal(t, "Integer Buffer (2)\n(5, -3)", b.String())
}

func TestRealBufferStringTruncatesAfter32Elements(t *testing.T) {
	// spec §8 scenario 7: a real buffer of length 33 prints the first 30
	// values then ", ..., <value at n-1>".
	b, err := NewRealBuffer(33)
	require.NoError(t, err)
	for i := 0; i < 33; i++ {
		require.NoError(t, b.Set(i, float64(i)))
	}
	require.NoError(t, b.Set(32, 100.0))

	s := b.String()
	require.True(t, strings.HasPrefix(s, "Real Buffer (33)\n("))
	require.Contains(t, s, ", ..., 100.000")
	require.NotContains(t, s, "30.000")
	require.Contains(t, s, "29.000")
}

func TestBufferStringDoesNotTruncateAtExactly32(t *testing.T) {
	b, err := NewRealBuffer(32)
	require.NoError(t, err)
	for i := 0; i < 32; i++ {
		require.NoError(t, b.Set(i, float64(i)))
	}
	s := b.String()
	require.NotContains(t, s, "...")
}

func TestCategoricalBufferStringShowsMissingAsQuestionMark(t *testing.T) {
	b, err := NewCategoricalBuffer[string](2, util.U8)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, "x", false))
	require.NoError(t, b.Set(1, "", true))
	require.Equal(t, "Categorical Buffer (2)\n(x, ?)", b.String())
}

func TestFreeBufferStringFormatsElements(t *testing.T) {
	b, err := NewFreeBuffer[string](2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, "hi"))
	s := b.String()
	require.True(t, strings.HasPrefix(s, "Free Buffer (2)\n("))
	require.Contains(t, s, "hi")
}
