package buffer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/util"
)

func TestDateTimeBufferSetGetRoundTrips(t *testing.T) {
	b, err := NewDateTimeBuffer(2)
	require.NoError(t, err)
	ts := time.Date(2024, 3, 14, 9, 26, 53, 589793238, time.UTC)
	require.NoError(t, b.Set(0, ts, false))
	require.NoError(t, b.Set(1, time.Time{}, true))

	got, ok := b.Get(0)
	require.True(t, ok)
	require.True(t, got.Equal(ts))

	_, ok = b.Get(1)
	require.False(t, ok)
}

func TestDateTimeBufferFreezeRejectsSet(t *testing.T) {
	b, err := NewDateTimeBuffer(1)
	require.NoError(t, err)
	b.Freeze()
	require.True(t, util.IsState(b.Set(0, time.Now(), false)))
}

func TestDateTimeBufferToColumnRejectsNonNumericType(t *testing.T) {
	b, err := NewDateTimeBuffer(1)
	require.NoError(t, err)
	_, err = b.ToColumn(column.Nominal)
	require.True(t, util.IsArgument(err))
}

func TestDateTimeBufferToColumnPreservesValues(t *testing.T) {
	b, err := NewDateTimeBuffer(2)
	require.NoError(t, err)
	ts := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.Set(0, ts, false))
	require.NoError(t, b.Set(1, time.Time{}, true))

	col, err := b.ToColumn(column.DateTime)
	require.NoError(t, err)
	require.Equal(t, 2, col.Size())

	got, ok := col.At(0)
	require.True(t, ok)
	require.True(t, got.Equal(ts))

	_, ok = col.At(1)
	require.False(t, ok)
}
