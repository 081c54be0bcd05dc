package reader

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vineetp6/belt/column"
)

func freeColumnOf(values ...string) *column.FreeColumn {
	data := make([]interface{}, len(values))
	for i, v := range values {
		data[i] = v
	}
	return column.NewFreeColumn(column.FreeType("label", ""), data)
}

func TestObjectReaderSequentialRead(t *testing.T) {
	col := freeColumnOf("a", "b", "c", "d", "e")
	rd := NewObjectReaderSized[string](col, 2)
	for _, want := range []string{"a", "b", "c", "d", "e"} {
		require.Equal(t, want, rd.Read())
	}
}

func TestObjectReaderSetPosition(t *testing.T) {
	col := freeColumnOf("a", "b", "c", "d")
	rd := NewObjectReaderSized[string](col, 4)
	require.NoError(t, rd.SetPosition(1))
	require.Equal(t, "c", rd.Read())
}

func TestObjectReaderSetPositionRejectsBelowBeforeFirst(t *testing.T) {
	col := freeColumnOf("a")
	rd := NewObjectReaderSized[string](col, 1)
	err := rd.SetPosition(-5)
	require.Error(t, err)
}
