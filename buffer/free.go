package buffer

import (
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/util"
)

// FreeBuffer is a boxed vector of elements of type T (spec §4.2
// "Free/object variant").
type FreeBuffer[T any] struct {
	frozenFlag
	data []T
}

// NewFreeBuffer allocates a free buffer of length n.
func NewFreeBuffer[T any](n int) (*FreeBuffer[T], error) {
	if n < 0 {
		return nil, util.ArgumentError("buffer: negative length %d", n)
	}
	return &FreeBuffer[T]{data: make([]T, n)}, nil
}

func (b *FreeBuffer[T]) Size() int { return len(b.data) }

func (b *FreeBuffer[T]) Get(i int) T { return b.data[i] }

func (b *FreeBuffer[T]) Set(i int, v T) error {
	if b.Frozen() {
		return util.StateError("buffer: write to frozen buffer")
	}
	b.data[i] = v
	return nil
}

// ToColumn seals the buffer and returns an immutable free column of typ.
func (b *FreeBuffer[T]) ToColumn(typ column.Type) (*column.FreeColumn, error) {
	if typ.Category() != column.Free {
		return nil, util.ArgumentError("buffer: column type %s is not free", typ)
	}
	b.Freeze()
	boxed := make([]interface{}, len(b.data))
	for i, v := range b.data {
		boxed[i] = v
	}
	return column.NewFreeColumn(typ, boxed), nil
}
