package buffer

import (
	"sync"

	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/util"
)

// indexStore is the mutable counterpart of column's indexStore: one packing
// strategy per util.Format, dispatched once at construction so doPart-style
// hot loops never branch on format per element.
type indexStore interface {
	size() int
	get(i int) int
	set(i, v int)
}

// packedIndexStore guards every access with mu: U2 and U4 pack several
// indices into one byte, so writes to distinct indices can touch the same byte.
type packedIndexStore struct {
	mu sync.Mutex
	p  *util.PackedIntegers
}

func (s *packedIndexStore) size() int { return s.p.Size() }
func (s *packedIndexStore) get(i int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Get(i)
}
func (s *packedIndexStore) set(i, v int) {
	s.mu.Lock()
	s.p.Set(i, v)
	s.mu.Unlock()
}

type uint16IndexStore struct{ data []uint16 }

func (s *uint16IndexStore) size() int     { return len(s.data) }
func (s *uint16IndexStore) get(i int) int { return int(s.data[i]) }
func (s *uint16IndexStore) set(i, v int)  { s.data[i] = uint16(v) }

type int32IndexStore struct{ data []int32 }

func (s *int32IndexStore) size() int     { return len(s.data) }
func (s *int32IndexStore) get(i int) int { return int(s.data[i]) }
func (s *int32IndexStore) set(i, v int)  { s.data[i] = int32(v) }

// CategoricalBuffer is the mutable counterpart of column.CategoricalColumn:
// a packed index vector in one format plus a growing dictionary, parametrized
// by element type T (spec §4.2, design note §9: one generic type per width
// instead of five sibling classes, enum-dispatched at construction).
//
// Ground: UInt8CategoricalBuffer.java, generalized from its fixed U8 format
// to util.Format and from its fixed T=Object to a Go generic.
type CategoricalBuffer[T comparable] struct {
	frozenFlag
	store      indexStore
	format     util.Format
	dictMu     sync.Mutex // guards valueLookup append + reverseMap publish together
	valueLookup []interface{}
	reverseMap  *util.DictMap[T]
}

// NewCategoricalBuffer allocates a categorical buffer of length n in the
// given format, with an empty dictionary (index 0 reserved for missing).
func NewCategoricalBuffer[T comparable](n int, format util.Format) (*CategoricalBuffer[T], error) {
	if n < 0 {
		return nil, util.ArgumentError("buffer: negative length %d", n)
	}
	var store indexStore
	switch format {
	case util.U2, util.U4, util.U8:
		store = &packedIndexStore{p: util.NewPackedIntegers(format, n)}
	case util.U16:
		store = &uint16IndexStore{util.AllocUint16(n)}
	default: // I32
		store = &int32IndexStore{util.AllocInt32(n)}
	}
	return &CategoricalBuffer[T]{
		store:       store,
		format:      format,
		valueLookup: []interface{}{nil},
		reverseMap:  util.NewDictMap[T](),
	}, nil
}

func (b *CategoricalBuffer[T]) Size() int { return b.store.size() }

// Format returns the packed index format backing this buffer.
func (b *CategoricalBuffer[T]) Format() util.Format { return b.format }

// DifferentValues returns the number of distinct non-missing values
// currently in the dictionary.
func (b *CategoricalBuffer[T]) DifferentValues() int {
	b.dictMu.Lock()
	defer b.dictMu.Unlock()
	return len(b.valueLookup) - 1
}

// Get returns the dictionary value stored at row i, or the zero value of T
// if row i holds the missing sentinel (index 0).
func (b *CategoricalBuffer[T]) Get(i int) T {
	idx := b.store.get(i)
	b.dictMu.Lock()
	v := b.valueLookup[idx]
	b.dictMu.Unlock()
	if v == nil {
		var zero T
		return zero
	}
	return v.(T)
}

// Set writes value at index i, growing the dictionary if needed. It panics-
// free-returns an argument-error if the dictionary would overflow the
// buffer's format. Thread-safe: concurrent Set calls on distinct indices (and
// even the same new value) are safe (spec §4.2).
func (b *CategoricalBuffer[T]) Set(i int, value T, isMissing bool) error {
	if b.Frozen() {
		return util.StateError("buffer: write to frozen buffer")
	}
	ok, err := b.setSave(i, value, isMissing)
	if err != nil {
		return err
	}
	if !ok {
		return util.ArgumentError("buffer: more than %d different values", b.format.MaxValue())
	}
	return nil
}

// SetSave is the non-throwing variant of Set: it returns false instead of an
// error when the dictionary would overflow, leaving the dictionary and index
// untouched (spec §4.2, §8 scenario 5).
func (b *CategoricalBuffer[T]) SetSave(i int, value T, isMissing bool) (bool, error) {
	if b.Frozen() {
		return false, util.StateError("buffer: write to frozen buffer")
	}
	return b.setSave(i, value, isMissing)
}

func (b *CategoricalBuffer[T]) setSave(i int, value T, isMissing bool) (bool, error) {
	if isMissing {
		b.store.set(i, 0)
		return true, nil
	}
	if idx, ok := b.reverseMap.Get(value); ok {
		b.store.set(i, idx)
		return true, nil
	}
	// Slow path: the value hasn't been seen before (or a concurrent writer
	// is racing us to add it). Take the dictionary lock and double-check
	// before appending, mirroring UInt8CategoricalBuffer.java's
	// synchronized(valueLookup) { ... } block.
	b.dictMu.Lock()
	defer b.dictMu.Unlock()
	if idx, ok := b.reverseMap.Get(value); ok {
		b.store.set(i, idx)
		return true, nil
	}
	newIndex := len(b.valueLookup)
	if newIndex > b.format.MaxValue() {
		return false, nil
	}
	b.valueLookup = append(b.valueLookup, value)
	b.reverseMap.SetIfAbsent(value, newIndex)
	b.store.set(i, newIndex)
	return true, nil
}

// ToColumn seals the buffer and returns an immutable categorical column of
// typ. typ's category must be column.Categorical.
func (b *CategoricalBuffer[T]) ToColumn(typ column.Type) (*column.CategoricalColumn, error) {
	if typ.Category() != column.Categorical {
		return nil, util.ArgumentError("buffer: column type %s is not categorical", typ)
	}
	b.Freeze()
	switch s := b.store.(type) {
	case *packedIndexStore:
		return column.NewCategoricalColumn(typ, s.p, b.valueLookup), nil
	case *uint16IndexStore:
		return column.NewCategoricalColumnU16(typ, s.data, b.valueLookup), nil
	default:
		return column.NewCategoricalColumnI32(typ, b.store.(*int32IndexStore).data, b.valueLookup), nil
	}
}
