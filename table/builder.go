package table

import (
	"github.com/vineetp6/belt/buffer"
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/transform"
	"github.com/vineetp6/belt/util"
)

// Builder accumulates named columns for a single Table (spec §6:
// "newTable(height).add(label, column|buffer)…build(context) -> Table").
// Go has no union of "column or buffer" argument types, so Builder exposes
// Add for already-frozen columns plus one AddXxx convenience per buffer
// flavor that freezes the buffer and adds the resulting column in one step.
type Builder struct {
	height  int
	labels  []string
	columns []column.Column
	seen    map[string]bool
}

// NewBuilder starts a Builder for a table of the given row height.
func NewBuilder(height int) (*Builder, error) {
	if height < 0 {
		return nil, util.ArgumentError("table: negative height %d", height)
	}
	return &Builder{height: height, seen: make(map[string]bool)}, nil
}

func (b *Builder) addColumn(label string, col column.Column) error {
	if label == "" {
		return util.ArgumentError("table: column label must not be empty")
	}
	if b.seen[label] {
		return util.ArgumentError("table: duplicate column label %q", label)
	}
	if col.Size() != b.height {
		return util.ArgumentError("table: column %q has height %d, table height is %d", label, col.Size(), b.height)
	}
	b.seen[label] = true
	b.labels = append(b.labels, label)
	b.columns = append(b.columns, col)
	return nil
}

// Add adds an already-frozen column under label.
func (b *Builder) Add(label string, col column.Column) (*Builder, error) {
	if col == nil {
		return nil, util.NullError("table: column must not be nil")
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// AddReal freezes buf as typ and adds the resulting numeric column.
func (b *Builder) AddReal(label string, buf *buffer.RealBuffer, typ column.Type) (*Builder, error) {
	col, err := buf.ToColumn(typ)
	if err != nil {
		return nil, err
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// AddIntegerColumn freezes buf as typ and adds the resulting numeric column.
func (b *Builder) AddIntegerColumn(label string, buf *buffer.IntegerBuffer, typ column.Type) (*Builder, error) {
	col, err := buf.ToColumn(typ)
	if err != nil {
		return nil, err
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// AddGrowingReal freezes buf as typ and adds the resulting numeric column.
func (b *Builder) AddGrowingReal(label string, buf *buffer.GrowingRealBuffer, typ column.Type) (*Builder, error) {
	col, err := buf.ToColumn(typ)
	if err != nil {
		return nil, err
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// AddGrowingInteger freezes buf as typ and adds the resulting numeric column.
func (b *Builder) AddGrowingInteger(label string, buf *buffer.GrowingIntegerBuffer, typ column.Type) (*Builder, error) {
	col, err := buf.ToColumn(typ)
	if err != nil {
		return nil, err
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// AddTime freezes buf as typ and adds the resulting time-of-day column.
func (b *Builder) AddTime(label string, buf *buffer.TimeBuffer, typ column.Type) (*Builder, error) {
	col, err := buf.ToColumn(typ)
	if err != nil {
		return nil, err
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// AddDateTime freezes buf as typ and adds the resulting date-time column.
func (b *Builder) AddDateTime(label string, buf *buffer.DateTimeBuffer, typ column.Type) (*Builder, error) {
	col, err := buf.ToColumn(typ)
	if err != nil {
		return nil, err
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// AddCategorical freezes buf as typ and adds the resulting categorical column.
func AddCategorical[T comparable](b *Builder, label string, buf *buffer.CategoricalBuffer[T], typ column.Type) (*Builder, error) {
	col, err := buf.ToColumn(typ)
	if err != nil {
		return nil, err
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// AddFree freezes buf as typ and adds the resulting free/object column.
func AddFree[T any](b *Builder, label string, buf *buffer.FreeBuffer[T], typ column.Type) (*Builder, error) {
	col, err := buf.ToColumn(typ)
	if err != nil {
		return nil, err
	}
	if err := b.addColumn(label, col); err != nil {
		return nil, err
	}
	return b, nil
}

// Build finalizes the Table, binding ctx as its default transform.Context.
func (b *Builder) Build(ctx transform.Context) (*Table, error) {
	if ctx == nil {
		return nil, util.NullError("table: context must not be nil")
	}
	index := make(map[string]int, len(b.labels))
	for i, label := range b.labels {
		index[label] = i
	}
	return &Table{height: b.height, labels: b.labels, columns: b.columns, index: index, ctx: ctx}, nil
}
