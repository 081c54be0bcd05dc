// Package table implements Table and Builder (spec §6, the out-of-scope
// "table-builder DSL and column-name resolution" collaborator): the
// immutable container of named, equal-height columns that transform.
// Transformer/MultiTransformer operate over.
package table

import (
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/transform"
	"github.com/vineetp6/belt/util"
)

// Table is an immutable, ordered collection of equal-height named columns.
type Table struct {
	height  int
	labels  []string
	columns []column.Column
	index   map[string]int
	ctx     transform.Context
}

// Height returns the shared row count of every column in t.
func (t *Table) Height() int { return t.height }

// Width returns the number of columns in t.
func (t *Table) Width() int { return len(t.columns) }

// Labels returns t's column labels in declaration order. The returned slice
// is a copy; mutating it does not affect t.
func (t *Table) Labels() []string {
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}

// Column returns the column named label.
func (t *Table) Column(label string) (column.Column, error) {
	i, ok := t.index[label]
	if !ok {
		return nil, util.ArgumentError("table: no column named %q", label)
	}
	return t.columns[i], nil
}

// ColumnAt returns the column at the given 0-based index.
func (t *Table) ColumnAt(i int) (column.Column, error) {
	if i < 0 || i >= len(t.columns) {
		return nil, util.IndexError("table: column index %d out of range [0,%d)", i, len(t.columns))
	}
	return t.columns[i], nil
}

// Context returns the transform.Context supplied to Builder.Build, handy as
// the default context argument to transform.Reduce/Apply* calls made over
// this table's columns.
func (t *Table) Context() transform.Context { return t.ctx }

// Transform resolves label to a single-column transform.Transformer (spec
// §6: "transform(labels…) -> single- or multi-column Transformer").
func (t *Table) Transform(label string) (*transform.Transformer, error) {
	col, err := t.Column(label)
	if err != nil {
		return nil, err
	}
	return transform.NewTransformer(col)
}

// TransformAt resolves the column at index to a single-column Transformer.
func (t *Table) TransformAt(index int) (*transform.Transformer, error) {
	col, err := t.ColumnAt(index)
	if err != nil {
		return nil, err
	}
	return transform.NewTransformer(col)
}

// TransformColumns resolves labels to a multi-column transform.MultiTransformer.
func (t *Table) TransformColumns(labels ...string) (*transform.MultiTransformer, error) {
	cols := make([]column.Column, len(labels))
	for i, label := range labels {
		col, err := t.Column(label)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return transform.NewMultiTransformer(cols)
}

// TransformIndices resolves indices to a multi-column MultiTransformer.
func (t *Table) TransformIndices(indices ...int) (*transform.MultiTransformer, error) {
	cols := make([]column.Column, len(indices))
	for i, idx := range indices {
		col, err := t.ColumnAt(idx)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return transform.NewMultiTransformer(cols)
}
