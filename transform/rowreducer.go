package transform

import (
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/reader"
	"github.com/vineetp6/belt/util"
)

// rowReaderFactory builds a positioned multi-column reader over cols, used
// so MultiRowReducer works for both the categorical-only RowReader and the
// heterogeneous GeneralRowReader (spec §4.3-§4.4).
type rowReaderFactory func(cols []column.Column) (reader.Row, error)

// CategoricalRowReader builds a RowReader (categorical-only columns).
func CategoricalRowReader(cols []column.Column) (reader.Row, error) { return reader.NewRowReader(cols) }

// GeneralRowReaderFactory builds a GeneralRowReader (heterogeneous columns).
func GeneralRowReaderFactory(cols []column.Column) (reader.Row, error) {
	return reader.NewGeneralRowReader(cols)
}

// positioner is implemented by both reader.RowReader and
// reader.GeneralRowReader; MultiRowReducer needs it to seek each batch's
// reader to its starting row before the first Move().
type positioner interface {
	SetPosition(p int) error
	Move()
}

// MultiRowReducer folds a multi-column row view into a mutable accumulator
// via (supplier, rowReducer, combiner) (spec §4.4 "Row reducer
// (multi-column)"). Ground: CategoricalColumnReducerTests.java /
// GeneralColumnReducerTests.java, generalized over which row reader flavor
// backs the Row view.
type MultiRowReducer[A any] struct {
	columns      []column.Column
	height       int
	newReader    rowReaderFactory
	supplier     func() A
	reducerFn    func(A, reader.Row)
	combinerFn   func(left, right A)
	accumulators []A
	result       A
}

// NewMultiRowReducer constructs a row reducer over columns, backed by the
// row reader newReader constructs (CategoricalRowReader or
// GeneralRowReaderFactory).
func NewMultiRowReducer[A any](columns []column.Column, newReader rowReaderFactory, supplier func() A, reducerFn func(A, reader.Row), combinerFn func(A, A)) (*MultiRowReducer[A], error) {
	if len(columns) == 0 {
		return nil, util.ArgumentError("transform: at least one column is required")
	}
	return &MultiRowReducer[A]{columns: columns, height: columns[0].Size(), newReader: newReader, supplier: supplier, reducerFn: reducerFn, combinerFn: combinerFn}, nil
}

func (r *MultiRowReducer[A]) Init(numberOfBatches int) {
	if numberOfBatches > 1 && r.combinerFn == nil {
		panic("transform: combiner required for more than one batch")
	}
	r.accumulators = make([]A, numberOfBatches)
	for i := 0; i < numberOfBatches; i++ {
		acc := r.supplier()
		if isNilValue(acc) {
			panic(util.NullError("transform: accumulator supplier returned a nil accumulator"))
		}
		r.accumulators[i] = acc
	}
	if numberOfBatches == 0 {
		// No batches run, so Combine never fires; seed result with a fresh
		// accumulator so a zero-height table still returns identity.
		acc := r.supplier()
		if isNilValue(acc) {
			panic(util.NullError("transform: accumulator supplier returned a nil accumulator"))
		}
		r.result = acc
	}
}

func (r *MultiRowReducer[A]) NumberOfOperations() int { return r.height }

func (r *MultiRowReducer[A]) DoPart(from, to, batchIndex int) error {
	rowReader, err := r.newReader(r.columns)
	if err != nil {
		return err
	}
	p := rowReader.(positioner)
	if err := p.SetPosition(from - 1); err != nil {
		return err
	}
	acc := r.accumulators[batchIndex]
	for i := from; i < to; i++ {
		p.Move()
		r.reducerFn(acc, rowReader)
	}
	return nil
}

func (r *MultiRowReducer[A]) Combine(batchIndex int) error {
	if batchIndex == 0 {
		r.result = r.accumulators[0]
		return nil
	}
	r.combinerFn(r.result, r.accumulators[batchIndex])
	return nil
}

func (r *MultiRowReducer[A]) Result() A { return r.result }
