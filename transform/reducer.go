package transform

import (
	"reflect"

	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/reader"
	"github.com/vineetp6/belt/util"
)

// ScalarReducer folds a single numeric column down to a scalar via
// (identity, reducer, combiner) (spec §4.4 "Reducer (scalar)"). Ground:
// CategoricalColumnReducerTests.java / GeneralColumnReducerTests.java.
type ScalarReducer[V any] struct {
	source       column.Column
	identity     V
	reducerFn    func(V, float64) V
	combinerFn   func(V, V) V
	accumulators []V
	result       V
}

// NewScalarReducer constructs a scalar reducer over source. combiner may be
// nil only if the executor will use exactly one batch; with a nil combiner,
// Init panics for more than one batch, which Execute reports as an
// argument-error.
func NewScalarReducer[V any](source column.Column, identity V, reducerFn func(V, float64) V, combinerFn func(V, V) V) *ScalarReducer[V] {
	return &ScalarReducer[V]{source: source, identity: identity, reducerFn: reducerFn, combinerFn: combinerFn}
}

func (r *ScalarReducer[V]) Init(numberOfBatches int) {
	if numberOfBatches > 1 && r.combinerFn == nil {
		panic("transform: combiner required for more than one batch")
	}
	r.accumulators = make([]V, numberOfBatches)
	for i := range r.accumulators {
		r.accumulators[i] = r.identity
	}
	// A zero-length column runs zero batches, so Combine never fires and
	// Result() must already answer identity (spec §8: identity is the fold's
	// unit over an empty column).
	r.result = r.identity
}

func (r *ScalarReducer[V]) NumberOfOperations() int { return r.source.Size() }

func (r *ScalarReducer[V]) DoPart(from, to, batchIndex int) error {
	rd := reader.NewNumericReader(r.source)
	if err := rd.SetPosition(from - 1); err != nil {
		return err
	}
	acc := r.accumulators[batchIndex]
	for i := from; i < to; i++ {
		acc = r.reducerFn(acc, rd.Read())
	}
	r.accumulators[batchIndex] = acc
	return nil
}

func (r *ScalarReducer[V]) Combine(batchIndex int) error {
	if batchIndex == 0 {
		r.result = r.accumulators[0]
		return nil
	}
	r.result = r.combinerFn(r.result, r.accumulators[batchIndex])
	return nil
}

func (r *ScalarReducer[V]) Result() V { return r.result }

// MutableReducer folds a single numeric column into a mutable accumulator
// via (supplier, reducer, combiner) (spec §4.4 "Reducer (mutable
// accumulator)").
type MutableReducer[A any] struct {
	source       column.Column
	supplier     func() A
	reducerFn    func(A, float64)
	combinerFn   func(left, right A)
	accumulators []A
	result       A
}

// NewMutableReducer constructs a mutable-accumulator reducer over source.
func NewMutableReducer[A any](source column.Column, supplier func() A, reducerFn func(A, float64), combinerFn func(A, A)) *MutableReducer[A] {
	return &MutableReducer[A]{source: source, supplier: supplier, reducerFn: reducerFn, combinerFn: combinerFn}
}

func (r *MutableReducer[A]) Init(numberOfBatches int) {
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
		// accumulator so a zero-length column still returns identity.
		acc := r.supplier()
		if isNilValue(acc) {
			panic(util.NullError("transform: accumulator supplier returned a nil accumulator"))
		}
		r.result = acc
	}
}

func (r *MutableReducer[A]) NumberOfOperations() int { return r.source.Size() }

func (r *MutableReducer[A]) DoPart(from, to, batchIndex int) error {
	rd := reader.NewNumericReader(r.source)
	if err := rd.SetPosition(from - 1); err != nil {
		return err
	}
	acc := r.accumulators[batchIndex]
	for i := from; i < to; i++ {
		r.reducerFn(acc, rd.Read())
	}
	return nil
}

func (r *MutableReducer[A]) Combine(batchIndex int) error {
	if batchIndex == 0 {
		r.result = r.accumulators[0]
		return nil
	}
	r.combinerFn(r.result, r.accumulators[batchIndex])
	return nil
}

func (r *MutableReducer[A]) Result() A { return r.result }

// isNilValue reports whether v holds a nil pointer/interface/map/slice/chan/
// func, used to detect a supplier returning "null" (spec §4.4/§7).
func isNilValue(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
