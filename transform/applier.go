package transform

import (
	"math"
	"time"

	"github.com/vineetp6/belt/buffer"
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/reader"
	"github.com/vineetp6/belt/util"
)

// The applier*Calculator types are the per-row mapping calculator flavor
// (spec §4.4): init allocates a length-N target buffer, doPart writes into
// disjoint row ranges, and no Combine step is needed since the ranges never
// overlap. Each is grounded on one retrieved Applier*.java file; the
// exported Apply* façade functions in transformer.go wrap them.

// applyNumericToCategoricalCalculator maps a NUMERIC_READABLE column through
// operator into a categorical buffer of the given format. Ground:
// ApplierNumericToCategorical.java.
type applyNumericToCategoricalCalculator[T comparable] struct {
	source   column.Column
	operator func(float64) T
	format   util.Format
	target   *buffer.CategoricalBuffer[T]
}

func newApplyNumericToCategoricalCalculator[T comparable](source column.Column, operator func(float64) T, format util.Format) (*applyNumericToCategoricalCalculator[T], error) {
	if !source.Capabilities().Has(column.NumericReadable) {
		return nil, util.UnsupportedError("transform: column of type %s is not numeric-readable", source.Type())
	}
	return &applyNumericToCategoricalCalculator[T]{source: source, operator: operator, format: format}, nil
}

func (a *applyNumericToCategoricalCalculator[T]) Init(numberOfBatches int) {
	target, err := buffer.NewCategoricalBuffer[T](a.source.Size(), a.format)
	if err != nil {
		panic(err)
	}
	a.target = target
}

func (a *applyNumericToCategoricalCalculator[T]) NumberOfOperations() int { return a.source.Size() }

func (a *applyNumericToCategoricalCalculator[T]) DoPart(from, to, batchIndex int) error {
	rd := reader.NewNumericReaderSized(a.source, to-from)
	if err := rd.SetPosition(from - 1); err != nil {
		return err
	}
	for i := from; i < to; i++ {
		if err := a.target.Set(i, a.operator(rd.Read()), false); err != nil {
			return err
		}
	}
	return nil
}

func (a *applyNumericToCategoricalCalculator[T]) Result() *buffer.CategoricalBuffer[T] { return a.target }

// applyObjectToCategoricalCalculator maps an OBJECT_READABLE column of
// element type R through operator into a categorical buffer. Ground:
// ApplierObjectToCategorical.java.
type applyObjectToCategoricalCalculator[R, T comparable] struct {
	source   column.Column
	operator func(R) T
	format   util.Format
	target   *buffer.CategoricalBuffer[T]
}

func newApplyObjectToCategoricalCalculator[R, T comparable](source column.Column, operator func(R) T, format util.Format) (*applyObjectToCategoricalCalculator[R, T], error) {
	if !source.Capabilities().Has(column.ObjectReadable) {
		return nil, util.UnsupportedError("transform: column of type %s is not object-readable", source.Type())
	}
	return &applyObjectToCategoricalCalculator[R, T]{source: source, operator: operator, format: format}, nil
}

func (a *applyObjectToCategoricalCalculator[R, T]) Init(numberOfBatches int) {
	target, err := buffer.NewCategoricalBuffer[T](a.source.Size(), a.format)
	if err != nil {
		panic(err)
	}
	a.target = target
}

func (a *applyObjectToCategoricalCalculator[R, T]) NumberOfOperations() int { return a.source.Size() }

func (a *applyObjectToCategoricalCalculator[R, T]) DoPart(from, to, batchIndex int) error {
	rd := reader.NewObjectReaderSized[R](a.source, to-from)
	if err := rd.SetPosition(from - 1); err != nil {
		return err
	}
	for i := from; i < to; i++ {
		if err := a.target.Set(i, a.operator(rd.Read()), false); err != nil {
			return err
		}
	}
	return nil
}

func (a *applyObjectToCategoricalCalculator[R, T]) Result() *buffer.CategoricalBuffer[T] {
	return a.target
}

// applyNumericToFreeCalculator maps a NUMERIC_READABLE column through
// operator into a free/object buffer (spec §8 scenario 4). Ground: the same
// ApplierCategoricalToFree.java shape with the raw-index reader swapped for
// the chunked numeric reader, since the original source has no
// numeric-to-free flavor and the spec calls for one directly.
type applyNumericToFreeCalculator[T any] struct {
	source   column.Column
	operator func(float64) T
	target   *buffer.FreeBuffer[T]
}

func newApplyNumericToFreeCalculator[T any](source column.Column, operator func(float64) T) (*applyNumericToFreeCalculator[T], error) {
	if !source.Capabilities().Has(column.NumericReadable) {
		return nil, util.UnsupportedError("transform: column of type %s is not numeric-readable", source.Type())
	}
	return &applyNumericToFreeCalculator[T]{source: source, operator: operator}, nil
}

func (a *applyNumericToFreeCalculator[T]) Init(numberOfBatches int) {
	target, err := buffer.NewFreeBuffer[T](a.source.Size())
	if err != nil {
		panic(err)
	}
	a.target = target
}

func (a *applyNumericToFreeCalculator[T]) NumberOfOperations() int { return a.source.Size() }

func (a *applyNumericToFreeCalculator[T]) DoPart(from, to, batchIndex int) error {
	rd := reader.NewNumericReaderSized(a.source, to-from)
	if err := rd.SetPosition(from - 1); err != nil {
		return err
	}
	for i := from; i < to; i++ {
		if err := a.target.Set(i, a.operator(rd.Read())); err != nil {
			return err
		}
	}
	return nil
}

func (a *applyNumericToFreeCalculator[T]) Result() *buffer.FreeBuffer[T] { return a.target }

// applyCategoricalToFreeCalculator maps a categorical column's raw
// dictionary index through operator into a free/object buffer. Ground:
// ApplierCategoricalToFree.java ("CategoricalColumnReader reads the raw int
// index, not the dictionary object").
type applyCategoricalToFreeCalculator[T any] struct {
	source   column.Column
	indices  []int32
	operator func(int) T
	target   *buffer.FreeBuffer[T]
}

func newApplyCategoricalToFreeCalculator[T any](source column.Column, operator func(int) T) (*applyCategoricalToFreeCalculator[T], error) {
	dict, ok := source.(column.Dictionary)
	if !ok {
		return nil, util.UnsupportedError("transform: column of type %s has no raw index stream", source.Type())
	}
	return &applyCategoricalToFreeCalculator[T]{source: source, indices: dict.IntData(), operator: operator}, nil
}

func (a *applyCategoricalToFreeCalculator[T]) Init(numberOfBatches int) {
	target, err := buffer.NewFreeBuffer[T](a.source.Size())
	if err != nil {
		panic(err)
	}
	a.target = target
}

func (a *applyCategoricalToFreeCalculator[T]) NumberOfOperations() int { return a.source.Size() }

func (a *applyCategoricalToFreeCalculator[T]) DoPart(from, to, batchIndex int) error {
	indices := a.indices
	for i := from; i < to; i++ {
		if err := a.target.Set(i, a.operator(int(indices[i]))); err != nil {
			return err
		}
	}
	return nil
}

func (a *applyCategoricalToFreeCalculator[T]) Result() *buffer.FreeBuffer[T] { return a.target }

// applyNumericToDateTimeCalculator maps a NUMERIC_READABLE column through
// operator into a date-time buffer. Ground: ApplierNumericToDateTime.java.
type applyNumericToDateTimeCalculator struct {
	source   column.Column
	operator func(float64) time.Time
	target   *buffer.DateTimeBuffer
}

func newApplyNumericToDateTimeCalculator(source column.Column, operator func(float64) time.Time) (*applyNumericToDateTimeCalculator, error) {
	if !source.Capabilities().Has(column.NumericReadable) {
		return nil, util.UnsupportedError("transform: column of type %s is not numeric-readable", source.Type())
	}
	return &applyNumericToDateTimeCalculator{source: source, operator: operator}, nil
}

func (a *applyNumericToDateTimeCalculator) Init(numberOfBatches int) {
	target, err := buffer.NewDateTimeBuffer(a.source.Size())
	if err != nil {
		panic(err)
	}
	a.target = target
}

func (a *applyNumericToDateTimeCalculator) NumberOfOperations() int { return a.source.Size() }

func (a *applyNumericToDateTimeCalculator) DoPart(from, to, batchIndex int) error {
	rd := reader.NewNumericReaderSized(a.source, to-from)
	if err := rd.SetPosition(from - 1); err != nil {
		return err
	}
	for i := from; i < to; i++ {
		v := rd.Read()
		if err := a.target.Set(i, a.operator(v), math.IsNaN(v)); err != nil {
			return err
		}
	}
	return nil
}

func (a *applyNumericToDateTimeCalculator) Result() *buffer.DateTimeBuffer { return a.target }

// applyCategoricalToTimeCalculator maps a categorical column's raw
// dictionary index through operator into a time-of-day buffer. Ground:
// ApplierCategoricalToTime.java.
type applyCategoricalToTimeCalculator struct {
	source   column.Column
	indices  []int32
	operator func(int) time.Duration
	target   *buffer.TimeBuffer
}

func newApplyCategoricalToTimeCalculator(source column.Column, operator func(int) time.Duration) (*applyCategoricalToTimeCalculator, error) {
	dict, ok := source.(column.Dictionary)
	if !ok {
		return nil, util.UnsupportedError("transform: column of type %s has no raw index stream", source.Type())
	}
	return &applyCategoricalToTimeCalculator{source: source, indices: dict.IntData(), operator: operator}, nil
}

func (a *applyCategoricalToTimeCalculator) Init(numberOfBatches int) {
	target, err := buffer.NewTimeBuffer(a.source.Size())
	if err != nil {
		panic(err)
	}
	a.target = target
}

func (a *applyCategoricalToTimeCalculator) NumberOfOperations() int { return a.source.Size() }

func (a *applyCategoricalToTimeCalculator) DoPart(from, to, batchIndex int) error {
	indices := a.indices
	for i := from; i < to; i++ {
		idx := int(indices[i])
		if err := a.target.Set(i, a.operator(idx), idx == 0); err != nil {
			return err
		}
	}
	return nil
}

func (a *applyCategoricalToTimeCalculator) Result() *buffer.TimeBuffer { return a.target }

// applyGeneralToFreeMultiCalculator is the multi-column row applier
// producing a free/object buffer (spec supplement). Ground:
// ApplierGeneralToFreeMulti.java.
type applyGeneralToFreeMultiCalculator[T any] struct {
	columns  []column.Column
	operator func(reader.Row) T
	target   *buffer.FreeBuffer[T]
}

func newApplyGeneralToFreeMultiCalculator[T any](columns []column.Column, operator func(reader.Row) T) (*applyGeneralToFreeMultiCalculator[T], error) {
	if len(columns) == 0 {
		return nil, util.ArgumentError("transform: at least one column is required")
	}
	return &applyGeneralToFreeMultiCalculator[T]{columns: columns, operator: operator}, nil
}

func (a *applyGeneralToFreeMultiCalculator[T]) Init(numberOfBatches int) {
	target, err := buffer.NewFreeBuffer[T](a.columns[0].Size())
	if err != nil {
		panic(err)
	}
	a.target = target
}

func (a *applyGeneralToFreeMultiCalculator[T]) NumberOfOperations() int { return a.columns[0].Size() }

func (a *applyGeneralToFreeMultiCalculator[T]) DoPart(from, to, batchIndex int) error {
	rowReader, err := reader.NewGeneralRowReaderSized(a.columns, to-from)
	if err != nil {
		return err
	}
	if err := rowReader.SetPosition(from - 1); err != nil {
		return err
	}
	for i := from; i < to; i++ {
		rowReader.Move()
		if err := a.target.Set(i, a.operator(rowReader)); err != nil {
			return err
		}
	}
	return nil
}

func (a *applyGeneralToFreeMultiCalculator[T]) Result() *buffer.FreeBuffer[T] { return a.target }
