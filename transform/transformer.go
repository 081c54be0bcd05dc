package transform

import (
	"time"

	"github.com/vineetp6/belt/buffer"
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/reader"
	"github.com/vineetp6/belt/util"
)

// Transformer is the single-column façade (spec §4.6, component C7): it
// exposes reduce/reduceCategorical/apply* without adding logic of its own,
// constructing the right calculator and handing it to Execute. Every
// exported operation validates its nullable functional arguments up front
// (null-error) and the source column's capabilities (unsupported-operation)
// before ever calling Execute.
type Transformer struct {
	source column.Column
}

// NewTransformer wraps source for single-column reduce/apply operations.
func NewTransformer(source column.Column) (*Transformer, error) {
	if source == nil {
		return nil, util.NullError("transform: source column must not be nil")
	}
	return &Transformer{source: source}, nil
}

// Reduce folds t's source column to a scalar of type V via
// (identity, reducerFn, combinerFn) (spec §4.4 "Reducer (scalar)"). combinerFn
// may be nil only if the resulting batch count is 1; Execute's Init rejects a
// nil combiner across more than one batch with an argument-error.
func Reduce[V any](t *Transformer, identity V, reducerFn func(V, float64) V, combinerFn func(V, V) V, workload Workload, ctx Context) (V, error) {
	var zero V
	if reducerFn == nil {
		return zero, util.NullError("transform: reducer function must not be nil")
	}
	if ctx == nil {
		return zero, util.NullError("transform: context must not be nil")
	}
	if !t.source.Capabilities().Has(column.NumericReadable) {
		return zero, util.UnsupportedError("transform: column of type %s is not numeric-readable", t.source.Type())
	}
	calc := NewScalarReducer(t.source, identity, reducerFn, combinerFn)
	return Execute[V](ctx, workload, calc)
}

// ReduceMutable folds t's source column into a mutable accumulator of type A
// via (supplier, reducerFn, combinerFn) (spec §4.4 "Reducer (mutable
// accumulator)").
func ReduceMutable[A any](t *Transformer, supplier func() A, reducerFn func(A, float64), combinerFn func(A, A), workload Workload, ctx Context) (A, error) {
	var zero A
	if supplier == nil {
		return zero, util.NullError("transform: accumulator supplier must not be nil")
	}
	if reducerFn == nil {
		return zero, util.NullError("transform: reducer function must not be nil")
	}
	if ctx == nil {
		return zero, util.NullError("transform: context must not be nil")
	}
	if !t.source.Capabilities().Has(column.NumericReadable) {
		return zero, util.UnsupportedError("transform: column of type %s is not numeric-readable", t.source.Type())
	}
	calc := NewMutableReducer(t.source, supplier, reducerFn, combinerFn)
	return Execute[A](ctx, workload, calc)
}

// ReduceCategorical folds t's source column's raw dictionary indices to an
// int via (identity, reducerFn, combinerFn) (spec §4.4 "Categorical-
// specialized int reducer"). Requires a categorical source. A nil
// combinerFn defaults to reducerFn itself, matching the original's
// reduceCategorical(identity, reducer, workload, ctx) call that reuses the
// reducer as its own combiner (CategoricalColumnReducerTests.java) — this
// keeps the literal scenario-1 call expressible across more than one batch
// without forcing every caller to repeat reducerFn as combinerFn.
func ReduceCategorical(t *Transformer, identity int, reducerFn func(int, int) int, combinerFn func(int, int) int, workload Workload, ctx Context) (int, error) {
	if reducerFn == nil {
		return 0, util.NullError("transform: reducer function must not be nil")
	}
	if ctx == nil {
		return 0, util.NullError("transform: context must not be nil")
	}
	if combinerFn == nil {
		combinerFn = reducerFn
	}
	calc, err := NewCategoricalIntReducer(t.source, identity, reducerFn, combinerFn)
	if err != nil {
		return 0, err
	}
	return Execute[int](ctx, workload, calc)
}

// ApplyNumericToCategorical maps t's numeric-readable source through
// operator into a categorical buffer of format (spec §4.6 apply*, the
// ApplyNumericToCategorical flavor).
func ApplyNumericToCategorical[T comparable](t *Transformer, operator func(float64) T, format util.Format, workload Workload, ctx Context) (*buffer.CategoricalBuffer[T], error) {
	if operator == nil {
		return nil, util.NullError("transform: operator must not be nil")
	}
	if ctx == nil {
		return nil, util.NullError("transform: context must not be nil")
	}
	calc, err := newApplyNumericToCategoricalCalculator(t.source, operator, format)
	if err != nil {
		return nil, err
	}
	return Execute[*buffer.CategoricalBuffer[T]](ctx, workload, calc)
}

// ApplyObjectToCategorical maps t's object-readable source (element type R)
// through operator into a categorical buffer of format.
func ApplyObjectToCategorical[R, T comparable](t *Transformer, operator func(R) T, format util.Format, workload Workload, ctx Context) (*buffer.CategoricalBuffer[T], error) {
	if operator == nil {
		return nil, util.NullError("transform: operator must not be nil")
	}
	if ctx == nil {
		return nil, util.NullError("transform: context must not be nil")
	}
	calc, err := newApplyObjectToCategoricalCalculator(t.source, operator, format)
	if err != nil {
		return nil, err
	}
	return Execute[*buffer.CategoricalBuffer[T]](ctx, workload, calc)
}

// ApplyNumericToFree maps t's numeric-readable source through operator into
// a free/object buffer (spec §8 scenario 4).
func ApplyNumericToFree[T any](t *Transformer, operator func(float64) T, workload Workload, ctx Context) (*buffer.FreeBuffer[T], error) {
	if operator == nil {
		return nil, util.NullError("transform: operator must not be nil")
	}
	if ctx == nil {
		return nil, util.NullError("transform: context must not be nil")
	}
	calc, err := newApplyNumericToFreeCalculator(t.source, operator)
	if err != nil {
		return nil, err
	}
	return Execute[*buffer.FreeBuffer[T]](ctx, workload, calc)
}

// ApplyCategoricalToFree maps t's categorical source's raw dictionary index
// through operator into a free/object buffer.
func ApplyCategoricalToFree[T any](t *Transformer, operator func(int) T, workload Workload, ctx Context) (*buffer.FreeBuffer[T], error) {
	if operator == nil {
		return nil, util.NullError("transform: operator must not be nil")
	}
	if ctx == nil {
		return nil, util.NullError("transform: context must not be nil")
	}
	calc, err := newApplyCategoricalToFreeCalculator(t.source, operator)
	if err != nil {
		return nil, err
	}
	return Execute[*buffer.FreeBuffer[T]](ctx, workload, calc)
}

// ApplyNumericToDateTime maps t's numeric-readable source through operator
// into a date-time buffer (spec §3.1 "date-time" buffer variant; ground:
// ApplierNumericToDateTime.java).
func ApplyNumericToDateTime(t *Transformer, operator func(float64) time.Time, workload Workload, ctx Context) (*buffer.DateTimeBuffer, error) {
	if operator == nil {
		return nil, util.NullError("transform: operator must not be nil")
	}
	if ctx == nil {
		return nil, util.NullError("transform: context must not be nil")
	}
	calc, err := newApplyNumericToDateTimeCalculator(t.source, operator)
	if err != nil {
		return nil, err
	}
	return Execute[*buffer.DateTimeBuffer](ctx, workload, calc)
}

// ApplyCategoricalToTime maps t's categorical source's raw dictionary index
// through operator into a time-of-day buffer (spec §3.1 "time" buffer
// variant; ground: ApplierCategoricalToTime.java).
func ApplyCategoricalToTime(t *Transformer, operator func(int) time.Duration, workload Workload, ctx Context) (*buffer.TimeBuffer, error) {
	if operator == nil {
		return nil, util.NullError("transform: operator must not be nil")
	}
	if ctx == nil {
		return nil, util.NullError("transform: context must not be nil")
	}
	calc, err := newApplyCategoricalToTimeCalculator(t.source, operator)
	if err != nil {
		return nil, err
	}
	return Execute[*buffer.TimeBuffer](ctx, workload, calc)
}

// MultiTransformer is the multi-column façade (spec §4.6): reduce/
// reduceCategorical/reduceGeneral/apply* over a fixed set of columns sharing
// one row height.
type MultiTransformer struct {
	columns []column.Column
}

// NewMultiTransformer wraps columns for multi-column operations. All columns
// must share the same row height; columns must be non-empty.
func NewMultiTransformer(columns []column.Column) (*MultiTransformer, error) {
	if columns == nil {
		return nil, util.NullError("transform: columns must not be nil")
	}
	if len(columns) == 0 {
		return nil, util.ArgumentError("transform: at least one column is required")
	}
	height := columns[0].Size()
	for _, c := range columns {
		if c == nil {
			return nil, util.NullError("transform: columns must not contain nil")
		}
		if c.Size() != height {
			return nil, util.ArgumentError("transform: all columns must share one height")
		}
	}
	return &MultiTransformer{columns: columns}, nil
}

// ReduceMulti is the default multi-column row reducer (spec §6:
// "Transformer<Multi>: reduce(supplier, rowReducer, combiner, ...)"),
// equivalent to ReduceGeneral — it makes no assumption about column
// category and so always uses the full heterogeneous Row view.
func ReduceMulti[A any](mt *MultiTransformer, supplier func() A, reducerFn func(A, reader.Row), combinerFn func(A, A), workload Workload, ctx Context) (A, error) {
	return reduceRows(mt, GeneralRowReaderFactory, supplier, reducerFn, combinerFn, workload, ctx)
}

// ReduceCategoricalRows folds mt's (categorical-only) columns into an
// accumulator of type A via a Row view restricted to getNumeric/getIndex
// (spec §4.4 "Row reducer (multi-column)", categorical specialization).
func ReduceCategoricalRows[A any](mt *MultiTransformer, supplier func() A, reducerFn func(A, reader.Row), combinerFn func(A, A), workload Workload, ctx Context) (A, error) {
	return reduceRows(mt, CategoricalRowReader, supplier, reducerFn, combinerFn, workload, ctx)
}

// ReduceGeneral folds mt's (possibly heterogeneous) columns into an
// accumulator of type A via a full Row view exposing getNumeric/getIndex/
// getObject (spec §4.4 "Row reducer (multi-column)").
func ReduceGeneral[A any](mt *MultiTransformer, supplier func() A, reducerFn func(A, reader.Row), combinerFn func(A, A), workload Workload, ctx Context) (A, error) {
	return reduceRows(mt, GeneralRowReaderFactory, supplier, reducerFn, combinerFn, workload, ctx)
}

func reduceRows[A any](mt *MultiTransformer, newReader rowReaderFactory, supplier func() A, reducerFn func(A, reader.Row), combinerFn func(A, A), workload Workload, ctx Context) (A, error) {
	var zero A
	if supplier == nil {
		return zero, util.NullError("transform: accumulator supplier must not be nil")
	}
	if reducerFn == nil {
		return zero, util.NullError("transform: reducer function must not be nil")
	}
	if ctx == nil {
		return zero, util.NullError("transform: context must not be nil")
	}
	// Validate capability/category requirements up front rather than
	// surfacing them only from the first DoPart (spec §4.6).
	if _, err := newReader(mt.columns); err != nil {
		return zero, err
	}
	calc, err := NewMultiRowReducer(mt.columns, newReader, supplier, reducerFn, combinerFn)
	if err != nil {
		return zero, err
	}
	return Execute[A](ctx, workload, calc)
}

// ApplyGeneralToFreeMulti maps mt's columns through a Row operator into a
// free/object buffer (spec supplement, ApplyGeneralToFreeMulti flavor).
func ApplyGeneralToFreeMulti[T any](mt *MultiTransformer, operator func(reader.Row) T, workload Workload, ctx Context) (*buffer.FreeBuffer[T], error) {
	if operator == nil {
		return nil, util.NullError("transform: operator must not be nil")
	}
	if ctx == nil {
		return nil, util.NullError("transform: context must not be nil")
	}
	calc, err := newApplyGeneralToFreeMultiCalculator(mt.columns, operator)
	if err != nil {
		return nil, err
	}
	return Execute[*buffer.FreeBuffer[T]](ctx, workload, calc)
}
