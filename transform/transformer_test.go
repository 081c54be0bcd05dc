package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vineetp6/belt/column"
	"github.com/vineetp6/belt/reader"
	"github.com/vineetp6/belt/util"
)

func TestNewTransformerRejectsNilSource(t *testing.T) {
	_, err := NewTransformer(nil)
	require.True(t, util.IsNull(err))
}

func TestTransformerReduceSumsNumericColumn(t *testing.T) {
	col := realColumnOfLength(100, func(i int) float64 { return 1 })
	tr, err := NewTransformer(col)
	require.NoError(t, err)
	sum := func(a, b float64) float64 { return a + b }
	result, err := Reduce[float64](tr, 0, sum, sum, Default, newTestContext(4))
	require.NoError(t, err)
	require.Equal(t, 100.0, result)
}

func TestTransformerReduceRejectsNilArgs(t *testing.T) {
	col := realColumnOfLength(10, func(i int) float64 { return 0 })
	tr, err := NewTransformer(col)
	require.NoError(t, err)

	_, err = Reduce[float64](tr, 0, nil, nil, Default, newTestContext(1))
	require.True(t, util.IsNull(err))

	_, err = Reduce[float64](tr, 0, func(a, b float64) float64 { return a }, nil, Default, nil)
	require.True(t, util.IsNull(err))
}

func TestTransformerReduceUnsupportedOnNonNumericColumn(t *testing.T) {
	free := column.NewFreeColumn(column.FreeType("label", ""), []interface{}{"a"})
	tr, err := NewTransformer(free)
	require.NoError(t, err)
	_, err = Reduce[float64](tr, 0, func(a, b float64) float64 { return a + b }, nil, Small, newTestContext(1))
	require.True(t, util.IsUnsupported(err))
}

func TestTransformerReduceMutableCountsRows(t *testing.T) {
	col := realColumnOfLength(250, func(i int) float64 { return float64(i) })
	tr, err := NewTransformer(col)
	require.NoError(t, err)

	type counter struct{ n int }
	result, err := ReduceMutable[*counter](
		tr,
		func() *counter { return &counter{} },
		func(acc *counter, v float64) { acc.n++ },
		func(left, right *counter) { left.n += right.n },
		Default, newTestContext(4),
	)
	require.NoError(t, err)
	require.Equal(t, 250, result.n)
}

func TestTransformerReduceCategoricalMatchesDirectCalculator(t *testing.T) {
	col := cyclicCategoricalColumn(t)
	tr, err := NewTransformer(col)
	require.NoError(t, err)
	sum := func(a, b int) int { return a + b }
	result, err := ReduceCategorical(tr, 0, sum, sum, Large, newTestContext(4))
	require.NoError(t, err)
	require.Equal(t, 400, result)
}

func TestTransformerReduceCategoricalDefaultsNilCombinerToReducer(t *testing.T) {
	// spec §8 scenario 1's literal reduceCategorical(0, (x,y)->x+y, LARGE, CTX)
	// call, with no explicit combiner, still runs under Large (2 batches over
	// 75 rows) by reusing the reducer as its own combiner.
	col := cyclicCategoricalColumn(t)
	tr, err := NewTransformer(col)
	require.NoError(t, err)
	sum := func(a, b int) int { return a + b }
	result, err := ReduceCategorical(tr, 0, sum, nil, Large, newTestContext(4))
	require.NoError(t, err)
	require.Equal(t, 400, result)
}

func TestTransformerReduceCategoricalRejectsNilReducer(t *testing.T) {
	col := cyclicCategoricalColumn(t)
	tr, err := NewTransformer(col)
	require.NoError(t, err)
	_, err = ReduceCategorical(tr, 0, nil, nil, Small, newTestContext(1))
	require.True(t, util.IsNull(err))
}

func TestTransformerApplyNumericToCategoricalRoundtrip(t *testing.T) {
	col := column.NewNumericColumn(column.Real, []float64{1, 2, 3})
	tr, err := NewTransformer(col)
	require.NoError(t, err)
	target, err := ApplyNumericToCategorical[int](tr, func(v float64) int { return int(v) * 10 }, util.U8, Default, newTestContext(2))
	require.NoError(t, err)
	require.Equal(t, 10, target.Get(0))
	require.Equal(t, 20, target.Get(1))
	require.Equal(t, 30, target.Get(2))
}

func TestTransformerApplyNumericToFreeScenario(t *testing.T) {
	col := column.NewNumericColumn(column.Real, []float64{0.0, 0.5, 1.0})
	tr, err := NewTransformer(col)
	require.NoError(t, err)
	target, err := ApplyNumericToFree[string](tr, func(v float64) string {
		if v == 0.0 {
			return "x0.0"
		} else if v == 0.5 {
			return "x0.5"
		}
		return "x1.0"
	}, Default, newTestContext(2))
	require.NoError(t, err)
	require.Equal(t, "x0.0", target.Get(0))
	require.Equal(t, "x0.5", target.Get(1))
	require.Equal(t, "x1.0", target.Get(2))
}

func TestTransformerApplyCategoricalToFreeRejectsNilOperator(t *testing.T) {
	col := cyclicCategoricalColumn(t)
	tr, err := NewTransformer(col)
	require.NoError(t, err)
	_, err = ApplyCategoricalToFree[string](tr, nil, Small, newTestContext(1))
	require.True(t, util.IsNull(err))
}

func TestNewMultiTransformerValidatesColumns(t *testing.T) {
	_, err := NewMultiTransformer(nil)
	require.True(t, util.IsNull(err))

	_, err = NewMultiTransformer([]column.Column{})
	require.True(t, util.IsArgument(err))

	a := realColumnOfLength(5, func(i int) float64 { return 0 })
	b := realColumnOfLength(6, func(i int) float64 { return 0 })
	_, err = NewMultiTransformer([]column.Column{a, b})
	require.True(t, util.IsArgument(err))
}

func TestMultiTransformerReduceGeneralOverHeterogeneousColumns(t *testing.T) {
	numeric := realColumnOfLength(50, func(i int) float64 { return float64(i) })
	categorical := cyclicCategoricalColumnOfSize(t, 50)
	mt, err := NewMultiTransformer([]column.Column{numeric, categorical})
	require.NoError(t, err)

	type acc struct{ sum float64 }
	result, err := ReduceGeneral[*acc](
		mt,
		func() *acc { return &acc{} },
		func(a *acc, row reader.Row) { a.sum += row.GetNumeric(0) + float64(row.GetIndex(1)) },
		func(a, b *acc) { a.sum += b.sum },
		Default, newTestContext(4),
	)
	require.NoError(t, err)

	var want float64
	for i := 0; i < 50; i++ {
		want += float64(i) + float64((i%10)+1)
	}
	require.Equal(t, want, result.sum)
}

func TestMultiTransformerReduceCategoricalRowsRejectsNonCategoricalColumn(t *testing.T) {
	numeric := realColumnOfLength(10, func(i int) float64 { return 0 })
	categorical := cyclicCategoricalColumnOfSize(t, 10)
	mt, err := NewMultiTransformer([]column.Column{numeric, categorical})
	require.NoError(t, err)

	_, err = ReduceCategoricalRows[int](
		mt,
		func() int { return 0 },
		func(a int, row reader.Row) {},
		func(a, b int) {},
		Small, newTestContext(1),
	)
	require.Error(t, err)
}

func TestMultiTransformerApplyGeneralToFreeMultiRoundtrip(t *testing.T) {
	numeric := realColumnOfLength(4, func(i int) float64 { return float64(i) })
	categorical := cyclicCategoricalColumnOfSize(t, 4)
	mt, err := NewMultiTransformer([]column.Column{numeric, categorical})
	require.NoError(t, err)

	target, err := ApplyGeneralToFreeMulti[int](mt, func(row reader.Row) int {
		return int(row.GetNumeric(0)) + row.GetIndex(1)
	}, Default, newTestContext(2))
	require.NoError(t, err)
	require.Equal(t, 1, target.Get(0))
	require.Equal(t, 2+2, target.Get(2))
}
