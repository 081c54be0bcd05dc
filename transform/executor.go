package transform

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vineetp6/belt/util"
)

// logger is the package-level zap logger, nop by default. Belt logs around
// batch-count decisions and failures, never inside a per-row loop, mirroring
// the teacher's "log around the expensive phase" discipline
// (internal/engine/loader.go's log.Printf bracketing the parse phase).
var logger = zap.NewNop()

// SetLogger overrides the package-level logger, e.g. to wire belt's executor
// diagnostics into an application's existing zap.Logger.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Execute runs calc to completion: it decides a batch count from n and hint,
// calls calc.Init, dispatches one goroutine per batch via an errgroup bounded
// to ctx.Parallelism() concurrent batches (the teacher's aggregator.go
// fan-out, generalized from a raw chan+sync.WaitGroup to
// golang.org/x/sync/errgroup's cancel-on-first-error semantics), combines
// batch results in ascending batch-index order if calc is Combinable, and
// returns calc.Result().
//
// If any batch returns an error, Execute cancels the remaining batches on a
// best-effort basis and returns the first observed error (spec §4.5 step 3);
// it never calls Combine or Result in that case.
func Execute[T any](ctx Context, hint Workload, calc Calculator[T]) (T, error) {
	var zero T
	if ctx == nil {
		return zero, util.NullError("transform: context must not be nil")
	}
	if calc == nil {
		return zero, util.NullError("transform: calculator must not be nil")
	}

	n := calc.NumberOfOperations()
	b := batchCount(n, ctx.Parallelism(), hint)
	logger.Debug("belt: executing calculator", zap.Int("rows", n), zap.Int("batches", b))

	if err := initPart(calc, b); err != nil {
		return zero, err
	}
	if b == 0 {
		return calc.Result(), nil
	}

	s := (n + b - 1) / b

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ctx.Parallelism())
	for batch := 0; batch < b; batch++ {
		batch := batch
		from := batch * s
		to := from + s
		if to > n || batch == b-1 {
			to = n
		}
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return util.CancelledError("transform: cancelled before batch %d", batch)
			default:
			}
			return runPart(calc, from, to, batch)
		})
	}
	if err := g.Wait(); err != nil {
		logger.Warn("belt: calculator batch failed", zap.Error(err))
		return zero, err
	}

	if combinable, ok := calc.(Combinable); ok {
		for batch := 0; batch < b; batch++ {
			if err := combinable.Combine(batch); err != nil {
				return zero, err
			}
		}
	}

	return calc.Result(), nil
}

// runPart invokes DoPart, recovering a panic from user-supplied lambdas into
// a transparent user-error (spec §7: "user-error (transparent)").
func runPart[T any](calc Calculator[T], from, to, batch int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = util.UserError(r)
		}
	}()
	return calc.DoPart(from, to, batch)
}

// initPart calls calc.Init, converting a panic into an error instead of
// crashing the caller. A panic that already carries a belt error kind (e.g.
// the mutable reducer's "supplier returned nil" null-error) surfaces with
// that kind intact; any other panic (e.g. the single-accumulator categorical
// int reducer asserting numberOfBatches == 1) becomes an argument-error.
func initPart[T any](calc Calculator[T], numberOfBatches int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if belt, ok := r.(error); ok {
				err = belt
				return
			}
			err = util.ArgumentError("transform: calculator init failed: %v", r)
		}
	}()
	calc.Init(numberOfBatches)
	return nil
}
