package transform

// Calculator is the per-job bundle of user code and scratch state (spec
// §4.4, component C5), generic over its final result type T.
type Calculator[T any] interface {
	// Init allocates target/per-batch accumulators given the number of
	// batches the executor decided on.
	Init(numberOfBatches int)
	// NumberOfOperations returns the total row count to process.
	NumberOfOperations() int
	// DoPart computes over rows [from, to) on behalf of batchIndex. Ranges
	// across distinct batchIndex values are disjoint; DoPart calls may run
	// concurrently on distinct batches.
	DoPart(from, to, batchIndex int) error
	// Result finalizes and returns the calculator's output after every
	// batch has completed and, where applicable, been combined.
	Result() T
}

// Combinable is implemented by calculators whose batch results must be
// folded together sequentially in ascending batch-index order once every
// DoPart has completed (spec §4.4: "the engine combines in batch-index
// order"). Appliers don't implement this — their batches write into
// disjoint ranges of one target buffer and need no combine step.
type Combinable interface {
	// Combine folds batch batchIndex's result into the running total. Called
	// once per batch, strictly in ascending batchIndex order, after all
	// DoPart calls have returned successfully.
	Combine(batchIndex int) error
}
