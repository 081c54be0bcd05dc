// Package transform implements the calculator/executor/façade layers (spec
// §4.4-§4.6, components C5-C7): the per-operation worker contract, the
// parallel executor that partitions a row range into batches, and the
// user-facing Transformer/MultiTransformer entry points.
package transform

import "context"

// Context is the out-of-scope "executor's thread-pool provider and
// workload-hint policy" collaborator (spec §1): only its interface is
// specified here. It embeds context.Context for cancellation and adds the
// parallelism hint the batching formula needs (spec §4.5).
type Context interface {
	context.Context
	// Parallelism returns the target number of concurrently running
	// batches, typically the worker pool's size.
	Parallelism() int
}
