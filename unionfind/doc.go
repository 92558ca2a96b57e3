// Package unionfind computes connected components of a core.View.
//
// Two executors share one Options type:
//
//	UnionFind  - single goroutine, one DisjointSetStruct, batches only
//	             serve as cancellation checkpoints.
//	Executor   - W workers each fill a private DisjointSetStruct from
//	             their share of ceil(n/B) batches; the structures are then
//	             merged pairwise until one covers the whole graph.
//
// Only outgoing relationships are read, so every edge is applied once. With
// WithThreshold(t) an edge unites its endpoints only if weight >= t.
//
// Both executors produce the same partition for the same graph and
// threshold, regardless of worker count, batch size or merge order. Set ids
// (roots) follow the dss tie-break rule: larger set wins, lower id on ties.
//
// Example:
//
//	p := pool.New(8)
//	ex, err := unionfind.NewExecutor(g, p,
//	    unionfind.WithBatchSize(100_000),
//	    unionfind.WithThreshold(0.5),
//	)
//	if err != nil { ... }
//	set, err := ex.Compute(ctx)
//	if errors.Is(err, termination.ErrCancelled) { ... }
//	fmt.Println(set.SetCount())
package unionfind
