// Package centrality implements unweighted betweenness and closeness
// centrality over a core.View.
//
// Betweenness of v is Σ σ_st(v)/σ_st over ordered pairs s ≠ v ≠ t, where σ_st
// counts the shortest s-t paths and σ_st(v) those passing through v. Three
// interchangeable implementations of Brandes' algorithm are provided:
//
//   - Brandes:    sequential, explicit predecessor lists per node.
//   - Successor:  sequential, no predecessor lists; the reverse pass
//     re-scans relationships, trading time for O(V) memory.
//   - Parallel:   sources partitioned over a pool.Pool, private
//     accumulators per worker, summed after a barrier.
//
// All three agree up to floating-point rounding. With core.Both the graph is
// treated as undirected and each unordered pair is counted once, so a star
// with five leaves gives its center 10.
//
//	g, _ := core.FromEdges(6, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}})
//	bc, _ := centrality.NewParallel(g, pool.New(0), centrality.WithDirection(core.Both))
//	res, _ := bc.Compute(ctx)
//	for id, score := range res.All() {
//	    fmt.Println(id, score)
//	}
//
// Closeness uses msbfs to run 64 sources per traversal.
//
// Every Compute polls its termination.Flag and the context at source or
// batch boundaries and returns termination.ErrCancelled with no result
// when stopped.
package centrality
