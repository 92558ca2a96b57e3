// Package msbfs implements multi-source breadth-first search: up to 64
// sources are advanced together, sharing every edge traversal.
//
// Each node carries three 64-bit words for the running batch. Bit k of
// seen[v] means source k has reached v; at layer L every active node u ORs
// its frontier word into each neighbor v, keeping only bits v had not seen.
// A neighbor joins the next layer only if that OR gave it new bits. The
// batch ends when a layer adds nothing.
//
// Complexity per batch: O(V + E) word operations instead of O(k·(V + E)) for
// k separate BFS runs.
//
// Visitors see every (node, depth) pair once, with exactly the sources whose
// shortest distance to node is depth:
//
//	e, _ := msbfs.New(g, nil, msbfs.WithDirection(core.Both))
//	err := e.Run(ctx, []int{0, 7, 42}, func(node, depth int, s msbfs.SourceSet) {
//	    for src := range s.Nodes() {
//	        fmt.Println(src, "reaches", node, "in", depth)
//	    }
//	})
//
// More than 64 sources are split into independent batches (see Batches).
// RunParallel spreads those batches over a pool.Pool; each batch gets its
// own visitor so results are merged by the caller.
package msbfs
