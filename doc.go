// Package graphalgo is a parallel graph-analytics core: connected components
// over a disjoint-set structure, multi-source BFS with 64-bit frontiers, and
// betweenness and closeness centrality, all running on an explicit worker
// pool with cooperative cancellation.
//
// The root package is a thin facade. Each analytic lives in its own package
// and can be used directly when finer control is needed:
//
//	core/        - read-only View contract, CSR Graph, Builder, IDMap
//	termination/ - cancellation flags (context, atomic, combinators)
//	pool/        - bounded worker pool with a memory budget
//	dss/         - disjoint-set structure with threshold unions
//	unionfind/   - sequential and parallel connected components
//	msbfs/       - multi-source BFS, up to 64 sources per traversal
//	centrality/  - betweenness (three variants) and closeness
//	bfs/         - single-source BFS with depth, parent and path
//	builder/     - deterministic graph generators
//	loader/      - edge-list reader/writer with gzip, zstd and lz4
//	spanning/    - minimum spanning forests (Kruskal on dss, Prim)
//	gridgraph/   - 2D grids as a View, islands via union-find
//
// Quick start:
//
//	g, _ := core.FromEdges(4, [][2]int{{0, 1}, {2, 3}})
//	p := pool.New(0)
//	res, _ := graphalgo.ConnectedComponents(ctx, g, graphalgo.Settings{Pool: p, BatchSize: 2})
//	fmt.Println(res.SetCount) // 2
//
// Node ids are dense integers in [0, NodeCount()). Graphs read from files
// keep their external ids in a core.IDMap.
package graphalgo
