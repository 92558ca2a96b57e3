// Package core provides the graph contract shared by every analytic in
// graphalgo, and a compact primitive-array implementation of it.
//
// The contract is deliberately small:
//
//	type View interface {
//	    NodeCount() int
//	    ForEachRelationship(node int, dir Direction, fn RelationshipFunc)
//	}
//
// Node ids are dense integers in [0, NodeCount()). Algorithms never create or
// renumber ids; IDMap translates external identifiers at the boundary.
//
// Graph is the in-memory CSR implementation:
//
//   - int64 row offsets + int32 targets per direction
//   - an optional float64 weight column, materialized only when a
//     relationship carries a non-default weight
//   - insertion-ordered rows (stable iteration for a given instance)
//   - immutable after Build, so any number of goroutines may read it
//
// Build one with Builder:
//
//	b := core.NewBuilder(5, core.WithUndirected())
//	_ = b.AddEdge(0, 1)
//	_ = b.AddWeightedEdge(1, 2, 0.3)
//	g, err := b.Build()
//
// Options:
//
//	– WithUndirected()       mirror every AddEdge
//	– WithDefaultWeight(w)   weight reported for unweighted relationships (default 1.0)
//	– WithoutIncoming()      skip the incoming index (halves memory)
//	– WithLoops()            keep self-loops (dropped by default)
//
// Complexity: Build is O(V + E); ForEachRelationship is O(deg); Degree is O(1).
package core
