// Package spanning computes minimum spanning forests of weighted graphs.
//
// Relationships are read as undirected: a relationship u→v with weight w
// connects u and v with cost w regardless of how the graph was built.
// Self-loops are ignored.
//
// Algorithms
//
//   - Kruskal: sort all relationships by weight (stable, so equal weights keep
//     relationship order), then grow the forest with a dss.DisjointSetStruct,
//     skipping relationships whose endpoints are already connected. Produces
//     one tree per connected component.
//     Time O(E log E + α(V)·E), space O(V + E).
//
//   - Prim: grow a single tree from a root with a binary heap of candidate
//     relationships. Covers the root's component only.
//     Time O(E log V), space O(V + E).
//
// Both return a Forest with the chosen relationships and their total weight.
// On a connected graph both forests have the same total weight.
package spanning
