// Package gridgraph treats a 2D grid of integer cells as a graph.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid. Cells with value ≥
//     LandThreshold are land; the rest are water.
//   - GridGraph implements core.View without materializing adjacency: node
//     ids are row-major cell indices, and every pair of neighboring land cells
//     is joined by a relationship in both directions whose weight is the
//     lower of the two cell values.
//   - Islands finds the connected land regions with the union-find executor;
//     a threshold keeps only the cells at or above a given value.
//   - ToGraph freezes the same relationships into a CSR *core.Graph.
//
// Complexity:
//
//   - ForEachRelationship: O(d) per cell (d = 4 or 8 neighbors).
//   - Islands:             O(W×H×d·α) time, O(W×H) memory.
//   - ToGraph:             O(W×H×d) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
