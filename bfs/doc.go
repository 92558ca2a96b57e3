// Package bfs provides single-source breadth-first search over a core.View,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (hop count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: vertex → distance from start (-1 if unreached)
//   - Parent: vertex → predecessor in the BFS tree (-1 for start / unreached)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual relationships via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Follows Outgoing, Incoming or Both relationships (WithDirection).
//
// Relationship weights are ignored.
//
// Determinism
//
//	Relationships are iterated in the order they were added to the
//	core.Builder, and BFS enqueues neighbors in that order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Relationships|)
//
//   - Time:   O(V + E)   (each vertex and relationship seen at most once)
//   - Memory: O(V)       (queue, Depth, Parent)
//
// Usage
//
//	res, err := bfs.BFS(g, 0,
//	    bfs.WithContext(ctx),
//	    bfs.WithDirection(core.Both),
//	    bfs.WithMaxDepth(3),
//	)
//	path, err := res.PathTo(42)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start id is out of range.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - termination.ErrCancelled when the context or flag stops the walk.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// The multi-source variant lives in package msbfs; this package is the
// reference it is tested against.
package bfs
