package bfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphalgo/bfs"
	"github.com/katalvlaran/graphalgo/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid (9 vertices).
// Vertex i*3+j is cell (i, j); the start is the top-left corner.
func ExampleBFS_gridTraversal() {
	b := core.NewBuilder(9, core.WithUndirected())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			id := i*3 + j
			// connect to right neighbor
			if j+1 < 3 {
				_ = b.AddEdge(id, id+1)
			}
			// connect to down neighbor
			if i+1 < 3 {
				_ = b.AddEdge(id, id+3)
			}
		}
	}
	g, _ := b.Build()

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// non-decreasing Manhattan distance
	fmt.Println(res.Order)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
}

// ExampleBFSResult_PathTo finds the fewest-hop path when two routes compete:
// 0–1–2–3–10 (4 hops) and 0–4–5–10 (3 hops).
func ExampleBFSResult_PathTo() {
	g, _ := core.FromEdges(11, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 10}, // route 1
		{0, 4}, {4, 5}, {5, 10}, // route 2
		{2, 6}, {6, 7}, {3, 8}, {8, 9}, // branches
	}, core.WithUndirected())

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, err := res.PathTo(10)
	if err != nil {
		fmt.Println("no path:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [0 4 5 10]
}

// ExampleWithMaxDepth limits a 10-vertex chain to the first three vertices.
func ExampleWithMaxDepth() {
	b := core.NewBuilder(10)
	for i := 0; i < 9; i++ {
		_ = b.AddEdge(i, i+1)
	}
	g, _ := b.Build()

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order, res.Depth[5])
	// Output:
	// [0 1 2] -1
}

// ExampleBFS_hooksAndCancellation cancels a 7-vertex chain walk from inside
// OnVisit once depth 4 is reached.
func ExampleBFS_hooksAndCancellation() {
	b := core.NewBuilder(7)
	for i := 0; i < 6; i++ {
		_ = b.AddEdge(i, i+1)
	}
	g, _ := b.Build()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var enqSeq, visSeq []string
	_, err := bfs.BFS(
		g, 0,
		bfs.WithContext(ctx),
		bfs.WithOnEnqueue(func(id, d int) { enqSeq = append(enqSeq, fmt.Sprintf("E[%d@%d]", id, d)) }),
		bfs.WithOnVisit(func(id, d int) error {
			visSeq = append(visSeq, fmt.Sprintf("V[%d@%d]", id, d))
			if d == 4 {
				cancel()
			}
			return nil
		}),
	)

	fmt.Println("error:", err)
	fmt.Println("Enqueued:", enqSeq)
	fmt.Println("Visited: ", visSeq)
	// Output:
	// error: termination: computation cancelled: context canceled
	// Enqueued: [E[0@0] E[1@1] E[2@2] E[3@3] E[4@4] E[5@5]]
	// Visited:  [V[0@0] V[1@1] V[2@2] V[3@3] V[4@4]]
}
