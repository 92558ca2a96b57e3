package core_test

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

// ExampleGraph demonstrates building a graph and iterating relationships.
func ExampleGraph() {
	// 1) Declare three nodes and a directed triangle:
	b := core.NewBuilder(3)
	_ = b.AddEdge(0, 1)
	_ = b.AddEdge(1, 2)
	_ = b.AddWeightedEdge(2, 0, 0.5)

	// 2) Freeze into an immutable CSR graph:
	g, _ := b.Build()
	fmt.Println("Nodes:", g.NodeCount(), "Relationships:", g.RelationshipCount())

	// 3) Both = outgoing then incoming:
	fmt.Println("Neighbors of 0:", g.Neighbors(0, core.Both))
	g.ForEachRelationship(2, core.Outgoing, func(s, t int, w float64) bool {
		fmt.Printf("%d→%d weight %g\n", s, t, w)
		return true
	})

	// Output:
	// Nodes: 3 Relationships: 3
	// Neighbors of 0: [1 2]
	// 2→0 weight 0.5
}

// ExampleWithUndirected shows that every edge is stored in both orientations.
func ExampleWithUndirected() {
	g, _ := core.FromEdges(3, [][2]int{{0, 1}, {1, 2}}, core.WithUndirected())

	fmt.Println(g.RelationshipCount(), g.Neighbors(1, core.Outgoing))

	// Output:
	// 4 [0 2]
}

// ExampleWithLoops demonstrates self-loops, dropped unless requested.
func ExampleWithLoops() {
	dropped, _ := core.FromEdges(1, [][2]int{{0, 0}})
	kept, _ := core.FromEdges(1, [][2]int{{0, 0}}, core.WithLoops())

	fmt.Println(dropped.RelationshipCount(), kept.RelationshipCount())

	// Output:
	// 0 1
}

// ExampleIDMap maps external identifiers onto dense node ids.
func ExampleIDMap() {
	ids := core.NewIDMap(0)
	for _, ext := range []int64{900, 42, 900, 7} {
		ids.Add(ext)
	}
	dense, _ := ids.ToDense(42)
	orig, _ := ids.ToOriginal(2)

	fmt.Println(ids.Len(), dense, orig)

	// Output:
	// 3 1 7
}
