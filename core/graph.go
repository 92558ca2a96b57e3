package core

// Graph is an immutable compressed-sparse-row adjacency structure.
//
// For every node u the outgoing neighbors live in
// outTargets[outOffsets[u]:outOffsets[u+1]] with matching entries in
// outWeights; the incoming index is laid out the same way. Node ids are
// dense int32 values, so a graph with 50M relationships costs about
// 600MB per direction with weights, 200MB without.
//
// A Graph is safe for any number of concurrent readers.
type Graph struct {
	nodeCount int

	outOffsets []int64
	outTargets []int32
	outWeights []float64 // nil when every relationship has the default weight

	inOffsets []int64
	inTargets []int32
	inWeights []float64

	defaultWeight float64
	relCount      int64
	hasIncoming   bool
}

// NodeCount implements View.
func (g *Graph) NodeCount() int { return g.nodeCount }

// RelationshipCount returns the number of stored outgoing relationships.
// Undirected edges count twice.
func (g *Graph) RelationshipCount() int64 { return g.relCount }

// DefaultWeight returns the weight reported for relationships added without one.
func (g *Graph) DefaultWeight() float64 { return g.defaultWeight }

// Weighted reports whether any relationship carries an explicit weight.
func (g *Graph) Weighted() bool { return g.outWeights != nil }

// ForEachRelationship implements View.
func (g *Graph) ForEachRelationship(node int, dir Direction, fn RelationshipFunc) {
	switch dir {
	case Outgoing:
		g.forEach(node, g.outOffsets, g.outTargets, g.outWeights, fn)
	case Incoming:
		if g.hasIncoming {
			g.forEach(node, g.inOffsets, g.inTargets, g.inWeights, fn)
		}
	case Both:
		if !g.forEach(node, g.outOffsets, g.outTargets, g.outWeights, fn) {
			return
		}
		if g.hasIncoming {
			g.forEach(node, g.inOffsets, g.inTargets, g.inWeights, fn)
		}
	}
}

// forEach walks one CSR row and reports whether iteration ran to completion.
func (g *Graph) forEach(node int, offsets []int64, targets []int32, weights []float64, fn RelationshipFunc) bool {
	start, end := offsets[node], offsets[node+1]
	for i := start; i < end; i++ {
		w := g.defaultWeight
		if weights != nil {
			w = weights[i]
		}
		if !fn(node, int(targets[i]), w) {
			return false
		}
	}

	return true
}

// Degree implements Degreer in O(1).
func (g *Graph) Degree(node int, dir Direction) int {
	out := int(g.outOffsets[node+1] - g.outOffsets[node])
	in := 0
	if g.hasIncoming {
		in = int(g.inOffsets[node+1] - g.inOffsets[node])
	}
	switch dir {
	case Outgoing:
		return out
	case Incoming:
		return in
	default:
		return out + in
	}
}

// Neighbors returns the targets of node in dir as a fresh slice.
func (g *Graph) Neighbors(node int, dir Direction) []int {
	out := make([]int, 0, g.Degree(node, dir))
	g.ForEachRelationship(node, dir, func(_, t int, _ float64) bool {
		out = append(out, t)
		return true
	})

	return out
}
