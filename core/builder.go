package core

import (
	"fmt"
	"math"
)

// Builder accumulates relationships and freezes them into a Graph.
//
// Relationships of a node are stored in insertion order, so iteration order
// of the built Graph is stable and reproducible. A Builder is not safe for
// concurrent use.
type Builder struct {
	nodeCount int

	src []int32
	dst []int32
	w   []float64

	weighted      bool // some relationship carries an explicit weight
	defaultWeight float64
	undirected    bool
	skipIncoming  bool
	allowLoops    bool
	built         bool
}

// NewBuilder returns a Builder for nodeCount initial nodes. More nodes can be
// appended with AddNodes.
// Complexity: O(1).
func NewBuilder(nodeCount int, opts ...BuilderOption) *Builder {
	if nodeCount < 0 {
		nodeCount = 0
	}
	b := &Builder{
		nodeCount:     nodeCount,
		defaultWeight: DefaultWeight,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NodeCount returns the number of nodes declared so far.
func (b *Builder) NodeCount() int { return b.nodeCount }

// Undirected reports whether AddEdge mirrors relationships.
func (b *Builder) Undirected() bool { return b.undirected }

// AddNodes appends k nodes and returns the id of the first one.
func (b *Builder) AddNodes(k int) int {
	first := b.nodeCount
	if k > 0 {
		b.nodeCount += k
	}

	return first
}

// AddEdge adds a relationship u→v carrying the default weight.
func (b *Builder) AddEdge(u, v int) error {
	return b.add(u, v, b.defaultWeight, false)
}

// AddWeightedEdge adds a relationship u→v with weight w.
func (b *Builder) AddWeightedEdge(u, v int, w float64) error {
	return b.add(u, v, w, true)
}

func (b *Builder) add(u, v int, w float64, explicit bool) error {
	if b.built {
		return ErrGraphFrozen
	}
	if err := CheckNode(u, b.nodeCount); err != nil {
		return err
	}
	if err := CheckNode(v, b.nodeCount); err != nil {
		return err
	}
	if math.IsNaN(w) {
		return fmt.Errorf("%w: NaN on %d→%d", ErrBadWeight, u, v)
	}
	if u == v && !b.allowLoops {
		return nil
	}
	if explicit && !b.weighted && w != b.defaultWeight {
		// first non-default weight: materialize the weight column
		b.weighted = true
		b.w = make([]float64, len(b.src), cap(b.src))
		for i := range b.w {
			b.w[i] = b.defaultWeight
		}
	}
	b.push(u, v, w)
	if b.undirected && u != v {
		b.push(v, u, w)
	}

	return nil
}

func (b *Builder) push(u, v int, w float64) {
	b.src = append(b.src, int32(u))
	b.dst = append(b.dst, int32(v))
	if b.weighted {
		b.w = append(b.w, w)
	}
}

// Build freezes the accumulated relationships into a Graph. The Builder
// cannot be used afterwards.
// Complexity: O(V + E) time, O(V + E) space.
func (b *Builder) Build() (*Graph, error) {
	if b.built {
		return nil, ErrGraphFrozen
	}
	if b.nodeCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNodeCount, b.nodeCount)
	}
	if b.nodeCount > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d exceeds int32 id space", ErrInvalidNodeCount, b.nodeCount)
	}
	b.built = true

	g := &Graph{
		nodeCount:     b.nodeCount,
		defaultWeight: b.defaultWeight,
		relCount:      int64(len(b.src)),
		hasIncoming:   !b.skipIncoming,
	}
	g.outOffsets, g.outTargets, g.outWeights = b.compress(b.src, b.dst)
	if g.hasIncoming {
		g.inOffsets, g.inTargets, g.inWeights = b.compress(b.dst, b.src)
	}

	// release staging buffers
	b.src, b.dst, b.w = nil, nil, nil

	return g, nil
}

// compress lays out (keys[i] → vals[i]) as a CSR row set via counting sort,
// preserving insertion order within each row.
func (b *Builder) compress(keys, vals []int32) ([]int64, []int32, []float64) {
	offsets := make([]int64, b.nodeCount+1)
	for _, k := range keys {
		offsets[k+1]++
	}
	for i := 1; i <= b.nodeCount; i++ {
		offsets[i] += offsets[i-1]
	}

	targets := make([]int32, len(keys))
	var weights []float64
	if b.weighted {
		weights = make([]float64, len(keys))
	}
	cursor := make([]int64, b.nodeCount)
	copy(cursor, offsets[:b.nodeCount])
	for i, k := range keys {
		pos := cursor[k]
		cursor[k]++
		targets[pos] = vals[i]
		if weights != nil {
			weights[pos] = b.w[i]
		}
	}

	return offsets, targets, weights
}

// FromEdges is a convenience for tests and examples: it builds a Graph over
// nodeCount nodes from [u, v] pairs.
func FromEdges(nodeCount int, edges [][2]int, opts ...BuilderOption) (*Graph, error) {
	b := NewBuilder(nodeCount, opts...)
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return b.Build()
}
