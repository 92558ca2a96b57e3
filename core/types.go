// Package core defines the read-only graph View contract consumed by every
// analytic in this module, together with a compact CSR implementation.
//
// This file declares Direction, the relationship visitor type, sentinel
// errors, and the options accepted by Builder.
//
// Errors:
//
//	ErrGraphNil          - a nil View was supplied.
//	ErrInvalidNodeCount  - node count is not positive.
//	ErrNodeOutOfRange    - a node id is outside [0, NodeCount()).
//	ErrBadWeight         - a weight is NaN.
//	ErrGraphFrozen       - Builder used after Build.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrGraphNil indicates that a nil View was passed to an algorithm.
	ErrGraphNil = errors.New("core: graph is nil")

	// ErrInvalidNodeCount indicates a node count that is zero or negative.
	ErrInvalidNodeCount = errors.New("core: node count must be positive")

	// ErrNodeOutOfRange indicates a node id outside [0, NodeCount()).
	ErrNodeOutOfRange = errors.New("core: node id out of range")

	// ErrBadWeight indicates a NaN relationship weight.
	ErrBadWeight = errors.New("core: bad relationship weight")

	// ErrGraphFrozen indicates that a Builder was mutated after Build.
	ErrGraphFrozen = errors.New("core: builder already built")
)

// DefaultWeight is the weight reported for relationships added without one.
const DefaultWeight = 1.0

// Direction selects which relationships of a node are iterated.
type Direction uint8

const (
	// Outgoing iterates relationships whose source is the node.
	Outgoing Direction = iota
	// Incoming iterates relationships whose target is the node.
	Incoming
	// Both iterates outgoing then incoming relationships.
	Both
)

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Outgoing:
		return "outgoing"
	case Incoming:
		return "incoming"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// ParseDirection accepts "outgoing"/"out"/">", "incoming"/"in"/"<" and
// "both"/"<>".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "outgoing", "out", ">", "":
		return Outgoing, nil
	case "incoming", "in", "<":
		return Incoming, nil
	case "both", "<>":
		return Both, nil
	default:
		return Outgoing, fmt.Errorf("core: unknown direction %q", s)
	}
}

// RelationshipFunc receives one relationship of the iterated node. The
// iterated node is always passed as source and the neighbor as target, for
// every direction. Returning false stops iteration.
type RelationshipFunc func(source, target int, weight float64) bool

// View is the minimal read-only adjacency contract. Implementations must be
// safe for concurrent readers and must iterate a node's relationships in a
// stable order for a given instance.
type View interface {
	// NodeCount returns the number of dense node ids.
	NodeCount() int

	// ForEachRelationship calls fn for each relationship of node in the
	// requested direction until fn returns false.
	ForEachRelationship(node int, dir Direction, fn RelationshipFunc)
}

// Degreer is implemented by views that can report degrees without iterating.
type Degreer interface {
	Degree(node int, dir Direction) int
}

// Validate rejects nil views and views with no nodes.
func Validate(g View) error {
	if g == nil {
		return ErrGraphNil
	}
	if n := g.NodeCount(); n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidNodeCount, n)
	}

	return nil
}

// CheckNode returns ErrNodeOutOfRange when id is outside [0, n).
func CheckNode(id, n int) error {
	if id < 0 || id >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, id, n)
	}

	return nil
}

// Degree counts the relationships of node in dir, using Degreer when available.
func Degree(g View, node int, dir Direction) int {
	if d, ok := g.(Degreer); ok {
		return d.Degree(node, dir)
	}
	count := 0
	g.ForEachRelationship(node, dir, func(_, _ int, _ float64) bool {
		count++
		return true
	})

	return count
}

// BuilderOption configures a Builder before edges are added.
type BuilderOption func(*Builder)

// WithDefaultWeight sets the weight reported for relationships added via
// AddEdge without an explicit value. NaN is ignored.
func WithDefaultWeight(w float64) BuilderOption {
	return func(b *Builder) {
		if !math.IsNaN(w) {
			b.defaultWeight = w
		}
	}
}

// WithUndirected makes every AddEdge insert both orientations.
func WithUndirected() BuilderOption {
	return func(b *Builder) { b.undirected = true }
}

// WithoutIncoming skips building the incoming index. Views built this way
// report no Incoming relationships.
func WithoutIncoming() BuilderOption {
	return func(b *Builder) { b.skipIncoming = true }
}

// WithLoops keeps self-loops; by default they are dropped.
func WithLoops() BuilderOption {
	return func(b *Builder) { b.allowLoops = true }
}
