package spanning

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/termination"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("spanning: invalid option supplied")

// ErrDisconnected is returned when a spanning tree is required but the graph
// has more than one component.
var ErrDisconnected = errors.New("spanning: graph is disconnected")

// Method selects the spanning algorithm.
type Method string

const (
	// MethodKruskal sorts all relationships and unions endpoints.
	MethodKruskal Method = "kruskal"
	// MethodPrim grows a tree from Options.Root with a min-heap.
	MethodPrim Method = "prim"
)

// Edge is one relationship of a forest, stored as read from the graph.
type Edge struct {
	Source, Target int
	Weight         float64
}

// Forest is the result of a spanning computation.
type Forest struct {
	Edges  []Edge
	Weight float64
	// Trees is the number of trees, which equals the number of components
	// covered (isolated nodes count as one tree each).
	Trees int
}

// Option configures Compute.
type Option func(*Options)

// Options for Compute.
type Options struct {
	Method Method
	// Root is the start node of Prim; ignored by Kruskal.
	Root int
	// Connected makes a forest with more than one tree an ErrDisconnected.
	Connected bool
	// Pool supplies the memory budget of the disjoint-set structure.
	Pool *pool.Pool
	Flag termination.Flag

	err error
}

// DefaultOptions returns Kruskal, root 0, forests allowed.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Flag: termination.RunningTrue}
}

// WithMethod selects Kruskal or Prim.
func WithMethod(m Method) Option {
	return func(o *Options) {
		if m != MethodKruskal && m != MethodPrim {
			o.err = fmt.Errorf("%w: unknown method %q", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithRoot sets the start node of Prim.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// WithConnected rejects graphs that need more than one tree.
func WithConnected() Option {
	return func(o *Options) { o.Connected = true }
}

// WithPool sets the pool charged for working memory.
func WithPool(p *pool.Pool) Option {
	return func(o *Options) { o.Pool = p }
}

// WithTerminationFlag sets the cooperative cancellation flag, polled once
// per node added to the forest.
func WithTerminationFlag(f termination.Flag) Option {
	return func(o *Options) {
		if f != nil {
			o.Flag = f
		}
	}
}

// Compute runs the configured method on g.
func Compute(g core.View, opts ...Option) (*Forest, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := core.Validate(g); err != nil {
		return nil, fmt.Errorf("spanning: %w", err)
	}

	var (
		f   *Forest
		err error
	)
	switch o.Method {
	case MethodPrim:
		if err := core.CheckNode(o.Root, g.NodeCount()); err != nil {
			return nil, fmt.Errorf("spanning: root: %w", err)
		}
		f, err = prim(g, o)
		if err == nil && o.Connected && len(f.Edges) < g.NodeCount()-1 {
			return nil, fmt.Errorf("%w: tree from %d covers %d of %d nodes",
				ErrDisconnected, o.Root, len(f.Edges)+1, g.NodeCount())
		}
	default:
		f, err = kruskal(g, o)
		if err == nil && o.Connected && f.Trees > 1 {
			return nil, fmt.Errorf("%w: %d trees", ErrDisconnected, f.Trees)
		}
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Kruskal returns the minimum spanning forest of g.
func Kruskal(g core.View, p *pool.Pool) (*Forest, error) {
	return Compute(g, WithPool(p))
}

// Prim returns the minimum spanning tree of the component containing root.
func Prim(g core.View, root int) (*Forest, error) {
	return Compute(g, WithMethod(MethodPrim), WithRoot(root))
}
