package centrality

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/termination"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("centrality: invalid option supplied")

// Option configures a centrality computation.
type Option func(*Options)

// Options holds the parameters shared by every algorithm of the package.
type Options struct {
	// Direction selects the relationships followed during each BFS. With
	// core.Both every unordered pair is counted once (scores are halved).
	Direction core.Direction

	// Concurrency is the number of workers of the parallel variants.
	// Zero means the pool size.
	Concurrency int

	// Flag is polled between sources (sequential variants) or between
	// batches (parallel variants).
	Flag termination.Flag

	// Logger receives start/progress/finish lines.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Outgoing, pool-sized concurrency, a never-stopping
// flag and no logging.
func DefaultOptions() Options {
	return Options{
		Direction: core.Outgoing,
		Flag:      termination.RunningTrue,
	}
}

// WithDirection selects the relationships to follow.
func WithDirection(d core.Direction) Option {
	return func(o *Options) {
		if d > core.Both {
			o.err = fmt.Errorf("%w: unknown direction %d", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// WithConcurrency sets the worker count of the parallel variants.
func WithConcurrency(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: concurrency cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.Concurrency = w
	}
}

// WithTerminationFlag sets the cooperative cancellation flag.
func WithTerminationFlag(f termination.Flag) Option {
	return func(o *Options) {
		if f != nil {
			o.Flag = f
		}
	}
}

// WithLogger routes progress output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolve(g core.View, opts []Option) (Options, error) {
	if err := core.Validate(g); err != nil {
		return Options{}, fmt.Errorf("centrality: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// divisor returns 2 for undirected traversal, where each pair is seen from
// both ends.
func (o Options) divisor() float64 {
	if o.Direction == core.Both {
		return 2
	}

	return 1
}

func asCancelled(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", termination.ErrCancelled, err)
	}

	return err
}

// Result holds one score per node.
type Result struct {
	scores []float64
}

// Len returns the number of nodes.
func (r *Result) Len() int { return len(r.scores) }

// Score returns the score of node, or 0 when node is out of range.
func (r *Result) Score(node int) float64 {
	if node < 0 || node >= len(r.scores) {
		return 0
	}

	return r.scores[node]
}

// Scores returns a copy of all scores indexed by node id.
func (r *Result) Scores() []float64 {
	out := make([]float64, len(r.scores))
	copy(out, r.scores)

	return out
}

// All yields (nodeId, score) in ascending node order.
func (r *Result) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, s := range r.scores {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Stats summarizes a Result.
type Stats struct {
	Min, Max, Sum float64
}

// Stats returns min, max and sum of all scores.
func (r *Result) Stats() Stats {
	if len(r.scores) == 0 {
		return Stats{}
	}
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, s := range r.scores {
		st.Min = min(st.Min, s)
		st.Max = max(st.Max, s)
		st.Sum += s
	}

	return st
}

// Algorithm is implemented by every variant of this package.
type Algorithm interface {
	Compute(ctx context.Context) (*Result, error)
}
