package msbfs

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/bits"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/termination"
)

// Width is the number of sources advanced together in one batch: one bit
// per source in a uint64 word.
const Width = 64

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("msbfs: invalid option supplied")

// SourceSet is the set of batch sources delivered with a visit. Bit k stands
// for the k-th source of the batch.
type SourceSet struct {
	bits   uint64
	batch  []int
	offset int
}

// Bits returns the raw bitset word.
func (s SourceSet) Bits() uint64 { return s.bits }

// Len returns the number of sources in the set.
func (s SourceSet) Len() int { return bits.OnesCount64(s.bits) }

// Has reports whether batch source k is in the set.
func (s SourceSet) Has(k int) bool { return k >= 0 && k < Width && s.bits&(1<<uint(k)) != 0 }

// Offset returns the position of the batch's first source in the full
// source list passed to the engine.
func (s SourceSet) Offset() int { return s.offset }

// Nodes yields the node id of every source in the set, in bit order.
func (s SourceSet) Nodes() iter.Seq[int] {
	return func(yield func(int) bool) {
		for w := s.bits; w != 0; w &= w - 1 {
			if !yield(s.batch[bits.TrailingZeros64(w)]) {
				return
			}
		}
	}
}

// Indexes yields, for every source in the set, its position in the full
// source list and its node id.
func (s SourceSet) Indexes() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for w := s.bits; w != 0; w &= w - 1 {
			k := bits.TrailingZeros64(w)
			if !yield(s.offset+k, s.batch[k]) {
				return
			}
		}
	}
}

// Visitor observes a node at the depth where new sources reached it. It is
// called once per (node, depth) with exactly the sources for which depth is
// the shortest distance. Sources themselves are reported at depth 0.
type Visitor func(node, depth int, sources SourceSet)

// Option configures an Engine.
type Option func(*Options)

// Options holds the traversal parameters.
type Options struct {
	// Direction selects the relationships followed from each active node.
	Direction core.Direction

	// MaxDepth, if > 0, stops expanding beyond this depth.
	MaxDepth int

	// Flag is polled once per layer.
	Flag termination.Flag

	// Logger receives start/finish lines.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Outgoing, unlimited depth, a never-stopping flag.
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

// WithMaxDepth stops the search at depth d (inclusive).
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
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

// WithLogger routes start/finish output to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Batches cuts sources into consecutive groups of at most width entries.
// The returned slices alias sources.
func Batches(sources []int, width int) [][]int {
	if width <= 0 || width > Width {
		width = Width
	}
	out := make([][]int, 0, (len(sources)+width-1)/width)
	for start := 0; start < len(sources); start += width {
		out = append(out, sources[start:min(start+width, len(sources))])
	}

	return out
}

// AllNodes returns the source list 0..n-1.
func AllNodes(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
