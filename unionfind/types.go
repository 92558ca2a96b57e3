package unionfind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/graphalgo/termination"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("unionfind: invalid option supplied")

// DefaultBatchSize is the number of consecutive node ids handed to a worker
// at a time.
const DefaultBatchSize = 10_000

// Option configures a union-find computation.
// Invalid values are recorded and surfaced as ErrOptionViolation by the
// constructor.
type Option func(*Options)

// Options holds the parameters shared by the sequential and parallel
// executors.
type Options struct {
	// Threshold vetoes unions over relationships whose weight is below it.
	// Only consulted when HasThreshold is true.
	Threshold    float64
	HasThreshold bool

	// Concurrency is the number of workers (parallel executor only).
	// Zero means the pool's worker count.
	Concurrency int

	// BatchSize is the number of node ids per batch; cancellation is polled
	// between batches.
	BatchSize int

	// Flag is polled between batches and before each merge step.
	Flag termination.Flag

	// Logger receives start/progress/finish lines.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options without threshold, DefaultBatchSize, pool
// sized concurrency, a never-stopping flag and no logging.
func DefaultOptions() Options {
	return Options{
		BatchSize: DefaultBatchSize,
		Flag:      termination.RunningTrue,
	}
}

// WithThreshold only unites endpoints of relationships with weight >= t.
func WithThreshold(t float64) Option {
	return func(o *Options) {
		if math.IsNaN(t) {
			o.err = fmt.Errorf("%w: threshold is NaN", ErrOptionViolation)
			return
		}
		o.Threshold = t
		o.HasThreshold = true
	}
}

// WithConcurrency sets the number of workers; 0 means the pool size.
func WithConcurrency(w int) Option {
	return func(o *Options) {
		if w < 0 {
			o.err = fmt.Errorf("%w: concurrency cannot be negative (%d)", ErrOptionViolation, w)
			return
		}
		o.Concurrency = w
	}
}

// WithBatchSize sets the number of node ids per batch.
func WithBatchSize(b int) Option {
	return func(o *Options) {
		if b <= 0 {
			o.err = fmt.Errorf("%w: batch size must be positive (%d)", ErrOptionViolation, b)
			return
		}
		o.BatchSize = b
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

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// asCancelled maps context cancellation onto termination.ErrCancelled.
func asCancelled(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", termination.ErrCancelled, err)
	}

	return err
}
