// Package termination provides the cooperative cancellation flag polled by
// long-running analytics at batch, source and layer boundaries.
//
// Cancellation is never delivered by interrupting a goroutine: an algorithm
// observes the flag at a checkpoint, stops issuing new work, lets in-flight
// work finish, discards partial state and returns ErrCancelled.
package termination

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrCancelled is returned when a Flag reported false at a checkpoint.
// It is distinct from any failure so callers can tell "stopped on request"
// from "crashed".
var ErrCancelled = errors.New("termination: computation cancelled")

// Flag answers "should the computation continue?". Implementations must be
// safe for concurrent use.
type Flag interface {
	Running() bool
}

// FlagFunc adapts a plain function to Flag.
type FlagFunc func() bool

// Running implements Flag.
func (f FlagFunc) Running() bool { return f() }

type alwaysRunning struct{}

func (alwaysRunning) Running() bool { return true }

// RunningTrue is a Flag that never stops.
var RunningTrue Flag = alwaysRunning{}

// FromContext returns a Flag that stops once ctx is done. Deadlines set on
// ctx therefore act as timeouts owned by the caller.
func FromContext(ctx context.Context) Flag {
	if ctx == nil {
		return RunningTrue
	}

	return FlagFunc(func() bool { return ctx.Err() == nil })
}

// Atomic is a Flag the caller stops explicitly. The zero value is running.
type Atomic struct {
	stopped atomic.Bool
}

// NewAtomic returns a running Atomic flag.
func NewAtomic() *Atomic { return &Atomic{} }

// Running implements Flag.
func (a *Atomic) Running() bool { return !a.stopped.Load() }

// Stop makes every subsequent Running call return false.
func (a *Atomic) Stop() { a.stopped.Store(true) }

// Any combines flags: the result stops as soon as one of them stops.
func Any(flags ...Flag) Flag {
	live := make([]Flag, 0, len(flags))
	for _, f := range flags {
		if f != nil {
			live = append(live, f)
		}
	}
	if len(live) == 0 {
		return RunningTrue
	}
	if len(live) == 1 {
		return live[0]
	}

	return FlagFunc(func() bool {
		for _, f := range live {
			if !f.Running() {
				return false
			}
		}
		return true
	})
}

// Check returns ErrCancelled when f has stopped. A nil flag never stops.
func Check(f Flag) error {
	if f != nil && !f.Running() {
		return ErrCancelled
	}

	return nil
}
