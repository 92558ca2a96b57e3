package graphalgo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/katalvlaran/graphalgo/centrality"
	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/dss"
	"github.com/katalvlaran/graphalgo/pool"
	"github.com/katalvlaran/graphalgo/spanning"
	"github.com/katalvlaran/graphalgo/termination"
	"github.com/katalvlaran/graphalgo/unionfind"
)

// ErrUnknownVariant is returned for a betweenness variant name that is not
// one of the Variant constants.
var ErrUnknownVariant = errors.New("graphalgo: unknown betweenness variant")

// Variant names a betweenness centrality implementation.
type Variant string

const (
	// VariantBrandes keeps predecessor lists, one source at a time.
	VariantBrandes Variant = "brandes"
	// VariantSuccessor rescans relationships instead of keeping predecessors.
	VariantSuccessor Variant = "successor"
	// VariantParallel runs one successor-stack worker per batch of sources.
	VariantParallel Variant = "parallel"
)

// ParseVariant accepts the Variant names, case-insensitively.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantBrandes, VariantSuccessor, VariantParallel:
		return v, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Settings are the knobs shared by the facade functions. The zero value runs
// single-threaded, follows outgoing relationships and never stops early.
type Settings struct {
	// Pool supplies workers and the memory budget. Nil runs on one goroutine.
	Pool *pool.Pool

	// Concurrency caps the workers of one computation; 0 means the pool size.
	Concurrency int

	// BatchSize > 0 selects the parallel union-find executor with batches of
	// this many node ids.
	BatchSize int

	// Threshold vetoes unions over lighter relationships when HasThreshold.
	Threshold    float64
	HasThreshold bool

	// Direction is followed by the centrality traversals.
	Direction core.Direction

	Flag   termination.Flag
	Logger *slog.Logger
}

// ComponentsResult summarizes a connected-components run.
type ComponentsResult struct {
	Sets        *dss.DisjointSetStruct
	NodeCount   int
	SetCount    int
	Parallel    bool
	ComputeTime time.Duration
}

// ConnectedComponents partitions g into weakly connected components. The
// parallel executor is used when s.BatchSize is positive.
func ConnectedComponents(ctx context.Context, g core.View, s Settings) (*ComponentsResult, error) {
	opts := []unionfind.Option{
		unionfind.WithConcurrency(s.Concurrency),
		unionfind.WithTerminationFlag(s.Flag),
		unionfind.WithLogger(s.Logger),
	}
	if s.HasThreshold {
		opts = append(opts, unionfind.WithThreshold(s.Threshold))
	}

	var algo interface {
		Compute(context.Context) (*dss.DisjointSetStruct, error)
	}
	parallel := s.BatchSize > 0
	if parallel {
		e, err := unionfind.NewExecutor(g, s.Pool, append(opts, unionfind.WithBatchSize(s.BatchSize))...)
		if err != nil {
			return nil, err
		}
		algo = e
	} else {
		u, err := unionfind.New(g, s.Pool, opts...)
		if err != nil {
			return nil, err
		}
		algo = u
	}

	start := time.Now()
	sets, err := algo.Compute(ctx)
	if err != nil {
		return nil, err
	}

	return &ComponentsResult{
		Sets:        sets,
		NodeCount:   g.NodeCount(),
		SetCount:    sets.SetCount(),
		Parallel:    parallel,
		ComputeTime: time.Since(start),
	}, nil
}

// Betweenness computes betweenness centrality with the chosen variant.
func Betweenness(ctx context.Context, g core.View, v Variant, s Settings) (*centrality.Result, error) {
	opts := s.centralityOptions()

	var (
		algo centrality.Algorithm
		err  error
	)
	switch v {
	case VariantBrandes:
		algo, err = centrality.NewBrandes(g, s.Pool, opts...)
	case VariantSuccessor:
		algo, err = centrality.NewSuccessor(g, s.Pool, opts...)
	case VariantParallel:
		algo, err = centrality.NewParallel(g, s.Pool, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
	if err != nil {
		return nil, err
	}

	return algo.Compute(ctx)
}

// Closeness computes closeness centrality, optionally with Wasserman-Faust
// normalization.
func Closeness(ctx context.Context, g core.View, wassermanFaust bool, s Settings) (*centrality.Result, error) {
	c, err := centrality.NewCloseness(g, s.Pool, wassermanFaust, s.centralityOptions()...)
	if err != nil {
		return nil, err
	}

	return c.Compute(ctx)
}

// SpanningForest returns the minimum spanning forest of g. Method Prim
// grows a single tree from root; Kruskal ignores root.
func SpanningForest(ctx context.Context, g core.View, m spanning.Method, root int, s Settings) (*spanning.Forest, error) {
	return spanning.Compute(g,
		spanning.WithMethod(m),
		spanning.WithRoot(root),
		spanning.WithPool(s.Pool),
		spanning.WithTerminationFlag(termination.Any(s.Flag, termination.FromContext(ctx))),
	)
}

func (s Settings) centralityOptions() []centrality.Option {
	return []centrality.Option{
		centrality.WithDirection(s.Direction),
		centrality.WithConcurrency(s.Concurrency),
		centrality.WithTerminationFlag(s.Flag),
		centrality.WithLogger(s.Logger),
	}
}
