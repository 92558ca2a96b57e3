// SPDX-License-Identifier: MIT
// Package: graphalgo/builder
//
// api.go - public entry-points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, freezes the result.
//   - Every constructor appends its own block of nodes (core.Builder.AddNodes),
//     so composing constructors yields their disjoint union with stable ids.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

// Constructor appends one topology to b using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching b and return sentinel errors.
//   - Allocate their nodes with b.AddNodes and only connect those nodes.
//   - Emit relationships in a stable, documented order.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a core.Builder with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// builds the graph. Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity: Σ cost of each constructor + O(V + E) for the CSR freeze.
func BuildGraph(gopts []core.BuilderOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(0, gopts...)
	if err := Apply(b, bopts, cons...); err != nil {
		return nil, err
	}
	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs cons against an existing builder. Nodes already declared on b
// are left untouched; every constructor appends after them.
func Apply(b *core.Builder, bopts []BuilderOption, cons ...Constructor) error {
	if b == nil {
		return fmt.Errorf("BuildGraph: nil builder: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// With a directed core.Builder each edge is emitted once in the documented
// orientation; core.WithUndirected mirrors it.
//
//   Path(n)              P_n, edges i→i+1                         n ≥ 2
//   Cycle(n)             C_n, Path plus (n-1)→0                   n ≥ 3
//   Star(n)              first node is the hub, hub→leaf          n ≥ 2
//   Wheel(n)             C_{n-1} plus a hub (last node)           n ≥ 4
//   Complete(n)          K_n, i→j for i<j                         n ≥ 1
//   CompleteBipartite    K_{n1,n2}, left→right                    n1,n2 ≥ 1
//   Grid(rows, cols)     row-major, right then down               rows,cols ≥ 1
//   RandomSparse(n, p)   Erdős–Rényi G(n,p), needs an RNG for 0<p<1

// connect emits u→v, drawing the weight from cfg.weightFn when one is set.
func connect(b *core.Builder, cfg builderConfig, method string, u, v int) error {
	var err error
	if cfg.weightFn == nil {
		err = b.AddEdge(u, v)
	} else {
		err = b.AddWeightedEdge(u, v, cfg.weightFn(cfg.rng))
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
	}

	return nil
}
