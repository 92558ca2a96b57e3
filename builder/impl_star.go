// SPDX-License-Identifier: MIT
// Package: graphalgo/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first appended node is the hub; leaves follow in ascending order.
//   - Emits spokes hub → leaf. Betweenness on the hub counts the pairs of
//     leaves, so callers usually traverse with core.Both or build undirected.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := b.AddNodes(n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			if err := connect(b, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
