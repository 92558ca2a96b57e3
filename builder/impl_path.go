// SPDX-License-Identifier: MIT
// Package: graphalgo/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n nodes base..base+n-1.
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) nodes + O(n-1) edges, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := b.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := connect(b, cfg, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
