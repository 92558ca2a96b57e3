// SPDX-License-Identifier: MIT
// Package: graphalgo/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Appends the left part (n1 nodes) then the right part (n2 nodes).
//   - Emits left[i] → right[j], i ascending then j ascending.
//
// Complexity: O(n1+n2) nodes + O(n1*n2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartition            = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n1 < minPartition || n2 < minPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartition, ErrTooFewVertices)
		}

		left := b.AddNodes(n1)
		right := b.AddNodes(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err := connect(b, cfg, methodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
