// SPDX-License-Identifier: MIT
// Package: graphalgo/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): the rim C_{n-1} needs at least 3 nodes.
//   - Appends the rim first (via Cycle), then the hub as the last node.
//   - Emits rim edges as Cycle does, then spokes hub → rim[i] in order.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := b.NodeCount()
		if err := Cycle(n-1)(b, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		hub := b.AddNodes(1)
		for i := 0; i < n-1; i++ {
			if err := connect(b, cfg, methodWheel, hub, rim+i); err != nil {
				return err
			}
		}

		return nil
	}
}
