// Package dss implements the disjoint-set structure (union-find) behind the
// connected-components executors.
//
// A DisjointSetStruct is two fixed int32 arrays indexed by node id: parent
// (a self-parent marks a root) and size (meaningful at roots only). Nothing
// is allocated after construction.
//
// Rules:
//
//   - Find compresses the whole path: every visited node is repointed to the root.
//   - Union attaches the root of the smaller set under the root of the larger one.
//   - On equal sizes the lower numeric id becomes the root. Results are
//     therefore reproducible across runs, worker counts and merge orders.
//   - UnionWithThreshold merges only when weight >= threshold.
//
// Complexity: Find/Union are amortized O(α(n)); SetCount and Merge are O(n).
package dss

import (
	"errors"
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/graphalgo/core"
	"github.com/katalvlaran/graphalgo/pool"
)

// ErrCapacityMismatch is returned by Merge when both structures do not cover
// the same id space.
var ErrCapacityMismatch = errors.New("dss: capacity mismatch")

// DisjointSetStruct is a union-find over ids [0, Capacity()).
// It is not safe for concurrent mutation; Find mutates (path compression).
type DisjointSetStruct struct {
	parent []int32
	size   []int32

	release func()
}

// New allocates a structure of n singleton sets.
func New(n int) (*DisjointSetStruct, error) {
	return NewWithPool(nil, n)
}

// NewWithPool allocates a structure of n singleton sets, reserving its two
// arrays against p's memory budget. Release returns the reservation.
func NewWithPool(p *pool.Pool, n int) (*DisjointSetStruct, error) {
	if n <= 0 {
		return nil, fmt.Errorf("dss: %w: got %d", core.ErrInvalidNodeCount, n)
	}
	parent, relParent, err := pool.Alloc[int32](p, n)
	if err != nil {
		return nil, fmt.Errorf("dss: parent array: %w", err)
	}
	size, relSize, err := pool.Alloc[int32](p, n)
	if err != nil {
		relParent()
		return nil, fmt.Errorf("dss: size array: %w", err)
	}
	d := &DisjointSetStruct{
		parent: parent,
		size:   size,
		release: func() {
			relParent()
			relSize()
		},
	}
	d.Reset()

	return d, nil
}

// Reset turns every id back into a singleton set.
func (d *DisjointSetStruct) Reset() {
	for i := range d.parent {
		d.parent[i] = int32(i)
		d.size[i] = 1
	}
}

// Release returns the memory reservation taken by NewWithPool. The structure
// must not be used afterwards.
func (d *DisjointSetStruct) Release() {
	if d.release != nil {
		d.release()
		d.release = nil
	}
	d.parent, d.size = nil, nil
}

// Capacity returns the size of the id space.
func (d *DisjointSetStruct) Capacity() int { return len(d.parent) }

// Find returns the root of id's set, repointing every node on the way
// directly to it.
func (d *DisjointSetStruct) Find(id int) int {
	root := int32(id)
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for cur := int32(id); d.parent[cur] != root; {
		next := d.parent[cur]
		d.parent[cur] = root
		cur = next
	}

	return int(root)
}

// Connected reports whether a and b are in the same set.
func (d *DisjointSetStruct) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Union merges the sets of a and b and reports whether a merge happened.
func (d *DisjointSetStruct) Union(a, b int) bool {
	ra, rb := int32(d.Find(a)), int32(d.Find(b))
	if ra == rb {
		return false
	}
	// larger set wins; on a tie the lower id wins
	if d.size[ra] < d.size[rb] || (d.size[ra] == d.size[rb] && rb < ra) {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]

	return true
}

// UnionWithThreshold merges the sets of a and b only when weight >= threshold.
func (d *DisjointSetStruct) UnionWithThreshold(a, b int, weight, threshold float64) bool {
	if weight < threshold {
		return false
	}

	return d.Union(a, b)
}

// SetSize returns the number of members of id's set.
func (d *DisjointSetStruct) SetSize(id int) int {
	return int(d.size[d.Find(id)])
}

// SetCount returns the number of distinct sets by counting self-roots.
// Complexity: O(n); call it once when reading results.
func (d *DisjointSetStruct) SetCount() int {
	count := 0
	for i, p := range d.parent {
		if int(p) == i {
			count++
		}
	}

	return count
}

// Merge folds other into d by replaying one Union per non-root id of other.
// Every successful union in other turned exactly one root into a non-root,
// so the number of replayed unions equals the unions other performed.
// Locating them scans every parent of other, so one call costs O(n) even
// when other performed few unions. other is left untouched.
func (d *DisjointSetStruct) Merge(other *DisjointSetStruct) error {
	if other.Capacity() != d.Capacity() {
		return fmt.Errorf("%w: %d vs %d", ErrCapacityMismatch, d.Capacity(), other.Capacity())
	}
	for i, p := range other.parent {
		if int(p) != i {
			d.Union(i, int(p))
		}
	}

	return nil
}

// All yields (nodeId, setId) for every id in ascending order, where setId is
// the root of the node's set. The sequence can be iterated any number of
// times; it reads the current state without recomputation.
func (d *DisjointSetStruct) All() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := range d.parent {
			if !yield(i, d.Find(i)) {
				return
			}
		}
	}
}

// Components groups ids by set root.
func (d *DisjointSetStruct) Components() map[int]*roaring.Bitmap {
	out := make(map[int]*roaring.Bitmap)
	for i := range d.parent {
		root := d.Find(i)
		bm, ok := out[root]
		if !ok {
			bm = roaring.New()
			out[root] = bm
		}
		bm.Add(uint32(i))
	}

	return out
}

// Members returns the ids sharing id's set.
func (d *DisjointSetStruct) Members(id int) *roaring.Bitmap {
	root := d.Find(id)
	bm := roaring.New()
	for i := range d.parent {
		if d.Find(i) == root {
			bm.Add(uint32(i))
		}
	}

	return bm
}

// LargestSet returns the root and size of the biggest set; ties resolve to
// the lower root id.
func (d *DisjointSetStruct) LargestSet() (root, size int) {
	root = -1
	for i, p := range d.parent {
		if int(p) != i {
			continue
		}
		if s := int(d.size[i]); s > size {
			root, size = i, s
		}
	}

	return root, size
}
