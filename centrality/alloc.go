package centrality

import (
	"fmt"

	"github.com/katalvlaran/graphalgo/pool"
)

// allocations collects the budget reservations of one computation so every
// exit path can hand them back with a single release.
type allocations struct {
	pool     *pool.Pool
	releases []func()
}

// allocate returns a zeroed slice of n elements charged to a.pool.
func allocate[T any](a *allocations, n int) ([]T, error) {
	buf, rel, err := pool.Alloc[T](a.pool, n)
	if err != nil {
		return nil, fmt.Errorf("centrality: working set: %w", err)
	}
	a.releases = append(a.releases, rel)

	return buf, nil
}

func (a *allocations) release() {
	for _, r := range a.releases {
		r()
	}
	a.releases = nil
}
