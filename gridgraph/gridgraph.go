package gridgraph

import (
	"github.com/katalvlaran/graphalgo/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := range cells {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether the cell at (x,y) is land.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.CellValues[y][x] >= gg.LandThreshold
}

// Index maps (x,y) to its node id y*Width + x.
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a node id back to (x,y).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// NodeCount implements core.View: one node per cell.
func (gg *GridGraph) NodeCount() int { return gg.Width * gg.Height }

// ForEachRelationship implements core.View. Relationships are symmetric, so
// Outgoing and Incoming yield the same neighbors and Both yields each twice,
// like an undirected CSR graph.
func (gg *GridGraph) ForEachRelationship(node int, dir core.Direction, fn core.RelationshipFunc) {
	if node < 0 || node >= gg.NodeCount() {
		return
	}
	passes := 1
	if dir == core.Both {
		passes = 2
	}
	x, y := gg.Coordinate(node)
	if !gg.IsLand(x, y) {
		return
	}
	for range passes {
		for _, d := range gg.neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if !gg.InBounds(nx, ny) || !gg.IsLand(nx, ny) {
				continue
			}
			w := float64(min(gg.CellValues[y][x], gg.CellValues[ny][nx]))
			if !fn(node, gg.Index(nx, ny), w) {
				return
			}
		}
	}
}

// ToGraph freezes the grid relationships into a CSR graph with the same
// node ids.
func (gg *GridGraph) ToGraph() (*core.Graph, error) {
	b := core.NewBuilder(gg.NodeCount())
	for u := range gg.NodeCount() {
		var err error
		gg.ForEachRelationship(u, core.Outgoing, func(_, v int, w float64) bool {
			err = b.AddWeightedEdge(u, v, w)
			return err == nil
		})
		if err != nil {
			return nil, err
		}
	}

	return b.Build()
}
