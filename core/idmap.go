package core

import "fmt"

// IDMap assigns dense node ids to external int64 identifiers in first-seen
// order. It is the bridge between a store's identifiers and the [0, n) id
// space every analytic works on.
type IDMap struct {
	toDense    map[int64]int
	toOriginal []int64
}

// NewIDMap returns an empty IDMap with room for hint entries.
func NewIDMap(hint int) *IDMap {
	if hint < 0 {
		hint = 0
	}

	return &IDMap{
		toDense:    make(map[int64]int, hint),
		toOriginal: make([]int64, 0, hint),
	}
}

// Add returns the dense id of original, assigning the next free one if it is new.
func (m *IDMap) Add(original int64) int {
	if id, ok := m.toDense[original]; ok {
		return id
	}
	id := len(m.toOriginal)
	m.toDense[original] = id
	m.toOriginal = append(m.toOriginal, original)

	return id
}

// ToDense looks up the dense id of original.
func (m *IDMap) ToDense(original int64) (int, bool) {
	id, ok := m.toDense[original]
	return id, ok
}

// ToOriginal returns the external id of a dense node id.
func (m *IDMap) ToOriginal(id int) (int64, error) {
	if err := CheckNode(id, len(m.toOriginal)); err != nil {
		return 0, fmt.Errorf("idmap: %w", err)
	}

	return m.toOriginal[id], nil
}

// Len returns the number of mapped ids.
func (m *IDMap) Len() int { return len(m.toOriginal) }
