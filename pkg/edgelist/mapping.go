package edgelist

import "slices"

// Mapping translates between original vertex ids and the dense ids of a
// remapped graph
type Mapping struct {
	dense    map[int]int
	original []int
}

func newMapping(edges [][2]int) *Mapping {
	original := make([]int, 0, 2*len(edges))
	for _, e := range edges {
		original = append(original, e[0], e[1])
	}
	slices.Sort(original)
	original = slices.Compact(original)

	dense := make(map[int]int, len(original))
	for i, id := range original {
		dense[id] = i
	}
	return &Mapping{dense: dense, original: original}
}

// Len returns the number of distinct vertices
func (m *Mapping) Len() int {
	return len(m.original)
}

// Dense returns the dense id of an original id
func (m *Mapping) Dense(original int) (int, bool) {
	id, ok := m.dense[original]
	return id, ok
}

// Original returns the input id of dense vertex v
func (m *Mapping) Original(v int) (int, bool) {
	if v < 0 || v >= len(m.original) {
		return 0, false
	}
	return m.original[v], true
}

// Originals translates a slice of dense ids back to original ids
func (m *Mapping) Originals(vertices []int) []int {
	out := make([]int, len(vertices))
	for i, v := range vertices {
		out[i], _ = m.Original(v)
	}
	return out
}
