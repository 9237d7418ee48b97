package algorithms

import "slices"

// NewLabeling returns a labeling of n vertices, all Unlabeled.
func NewLabeling(n int) Labeling {
	labels := make(Labeling, n)
	for i := range labels {
		labels[i] = Unlabeled
	}
	return labels
}

// Sizes returns the number of vertices per community id.
func (l Labeling) Sizes() map[int]int {
	sizes := make(map[int]int)
	for _, c := range l {
		if c >= 0 {
			sizes[c]++
		}
	}
	return sizes
}

// CommunityCount returns the number of distinct non-empty communities.
func (l Labeling) CommunityCount() int {
	return len(l.Sizes())
}

// Labeled returns how many vertices carry a community id.
func (l Labeling) Labeled() int {
	n := 0
	for _, c := range l {
		if c >= 0 {
			n++
		}
	}
	return n
}

// Compact renumbers community ids densely from 0 in order of first
// appearance by vertex id. Unlabeled vertices stay Unlabeled.
func (l Labeling) Compact() Labeling {
	next := 0
	ids := make(map[int]int)
	out := make(Labeling, len(l))
	for v, c := range l {
		if c < 0 {
			out[v] = Unlabeled
			continue
		}
		id, ok := ids[c]
		if !ok {
			id = next
			ids[c] = id
			next++
		}
		out[v] = id
	}
	return out
}

// Clone returns an independent copy of the labeling.
func (l Labeling) Clone() Labeling {
	return slices.Clone(l)
}
