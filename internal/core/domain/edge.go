package domain

import (
	"cmp"
	"slices"
)

// Edge is a resolved dependency between two canonical paths.
type Edge struct {
	From string
	To   string
}

// SkippedEdge is a declaration that was not followed, either because the
// library is rejected or because the soname could not be resolved.
type SkippedEdge struct {
	From   string
	Soname string
}

// EdgeSet is an insertion-ordered set of edges.
type EdgeSet struct {
	order []Edge
	seen  map[Edge]struct{}
}

// NewEdgeSet creates an empty EdgeSet.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{seen: make(map[Edge]struct{})}
}

// Add inserts e and reports whether it was new.
func (s *EdgeSet) Add(e Edge) bool {
	if _, ok := s.seen[e]; ok {
		return false
	}
	s.seen[e] = struct{}{}
	s.order = append(s.order, e)
	return true
}

// Contains reports whether e is in the set.
func (s *EdgeSet) Contains(e Edge) bool {
	_, ok := s.seen[e]
	return ok
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int {
	return len(s.order)
}

// Edges returns the edges in insertion order.
func (s *EdgeSet) Edges() []Edge {
	return slices.Clone(s.order)
}

// Sorted returns the edges ordered by source, then target.
func (s *EdgeSet) Sorted() []Edge {
	out := s.Edges()
	slices.SortFunc(out, compareEdges)
	return out
}

// Merge adds every edge of other.
func (s *EdgeSet) Merge(other *EdgeSet) {
	if other == nil {
		return
	}
	for _, e := range other.order {
		s.Add(e)
	}
}

func compareEdges(a, b Edge) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}

// SortSkipped orders skipped edges by source, then soname, and drops duplicates.
func SortSkipped(edges []SkippedEdge) []SkippedEdge {
	out := slices.Clone(edges)
	slices.SortFunc(out, func(a, b SkippedEdge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		return cmp.Compare(a.Soname, b.Soname)
	})
	return slices.Compact(out)
}
