package domain

import (
	"maps"
	"slices"
)

// MissingSet records sonames that resolved to zero instances together with
// every binary that declared them.
type MissingSet struct {
	refs map[string]map[string]struct{}
}

// NewMissingSet creates an empty MissingSet.
func NewMissingSet() *MissingSet {
	return &MissingSet{refs: make(map[string]map[string]struct{})}
}

// Add attributes the missing soname to the referencing binary.
func (m *MissingSet) Add(soname, referencedBy string) {
	set, ok := m.refs[soname]
	if !ok {
		set = make(map[string]struct{})
		m.refs[soname] = set
	}
	set[referencedBy] = struct{}{}
}

// Contains reports whether soname is missing.
func (m *MissingSet) Contains(soname string) bool {
	_, ok := m.refs[soname]
	return ok
}

// Len returns the number of distinct missing sonames.
func (m *MissingSet) Len() int {
	return len(m.refs)
}

// Names returns the missing sonames, sorted.
func (m *MissingSet) Names() []string {
	return slices.Sorted(maps.Keys(m.refs))
}

// ReferencedBy returns the binaries that declared soname, sorted.
func (m *MissingSet) ReferencedBy(soname string) []string {
	return slices.Sorted(maps.Keys(m.refs[soname]))
}

// Merge unions other into m.
func (m *MissingSet) Merge(other *MissingSet) {
	if other == nil {
		return
	}
	for soname, refs := range other.refs {
		for ref := range refs {
			m.Add(soname, ref)
		}
	}
}
