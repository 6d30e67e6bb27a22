package domain

import (
	"maps"
	"slices"
)

// ReferenceIndex maps a library name to the canonical paths of every binary
// that declares it. It is not safe for concurrent use; parallel sweeps merge
// into a single index from one goroutine.
type ReferenceIndex struct {
	refs map[InternedString]map[InternedString]struct{}
}

// NewReferenceIndex creates an empty index.
func NewReferenceIndex() *ReferenceIndex {
	return &ReferenceIndex{refs: make(map[InternedString]map[InternedString]struct{})}
}

// Add records that binary declares library.
func (r *ReferenceIndex) Add(library, binary string) {
	key := NewInternedString(library)
	set, ok := r.refs[key]
	if !ok {
		set = make(map[InternedString]struct{})
		r.refs[key] = set
	}
	set[NewInternedString(binary)] = struct{}{}
}

// AddDeclarations records every soname binary declares.
func (r *ReferenceIndex) AddDeclarations(binary string, needed []string) {
	for _, soname := range needed {
		r.Add(soname, binary)
	}
}

// Merge unions other into r.
func (r *ReferenceIndex) Merge(other *ReferenceIndex) {
	if other == nil {
		return
	}
	for lib, set := range other.refs {
		for bin := range set {
			r.Add(lib.String(), bin.String())
		}
	}
}

// ReferencesOf returns the binaries declaring library, sorted.
func (r *ReferenceIndex) ReferencesOf(library string) []string {
	set := r.refs[NewInternedString(library)]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for bin := range set {
		out = append(out, bin.String())
	}
	slices.Sort(out)
	return out
}

// Libraries returns every indexed library name, sorted.
func (r *ReferenceIndex) Libraries() []string {
	out := make([]string, 0, len(r.refs))
	for lib := range maps.Keys(r.refs) {
		out = append(out, lib.String())
	}
	slices.Sort(out)
	return out
}

// Len returns the number of indexed library names.
func (r *ReferenceIndex) Len() int {
	return len(r.refs)
}
