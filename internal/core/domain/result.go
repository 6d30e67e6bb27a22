package domain

import (
	"maps"
	"slices"
)

// CopyFailure is an artifact that could not be mirrored into the output tree.
type CopyFailure struct {
	Path string
	Err  error
}

// WalkResult is the outcome of resolving one or more root binaries.
type WalkResult struct {
	// Roots are the canonical paths of the root binaries.
	Roots []string
	// Edges are the resolved dependency edges, including back-edges of cycles.
	Edges *EdgeSet
	// Rejected are declarations of rejected libraries; they are never followed.
	Rejected []SkippedEdge
	// Missing are sonames that resolved to zero instances.
	Missing *MissingSet
	// Instances maps each resolved soname to every canonical path it resolved to.
	Instances map[string][]string
	// Copied maps canonical source paths to their mirrored destination.
	Copied map[string]string
	// CopyFailures are per-file copy errors.
	CopyFailures []CopyFailure
	// Visited are the binaries expanded by the final pass.
	Visited []string
	// Unreadable are binaries whose metadata could not be read.
	Unreadable []string
	// Pending are library names still undecided when the loop stopped.
	Pending []string
	// SessionApproved are approvals that could not be persisted and hold for
	// this run only.
	SessionApproved []string
	// Passes is the number of traversal passes that ran.
	Passes int
}

// NewWalkResult creates an empty result.
func NewWalkResult() *WalkResult {
	return &WalkResult{
		Edges:     NewEdgeSet(),
		Missing:   NewMissingSet(),
		Instances: make(map[string][]string),
		Copied:    make(map[string]string),
	}
}

// AddInstance records that soname resolved to path.
func (r *WalkResult) AddInstance(soname, path string) {
	if slices.Contains(r.Instances[soname], path) {
		return
	}
	r.Instances[soname] = append(r.Instances[soname], path)
}

// Libraries returns every resolved soname, sorted.
func (r *WalkResult) Libraries() []string {
	return slices.Sorted(maps.Keys(r.Instances))
}

// CopiedPaths returns the canonical paths of every copied artifact, sorted.
func (r *WalkResult) CopiedPaths() []string {
	return slices.Sorted(maps.Keys(r.Copied))
}

// Merge unions other into r. Passes keeps the maximum.
func (r *WalkResult) Merge(other *WalkResult) {
	if other == nil {
		return
	}
	r.Roots = append(r.Roots, other.Roots...)
	r.Edges.Merge(other.Edges)
	r.Rejected = SortSkipped(append(r.Rejected, other.Rejected...))
	r.Missing.Merge(other.Missing)
	for soname, paths := range other.Instances {
		for _, p := range paths {
			r.AddInstance(soname, p)
		}
	}
	maps.Copy(r.Copied, other.Copied)
	r.CopyFailures = append(r.CopyFailures, other.CopyFailures...)
	r.Visited = mergeSorted(r.Visited, other.Visited)
	r.Unreadable = mergeSorted(r.Unreadable, other.Unreadable)
	r.Pending = mergeSorted(r.Pending, other.Pending)
	r.SessionApproved = mergeSorted(r.SessionApproved, other.SessionApproved)
	r.Passes = max(r.Passes, other.Passes)
}

func mergeSorted(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// IndexResult is the outcome of a corpus-wide reference sweep.
type IndexResult struct {
	Index *ReferenceIndex
	// Scanned counts candidate files submitted for extraction.
	Scanned int
	// Indexed counts files whose declarations entered the index.
	Indexed int
	// Dropped counts files whose metadata could not be read.
	Dropped int
}

// Projection is everything the output projector renders.
type Projection struct {
	SearchRoot string
	OutputRoot string
	Result     *WalkResult
	// Index is optional; without it the reference report lists no referrers.
	Index *ReferenceIndex
	// Approved restricts the reference report to approved libraries.
	Approved []string
	// CopyReferences mirrors referencing binaries into the references subtree.
	CopyReferences bool
}
