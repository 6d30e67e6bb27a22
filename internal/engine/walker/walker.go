// Package walker resolves the transitive dependencies of root binaries,
// mirrors every resolved artifact and records the dependency graph.
package walker

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/romdeps/internal/engine/gate"
	"go.trai.ch/zerr"
)

// Deps are the collaborators of a Walker.
type Deps struct {
	Reader   ports.MetadataReader
	Resolver ports.SonameResolver
	Finder   ports.FileFinder
	Copier   ports.ArtifactCopier
	Gate     *gate.Gate
	Decider  ports.DecisionProvider
	Tracer   ports.Tracer
	Logger   ports.Logger
}

// Walker runs the traversal passes and the decision rounds between them.
// Passes are sequential; a Walker must not run two walks at once.
type Walker struct {
	Deps
}

// New creates a Walker.
func New(deps Deps) *Walker {
	return &Walker{Deps: deps}
}

// Layout names the directories of a walk.
type Layout struct {
	SearchRoot string
	OutputRoot string
}

// WalkAll resolves every root in order against one approval state and
// merges the results.
func (w *Walker) WalkAll(ctx context.Context, roots []string, l Layout) (*domain.WalkResult, error) {
	if len(roots) == 0 {
		return nil, domain.ErrNoBinariesSpecified
	}

	merged := domain.NewWalkResult()
	for _, root := range roots {
		res, err := w.Walk(ctx, root, l)
		if err != nil {
			return nil, err
		}
		merged.Merge(res)
	}
	return merged, nil
}

// Walk resolves root until a pass discovers no undecided library, or until
// a decision round decides nothing. It returns the result of the last pass.
func (w *Walker) Walk(ctx context.Context, root string, l Layout) (*domain.WalkResult, error) {
	rootPath, err := w.Finder.Canonicalize(l.SearchRoot, root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRootBinaryNotFound.Error()), "binary", root)
	}
	if info, statErr := os.Stat(rootPath); statErr != nil || !info.Mode().IsRegular() {
		return nil, zerr.With(domain.ErrRootBinaryNotFound, "binary", root)
	}

	var previous *domain.WalkResult
	for n := 1; ; n++ {
		w.Gate.ResetPending()

		res, err := w.pass(ctx, n, rootPath, l)
		if err != nil {
			return nil, err
		}
		res.Passes = n
		if previous != nil {
			w.removeStale(previous, res)
		}

		pending := w.Gate.Pending()
		if len(pending) == 0 {
			return res, nil
		}

		outcome, err := w.Gate.Settle(ctx, w.Decider)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, zerr.Wrap(err, domain.ErrDecisionFailed.Error())
		}
		for _, name := range outcome.Unpersisted {
			w.Logger.Warn(fmt.Sprintf("decision for %q holds for this run only", name))
		}

		if outcome.Applied() == 0 {
			res.Pending = pending
			w.Logger.Warn(fmt.Sprintf("%d libraries remain undecided and were not expanded", len(pending)))
			return res, nil
		}
		w.Logger.Info(fmt.Sprintf("approved %d, rejected %d; re-resolving",
			len(outcome.Approved), len(outcome.Rejected)))
		previous = res
	}
}

// removeStale deletes artifacts mirrored by an earlier pass that the latest
// pass no longer copies, which happens to libraries rejected in between.
// Artifacts whose copy failed in the latest pass keep their earlier mirror.
func (w *Walker) removeStale(previous, latest *domain.WalkResult) {
	failed := make(map[string]struct{}, len(latest.CopyFailures))
	for _, f := range latest.CopyFailures {
		failed[f.Path] = struct{}{}
	}
	for _, src := range previous.CopiedPaths() {
		if _, ok := latest.Copied[src]; ok {
			continue
		}
		if _, ok := failed[src]; ok {
			continue
		}
		if err := w.Copier.Remove(previous.Copied[src]); err != nil {
			w.Logger.Warn(fmt.Sprintf("failed to remove %s: %v", previous.Copied[src], err))
		}
	}
}

// passState is owned by one traversal pass.
type passState struct {
	layout  Layout
	result  *domain.WalkResult
	visited map[string]struct{}
	failed  map[string]struct{}
}

func (w *Walker) pass(ctx context.Context, n int, root string, l Layout) (*domain.WalkResult, error) {
	ctx, span := w.Tracer.Start(ctx, "walker.pass",
		ports.WithAttribute("pass", n),
		ports.WithAttribute("root", root),
	)
	defer span.End()

	st := &passState{
		layout:  l,
		result:  domain.NewWalkResult(),
		visited: make(map[string]struct{}),
		failed:  make(map[string]struct{}),
	}
	st.result.Roots = []string{root}

	w.copy(st, root)
	if err := w.visit(ctx, st, root); err != nil {
		span.RecordError(err)
		return nil, err
	}

	res := st.result
	res.Visited = slices.Sorted(maps.Keys(st.visited))
	res.Rejected = domain.SortSkipped(res.Rejected)
	slices.Sort(res.Unreadable)
	res.SessionApproved = w.Gate.SessionApproved()

	pending := w.Gate.Pending()
	span.SetAttribute("visited", len(st.visited))
	span.SetAttribute("edges", res.Edges.Len())
	span.SetAttribute("pending", len(pending))
	w.Logger.Debug(fmt.Sprintf("pass %d: visited %d binaries, %d edges, %d missing, %d pending",
		n, len(st.visited), res.Edges.Len(), res.Missing.Len(), len(pending)))

	return res, nil
}

func (w *Walker) visit(ctx context.Context, st *passState, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, ok := st.visited[path]; ok {
		return nil
	}
	st.visited[path] = struct{}{}

	md, err := w.Reader.Read(ctx, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		w.Logger.Debug(fmt.Sprintf("no dynamic metadata in %s: %v", path, err))
		st.result.Unreadable = append(st.result.Unreadable, path)
		return nil
	}

	for _, soname := range md.Needed {
		if w.Gate.Lookup(soname) == domain.DecisionRejected {
			st.result.Rejected = append(st.result.Rejected, domain.SkippedEdge{From: path, Soname: soname})
			continue
		}

		instances, err := w.Resolver.Resolve(ctx, soname, path, st.layout.SearchRoot)
		if err != nil {
			return err
		}
		if len(instances) == 0 {
			st.result.Missing.Add(soname, path)
			continue
		}

		decision := w.Gate.Decide(soname)

		for _, inst := range instances {
			st.result.Edges.Add(domain.Edge{From: path, To: inst})
			st.result.AddInstance(soname, inst)
			w.copy(st, inst)

			if decision != domain.DecisionApproved {
				continue
			}
			if err := w.visit(ctx, st, inst); err != nil {
				return err
			}
		}
	}
	return nil
}

// copy mirrors src once per pass. Failures are recorded and never retried
// within the pass.
func (w *Walker) copy(st *passState, src string) {
	if _, ok := st.result.Copied[src]; ok {
		return
	}
	if _, ok := st.failed[src]; ok {
		return
	}

	dest, err := w.Copier.Copy(src, st.layout.SearchRoot, st.layout.OutputRoot)
	if err != nil {
		st.failed[src] = struct{}{}
		st.result.CopyFailures = append(st.result.CopyFailures, domain.CopyFailure{Path: src, Err: err})
		w.Logger.Warn(fmt.Sprintf("failed to copy %s: %v", src, err))
		return
	}
	st.result.Copied[src] = dest
}
