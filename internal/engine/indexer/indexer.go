// Package indexer sweeps a whole firmware image and inverts every binary's
// NEEDED declarations into a reference index.
package indexer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// resultBuffer bounds the number of extractions waiting for the reducer.
const resultBuffer = 256

// Deps are the collaborators of an Indexer.
type Deps struct {
	Reader ports.MetadataReader
	Walker ports.CorpusWalker
	Finder ports.FileFinder
	Tracer ports.Tracer
	Logger ports.Logger
}

// Indexer builds reference indexes.
type Indexer struct {
	Deps
}

// New creates an Indexer.
func New(deps Deps) *Indexer {
	return &Indexer{Deps: deps}
}

// Options tune a sweep.
type Options struct {
	// Parallelism bounds concurrent extractions; zero means one per CPU.
	Parallelism int
	// IncludeAll submits every regular file instead of binary-looking ones.
	IncludeAll bool
	// Ignore are base-name globs excluded from the sweep.
	Ignore []string
}

// OptionsFrom converts the index section of the configuration.
func OptionsFrom(cfg domain.IndexConfig) Options {
	return Options{
		Parallelism: cfg.Parallelism,
		IncludeAll:  cfg.IncludeAll,
		Ignore:      cfg.Ignore,
	}
}

type extraction struct {
	path   string
	needed []string
	err    error
}

// Build sweeps searchRoot. Files whose metadata cannot be read are dropped
// from the index; only cancellation or an unusable search root fail the sweep.
func (ix *Indexer) Build(ctx context.Context, searchRoot string, opts Options) (*domain.IndexResult, error) {
	if info, err := os.Stat(searchRoot); err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrSearchRootUnavailable, "root", searchRoot)
	}

	ctx, span := ix.Tracer.Start(ctx, "indexer.sweep", ports.WithAttribute("root", searchRoot))
	defer span.End()

	limit := opts.Parallelism
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	res := &domain.IndexResult{Index: domain.NewReferenceIndex()}
	results := make(chan extraction, resultBuffer)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		reduce(res, results)
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	seen := make(map[string]struct{})
	for path := range ix.Walker.WalkFiles(searchRoot, opts.Ignore) {
		if gctx.Err() != nil {
			break
		}

		canonical, ok := ix.candidate(searchRoot, path, opts.IncludeAll)
		if !ok {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}

		g.Go(func() error {
			md, err := ix.Reader.Read(gctx, canonical)
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			results <- extraction{path: canonical, needed: md.Needed, err: err}
			return nil
		})
	}

	err := g.Wait()
	close(results)
	wg.Wait()

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, domain.ErrIndexFailed.Error())
	}

	span.SetAttribute("scanned", res.Scanned)
	span.SetAttribute("indexed", res.Indexed)
	span.SetAttribute("dropped", res.Dropped)
	span.SetAttribute("libraries", res.Index.Len())
	ix.Logger.Debug(fmt.Sprintf("indexed %d of %d candidates, %d dropped, %d libraries referenced",
		res.Indexed, res.Scanned, res.Dropped, res.Index.Len()))

	return res, nil
}

// reduce is the only writer of res.
func reduce(res *domain.IndexResult, results <-chan extraction) {
	for r := range results {
		res.Scanned++
		if r.err != nil {
			res.Dropped++
			continue
		}
		res.Indexed++
		res.Index.AddDeclarations(r.path, r.needed)
	}
}

// candidate canonicalizes path and reports whether it should be extracted.
func (ix *Indexer) candidate(searchRoot, path string, includeAll bool) (string, bool) {
	canonical, err := ix.Finder.Canonicalize(searchRoot, path)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(canonical)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	if includeAll {
		return canonical, true
	}
	return canonical, Candidate(canonical, info.Mode())
}

var binaryDirs = map[string]struct{}{
	"bin":   {},
	"xbin":  {},
	"sbin":  {},
	"lib":   {},
	"lib64": {},
	"hw":    {},
}

// Candidate reports whether a regular file looks like an executable or a
// shared object.
func Candidate(path string, mode os.FileMode) bool {
	name := filepath.Base(path)
	if strings.HasSuffix(name, ".so") || strings.Contains(name, ".so.") {
		return true
	}
	if mode.Perm()&0o111 != 0 {
		return true
	}
	_, ok := binaryDirs[filepath.Base(filepath.Dir(path))]
	return ok
}
