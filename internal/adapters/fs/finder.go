package fs

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/romdeps/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

var _ ports.FileFinder = (*Finder)(nil)

type nameIndex map[string][]string

// Finder implements ports.FileFinder. The first lookup under a search root
// walks it once and indexes every file by base name; later lookups are map
// reads. Symlinks are indexed under their own name and resolve to their
// canonical target, matching how a loader opens a soname.
type Finder struct {
	walker *Walker

	group   singleflight.Group
	mu      sync.RWMutex
	indexes map[string]nameIndex
}

// NewFinder creates a new Finder.
func NewFinder(walker *Walker) *Finder {
	return &Finder{
		walker:  walker,
		indexes: make(map[string]nameIndex),
	}
}

// Canonicalize returns the canonical form of path inside searchRoot.
func (f *Finder) Canonicalize(searchRoot, path string) (string, error) {
	return Canonicalize(searchRoot, path)
}

// FindByName returns every regular file named name under searchRoot.
func (f *Finder) FindByName(ctx context.Context, searchRoot, name string) ([]string, error) {
	root, err := CanonicalRoot(searchRoot)
	if err != nil {
		return nil, err
	}

	idx, err := f.index(ctx, root)
	if err != nil {
		return nil, err
	}
	return slices.Clone(idx[name]), nil
}

func (f *Finder) index(ctx context.Context, root string) (nameIndex, error) {
	f.mu.RLock()
	idx, ok := f.indexes[root]
	f.mu.RUnlock()
	if ok {
		return idx, nil
	}

	v, err, _ := f.group.Do(root, func() (any, error) {
		f.mu.RLock()
		idx, ok := f.indexes[root]
		f.mu.RUnlock()
		if ok {
			return idx, nil
		}

		idx, err := f.build(ctx, root)
		if err != nil {
			return nil, err
		}

		f.mu.Lock()
		f.indexes[root] = idx
		f.mu.Unlock()
		return idx, nil
	})
	if err != nil {
		return nil, err
	}
	idx, _ = v.(nameIndex)
	return idx, nil
}

func (f *Finder) build(ctx context.Context, root string) (nameIndex, error) {
	sets := make(map[string]map[string]struct{})

	for path := range f.walker.WalkFiles(root, nil) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, ok := relativeTo(root, path)
		if !ok {
			continue
		}
		canonical, err := resolveInRoot(root, rel)
		if err != nil {
			continue
		}
		info, err := os.Stat(canonical)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		name := filepath.Base(path)
		set, ok := sets[name]
		if !ok {
			set = make(map[string]struct{})
			sets[name] = set
		}
		set[canonical] = struct{}{}
	}

	idx := make(nameIndex, len(sets))
	for name, set := range sets {
		paths := make([]string, 0, len(set))
		for p := range set {
			paths = append(paths, p)
		}
		slices.Sort(paths)
		idx[name] = paths
	}
	return idx, nil
}
