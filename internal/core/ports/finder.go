package ports

import (
	"context"
	"iter"
)

//go:generate mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks

// FileFinder locates files inside a search root.
type FileFinder interface {
	// Canonicalize returns the absolute, symlink-free form of path.
	// Symlinks that escape searchRoot are not followed.
	Canonicalize(searchRoot, path string) (string, error)

	// FindByName returns the canonical path of every regular file named name
	// under searchRoot, sorted and deduplicated.
	FindByName(ctx context.Context, searchRoot, name string) ([]string, error)
}

// CorpusWalker enumerates every file of a search root.
type CorpusWalker interface {
	// WalkFiles yields the paths of all regular files under root, skipping
	// VCS directories and any entry whose name matches one of ignores.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}
