package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

const maxSymlinkHops = 40

// CanonicalRoot returns the absolute, symlink-free form of a search root.
func CanonicalRoot(searchRoot string) (string, error) {
	abs, err := filepath.Abs(searchRoot)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSearchRootUnavailable.Error()), "root", searchRoot)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSearchRootUnavailable.Error()), "root", searchRoot)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrSearchRootUnavailable.Error()), "root", searchRoot)
	}
	if !info.IsDir() {
		return "", zerr.With(domain.ErrSearchRootUnavailable, "root", searchRoot)
	}
	return resolved, nil
}

// Canonicalize resolves path to its canonical form inside the firmware image
// rooted at searchRoot. Symlinks are followed as the device would see them:
// absolute targets are re-rooted under searchRoot and ".." never climbs above
// it. A path that does not lie under searchRoot is resolved against the host
// file system instead.
func Canonicalize(searchRoot, path string) (string, error) {
	rawRoot, err := filepath.Abs(searchRoot)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCanonicalizeFailed.Error()), "path", path)
	}
	root, err := CanonicalRoot(searchRoot)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrCanonicalizeFailed.Error()), "path", path)
	}

	rel, ok := relativeTo(root, abs)
	if !ok {
		rel, ok = relativeTo(rawRoot, abs)
	}
	if !ok {
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			return resolved, nil
		}
		return abs, nil
	}

	return resolveInRoot(root, rel)
}

// Within reports whether path lies inside root.
func Within(root, path string) bool {
	_, ok := relativeTo(root, path)
	return ok
}

func relativeTo(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// resolveInRoot walks rel component by component below root, following
// symlinks with root as the file system root. Components that do not exist
// are kept verbatim.
func resolveInRoot(root, rel string) (string, error) {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	cur := root
	hops := 0

	for len(parts) > 0 {
		part := parts[0]
		parts = parts[1:]

		switch part {
		case "", ".":
			continue
		case "..":
			if cur != root {
				cur = filepath.Dir(cur)
			}
			continue
		}

		next := filepath.Join(cur, part)
		info, err := os.Lstat(next)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			cur = next
			continue
		}

		hops++
		if hops > maxSymlinkHops {
			return "", zerr.With(zerr.Wrap(errSymlinkLoop, domain.ErrCanonicalizeFailed.Error()), "path", next)
		}

		target, err := os.Readlink(next)
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrCanonicalizeFailed.Error()), "path", next)
		}
		if filepath.IsAbs(target) {
			cur = root
		}
		parts = append(strings.Split(filepath.ToSlash(target), "/"), parts...)
	}

	return cur, nil
}

var errSymlinkLoop = zerr.New("too many levels of symbolic links")
