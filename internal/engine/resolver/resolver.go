// Package resolver maps declared sonames to files inside a firmware image
// using dynamic loader precedence.
package resolver

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
)

var _ ports.SonameResolver = (*Resolver)(nil)

// Resolver resolves runpath hints first and falls back to an exhaustive
// search of the image by file name.
type Resolver struct {
	reader ports.MetadataReader
	finder ports.FileFinder
}

// New creates a Resolver.
func New(reader ports.MetadataReader, finder ports.FileFinder) *Resolver {
	return &Resolver{reader: reader, finder: finder}
}

// Resolve implements ports.SonameResolver.
func (r *Resolver) Resolve(ctx context.Context, soname, referencing, searchRoot string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.Contains(soname, "/") {
		return r.resolvePath(soname, referencing, searchRoot), nil
	}

	md, err := r.reader.Read(ctx, referencing)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		md = domain.Metadata{}
	}

	origin := filepath.Dir(referencing)
	for _, hint := range md.Runpath {
		dir := ExpandHint(hint, origin, searchRoot, md.Class64)
		if hit, ok := r.regularFile(searchRoot, filepath.Join(dir, soname)); ok {
			return []string{hit}, nil
		}
	}

	return r.finder.FindByName(ctx, searchRoot, soname)
}

// resolvePath handles declarations that name a path rather than a soname.
// Such declarations never fall back to a search.
func (r *Resolver) resolvePath(declared, referencing, searchRoot string) []string {
	var candidate string
	if filepath.IsAbs(declared) {
		candidate = imageRooted(searchRoot, declared)
	} else {
		candidate = ExpandHint("$ORIGIN/"+declared, filepath.Dir(referencing), searchRoot, false)
	}

	if hit, ok := r.regularFile(searchRoot, candidate); ok {
		return []string{hit}
	}
	return nil
}

func (r *Resolver) regularFile(searchRoot, candidate string) (string, bool) {
	canonical, err := r.finder.Canonicalize(searchRoot, candidate)
	if err != nil {
		return "", false
	}
	info, err := os.Stat(canonical)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return canonical, true
}

// ExpandHint turns one runpath entry into an absolute directory inside
// searchRoot. $ORIGIN is replaced by origin and $LIB by lib or lib64.
// Absolute entries are rooted in the image, relative ones are taken from
// searchRoot, and ".." never climbs above searchRoot. Unknown tokens are kept
// verbatim.
func ExpandHint(hint, origin, searchRoot string, class64 bool) string {
	lib := "lib"
	if class64 {
		lib = "lib64"
	}

	fromOrigin := strings.Contains(hint, "$ORIGIN") || strings.Contains(hint, "${ORIGIN}")
	if fromOrigin && within(searchRoot, origin) {
		rel, _ := filepath.Rel(searchRoot, origin)
		origin = "/" + filepath.ToSlash(rel)
	}

	dir := strings.NewReplacer(
		"${ORIGIN}", origin,
		"$ORIGIN", origin,
		"${LIB}", lib,
		"$LIB", lib,
	).Replace(hint)

	if !fromOrigin && filepath.IsAbs(dir) && within(searchRoot, dir) {
		rel, _ := filepath.Rel(searchRoot, dir)
		dir = rel
	}
	return clampToRoot(searchRoot, dir)
}

func imageRooted(searchRoot, path string) string {
	if within(searchRoot, path) {
		return filepath.Clean(path)
	}
	return clampToRoot(searchRoot, path)
}

// clampToRoot joins path below root, dropping ".." components that would
// leave it.
func clampToRoot(root, path string) string {
	kept := []string{root}
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		switch part {
		case "", ".":
		case "..":
			if len(kept) > 1 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, part)
		}
	}
	return filepath.Join(kept...)
}

func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
