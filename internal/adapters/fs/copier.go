package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactCopier = (*Copier)(nil)

// Copier mirrors files into an output tree, preserving their position
// relative to the search root. Files outside the search root land under
// the _external subtree keyed by their absolute path.
type Copier struct {
	hasher *Hasher
}

// NewCopier creates a new Copier.
func NewCopier(hasher *Hasher) *Copier {
	return &Copier{hasher: hasher}
}

// Destination returns where src is mirrored inside destRoot.
func Destination(src, searchRoot, destRoot string) string {
	if root, err := CanonicalRoot(searchRoot); err == nil {
		if rel, ok := relativeTo(root, src); ok {
			return filepath.Join(destRoot, rel)
		}
	}
	trimmed := strings.TrimPrefix(filepath.Clean(src), filepath.VolumeName(src))
	trimmed = strings.TrimLeft(trimmed, string(filepath.Separator))
	return filepath.Join(destRoot, domain.ExternalDirName, trimmed)
}

// Copy mirrors src and returns the destination. An identical file already at
// the destination is left untouched.
func (c *Copier) Copy(src, searchRoot, destRoot string) (string, error) {
	dest := Destination(src, searchRoot, destRoot)

	if c.hasher.SameContent(src, dest) {
		return dest, nil
	}

	if err := copyFile(src, dest); err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", src), "dest", dest)
	}
	return dest, nil
}

// Remove deletes a mirrored file. A missing file is not an error.
func (c *Copier) Remove(dest string) error {
	if err := os.Remove(dest); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "path", dest)
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src) //nolint:gosec // src is a canonical path inside the search root
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only

	info, err := in.Stat()
	if err != nil {
		return err
	}

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := io.Copy(tmp, in); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, dest)
}
