package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/romdeps/internal/adapters/fs"
	"go.trai.ch/romdeps/internal/core/domain"
)

func TestCopier_Copy(t *testing.T) {
	root := canonicalTempDir(t)
	out := canonicalTempDir(t)
	src := filepath.Join(root, "vendor", "lib64", "libcamera.so")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0o750))
	require.NoError(t, os.WriteFile(src, []byte("camera"), 0o755)) //nolint:gosec // executable fixture

	copier := fs.NewCopier(fs.NewHasher())

	dest, err := copier.Copy(src, root, out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "vendor", "lib64", "libcamera.so"), dest)

	data, err := os.ReadFile(dest) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "camera", string(data))

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestCopier_Copy_SkipsIdentical(t *testing.T) {
	root := canonicalTempDir(t)
	out := canonicalTempDir(t)
	src := filepath.Join(root, "libc.so")
	require.NoError(t, os.WriteFile(src, []byte("libc"), 0o600))

	copier := fs.NewCopier(fs.NewHasher())
	dest, err := copier.Copy(src, root, out)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(dest, past, past))

	_, err = copier.Copy(src, root, out)
	require.NoError(t, err)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "identical file must not be rewritten")

	require.NoError(t, os.WriteFile(src, []byte("libc v2"), 0o600))
	_, err = copier.Copy(src, root, out)
	require.NoError(t, err)
	data, err := os.ReadFile(dest) //nolint:gosec // test path
	require.NoError(t, err)
	assert.Equal(t, "libc v2", string(data))
}

func TestCopier_Copy_OutsideRoot(t *testing.T) {
	root := canonicalTempDir(t)
	other := canonicalTempDir(t)
	out := canonicalTempDir(t)
	src := filepath.Join(other, "app")
	require.NoError(t, os.WriteFile(src, []byte("app"), 0o600))

	dest, err := fs.NewCopier(fs.NewHasher()).Copy(src, root, out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, domain.ExternalDirName, other[1:], "app"), dest)
}

func TestCopier_Copy_Failure(t *testing.T) {
	root := canonicalTempDir(t)
	out := canonicalTempDir(t)

	_, err := fs.NewCopier(fs.NewHasher()).Copy(filepath.Join(root, "missing.so"), root, out)
	require.ErrorContains(t, err, domain.ErrCopyFailed.Error())
}

func TestCopier_Remove(t *testing.T) {
	out := canonicalTempDir(t)
	dest := filepath.Join(out, "libx.so")
	require.NoError(t, os.WriteFile(dest, []byte("x"), 0o600))

	copier := fs.NewCopier(fs.NewHasher())
	require.NoError(t, copier.Remove(dest))
	require.NoError(t, copier.Remove(dest))

	_, err := os.Stat(dest)
	assert.True(t, os.IsNotExist(err))
}

func TestHasher_Digest(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("hello world"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("hello world"), 0o600))

	h := fs.NewHasher()
	da, err := h.Digest(a)
	require.NoError(t, err)
	assert.Len(t, da, 16)

	db, err := h.Digest(b)
	require.NoError(t, err)
	assert.Equal(t, da, db)
	assert.True(t, h.SameContent(a, b))
	assert.False(t, h.SameContent(a, filepath.Join(dir, "c")))

	_, err = h.Digest(filepath.Join(dir, "c"))
	require.Error(t, err)
}
