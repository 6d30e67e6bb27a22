// Package elf reads dynamic linking metadata from ELF binaries.
package elf

import (
	"context"
	"debug/elf"
	"errors"
	"io/fs"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/zerr"
)

// NativeReader implements ports.MetadataReader with debug/elf.
type NativeReader struct{}

// NewNativeReader creates a new NativeReader.
func NewNativeReader() *NativeReader {
	return &NativeReader{}
}

// Read parses the dynamic section of the file at path.
func (r *NativeReader) Read(ctx context.Context, path string) (domain.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return domain.Metadata{}, err
	}

	f, err := elf.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return domain.Metadata{}, zerr.With(zerr.Wrap(err, domain.ErrMetadataReadFailed.Error()), "path", path)
		}
		return domain.Metadata{}, zerr.With(zerr.Wrap(err, domain.ErrNotELF.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	needed, err := f.DynString(elf.DT_NEEDED)
	if err != nil {
		return domain.Metadata{}, zerr.With(zerr.Wrap(err, domain.ErrNotELF.Error()), "path", path)
	}
	// Lookups of optional tags only fail on the same malformed sections
	// DT_NEEDED already tripped over.
	runpath, _ := f.DynString(elf.DT_RUNPATH)
	rpath, _ := f.DynString(elf.DT_RPATH)
	soname, _ := f.DynString(elf.DT_SONAME)

	md := domain.Metadata{
		Needed:  dedupe(needed),
		Runpath: SearchHints(runpath, rpath),
		Class64: f.Class == elf.ELFCLASS64,
	}
	if len(soname) > 0 {
		md.Soname = soname[0]
	}
	return md, nil
}
