package ports

import (
	"context"

	"go.trai.ch/romdeps/internal/core/domain"
)

//go:generate mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks

// MetadataReader extracts the dynamic linking metadata of a binary.
type MetadataReader interface {
	// Read returns the declarations and search hints of the file at path.
	// Non-ELF or truncated input yields domain.ErrNotELF; callers treat any
	// error as a binary without declarations.
	Read(ctx context.Context, path string) (domain.Metadata, error)
}

// MetadataReaderFactory builds a MetadataReader from configuration.
type MetadataReaderFactory interface {
	New(cfg domain.MetadataConfig) (MetadataReader, error)
}
