package elf

import (
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.MetadataReaderFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New returns a cached reader for the configured tool.
func (f *Factory) New(cfg domain.MetadataConfig) (ports.MetadataReader, error) {
	var base ports.MetadataReader
	switch cfg.Tool {
	case "", domain.MetadataToolNative:
		base = NewNativeReader()
	case domain.MetadataToolReadelf, domain.MetadataToolObjdump:
		r, err := NewCommandReader(cfg.Tool, cfg.Command, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		base = r
	default:
		return nil, zerr.With(domain.ErrUnknownMetadataTool, "tool", cfg.Tool)
	}
	cached, err := NewCachingReader(base, cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return cached, nil
}
