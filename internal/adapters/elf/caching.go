package elf

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	md  domain.Metadata
	err error
}

// CachingReader memoizes another reader by path. Concurrent reads of the
// same path share one underlying call. Failures are cached as well, so a
// corrupt file is parsed once per run.
type CachingReader struct {
	next  ports.MetadataReader
	cache *lru.Cache[string, cacheEntry]
	group singleflight.Group
}

// NewCachingReader wraps next with an LRU of the given size.
func NewCachingReader(next ports.MetadataReader, size int) (*CachingReader, error) {
	if size <= 0 {
		size = domain.DefaultCacheSize
	}
	cache, err := lru.New[string, cacheEntry](size)
	if err != nil {
		return nil, err
	}
	return &CachingReader{next: next, cache: cache}, nil
}

// Read returns the cached metadata for path, reading it on a miss.
func (r *CachingReader) Read(ctx context.Context, path string) (domain.Metadata, error) {
	if e, ok := r.cache.Get(path); ok {
		return e.md, e.err
	}

	v, _, _ := r.group.Do(path, func() (any, error) {
		if e, ok := r.cache.Get(path); ok {
			return e, nil
		}
		md, err := r.next.Read(ctx, path)
		e := cacheEntry{md: md, err: err}
		// A cancelled read says nothing about the file.
		if ctx.Err() == nil {
			r.cache.Add(path, e)
		}
		return e, nil
	})

	e, _ := v.(cacheEntry)
	return e.md, e.err
}

// Len returns the number of cached entries.
func (r *CachingReader) Len() int {
	return r.cache.Len()
}
