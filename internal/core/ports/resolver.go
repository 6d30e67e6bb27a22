package ports

import "context"

//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

// SonameResolver maps a declared dependency to the files that satisfy it.
type SonameResolver interface {
	// Resolve returns the canonical paths soname resolves to when declared by
	// the binary at referencing. A runpath hit is returned alone; otherwise
	// every match under searchRoot is returned, sorted. An empty result means
	// the dependency is missing.
	Resolve(ctx context.Context, soname, referencing, searchRoot string) ([]string, error)
}
