package domain

import "time"

// Metadata tool names.
const (
	MetadataToolNative  = "native"
	MetadataToolReadelf = "readelf"
	MetadataToolObjdump = "objdump"
)

const (
	// DefaultCacheSize bounds the number of cached metadata entries.
	DefaultCacheSize = 8192
	// DefaultToolTimeout bounds a single external metadata tool invocation.
	DefaultToolTimeout = 10 * time.Second
)

// Config is the resolved runtime configuration.
type Config struct {
	// Path is the file the configuration was loaded from, empty for defaults.
	Path       string
	SearchRoot string
	OutputRoot string
	Metadata   MetadataConfig
	Index      IndexConfig
	Decisions  DecisionConfig
	References ReferencesConfig
}

// MetadataConfig selects and tunes the ELF metadata reader.
type MetadataConfig struct {
	Tool      string
	Command   string
	CacheSize int
	Timeout   time.Duration
}

// IndexConfig tunes the reference sweep.
type IndexConfig struct {
	Parallelism int
	IncludeAll  bool
	Ignore      []string
}

// DecisionConfig controls how pending libraries are decided.
type DecisionConfig struct {
	NonInteractive Policy
	Approve        []string
	Reject         []string
}

// ReferencesConfig controls the reverse-dependency subtree.
type ReferencesConfig struct {
	Copy bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		SearchRoot: ".",
		OutputRoot: DefaultOutputDir,
		Metadata: MetadataConfig{
			Tool:      MetadataToolNative,
			CacheSize: DefaultCacheSize,
			Timeout:   DefaultToolTimeout,
		},
		Decisions: DecisionConfig{
			NonInteractive: PolicyDefer,
		},
	}
}
