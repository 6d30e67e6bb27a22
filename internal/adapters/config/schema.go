package config

// File represents the structure of the romdeps.yaml configuration file.
type File struct {
	Version    string        `yaml:"version"`
	SearchRoot string        `yaml:"searchRoot"`
	Output     string        `yaml:"output"`
	Metadata   MetadataDTO   `yaml:"metadata"`
	Index      IndexDTO      `yaml:"index"`
	Decisions  DecisionsDTO  `yaml:"decisions"`
	References ReferencesDTO `yaml:"references"`
}

// MetadataDTO configures the ELF metadata reader.
type MetadataDTO struct {
	Tool      string `yaml:"tool"`
	Command   string `yaml:"command"`
	CacheSize *int   `yaml:"cacheSize"`
	Timeout   string `yaml:"timeout"`
}

// IndexDTO configures the reference sweep.
type IndexDTO struct {
	Parallelism int      `yaml:"parallelism"`
	IncludeAll  bool     `yaml:"includeAll"`
	Ignore      []string `yaml:"ignore"`
}

// DecisionsDTO configures how pending libraries are decided.
type DecisionsDTO struct {
	NonInteractive string   `yaml:"nonInteractive"`
	Approve        []string `yaml:"approve"`
	Reject         []string `yaml:"reject"`
}

// ReferencesDTO configures the reverse-dependency subtree.
type ReferencesDTO struct {
	Copy bool `yaml:"copy"`
}
