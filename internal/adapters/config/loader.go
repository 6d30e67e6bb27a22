// Package config provides the configuration loader for romdeps.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/romdeps/internal/core/domain"
	"go.trai.ch/romdeps/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the configuration for cwd. An explicit path must exist;
// otherwise romdeps.yaml is searched upward from cwd and defaults apply when
// none is found. Relative roots are resolved against the file's directory.
func (l *Loader) Load(cwd, explicitPath string) (domain.Config, error) {
	configPath := explicitPath
	if configPath != "" && !filepath.IsAbs(configPath) {
		configPath = filepath.Join(cwd, configPath)
	}
	if configPath == "" {
		configPath = findConfiguration(cwd)
	}

	if configPath == "" {
		cfg := domain.DefaultConfig()
		cfg.SearchRoot = resolveRoot(cwd, cfg.SearchRoot)
		cfg.OutputRoot = resolveRoot(cwd, cfg.OutputRoot)
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return cfg, nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	cfg, err := toConfig(filepath.Dir(configPath), &file)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}
	cfg.Path = configPath

	l.Logger.Debug("loaded configuration from " + configPath)
	return cfg, nil
}

func findConfiguration(cwd string) string {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

func toConfig(configDir string, file *File) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if file.SearchRoot != "" {
		cfg.SearchRoot = file.SearchRoot
	}
	cfg.SearchRoot = resolveRoot(configDir, cfg.SearchRoot)

	if file.Output != "" {
		cfg.OutputRoot = file.Output
	}
	cfg.OutputRoot = resolveRoot(configDir, cfg.OutputRoot)

	if file.Metadata.Tool != "" {
		cfg.Metadata.Tool = file.Metadata.Tool
	}
	cfg.Metadata.Command = file.Metadata.Command
	if file.Metadata.CacheSize != nil {
		cfg.Metadata.CacheSize = *file.Metadata.CacheSize
	}
	if file.Metadata.Timeout != "" {
		d, err := time.ParseDuration(file.Metadata.Timeout)
		if err != nil {
			return cfg, invalid(err, "metadata.timeout", file.Metadata.Timeout)
		}
		cfg.Metadata.Timeout = d
	}

	cfg.Index = domain.IndexConfig{
		Parallelism: file.Index.Parallelism,
		IncludeAll:  file.Index.IncludeAll,
		Ignore:      file.Index.Ignore,
	}

	policy, err := domain.ParsePolicy(file.Decisions.NonInteractive)
	if err != nil {
		return cfg, invalid(err, "decisions.nonInteractive", file.Decisions.NonInteractive)
	}
	cfg.Decisions = domain.DecisionConfig{
		NonInteractive: policy,
		Approve:        file.Decisions.Approve,
		Reject:         file.Decisions.Reject,
	}

	cfg.References.Copy = file.References.Copy

	return cfg, Validate(cfg)
}

// Validate checks the value ranges of cfg.
func Validate(cfg domain.Config) error {
	switch cfg.Metadata.Tool {
	case domain.MetadataToolNative, domain.MetadataToolReadelf, domain.MetadataToolObjdump:
	default:
		return invalid(domain.ErrUnknownMetadataTool, "metadata.tool", cfg.Metadata.Tool)
	}
	if cfg.Metadata.CacheSize < 0 {
		return invalid(errors.New("must not be negative"), "metadata.cacheSize", cfg.Metadata.CacheSize)
	}
	if cfg.Metadata.Timeout <= 0 {
		return invalid(errors.New("must be positive"), "metadata.timeout", cfg.Metadata.Timeout)
	}
	if cfg.Index.Parallelism < 0 {
		return invalid(errors.New("must not be negative"), "index.parallelism", cfg.Index.Parallelism)
	}

	patterns := map[string][]string{
		"index.ignore":      cfg.Index.Ignore,
		"decisions.approve": cfg.Decisions.Approve,
		"decisions.reject":  cfg.Decisions.Reject,
	}
	for field, list := range patterns {
		for _, p := range list {
			if _, err := filepath.Match(p, ""); err != nil {
				return invalid(zerr.Wrap(err, domain.ErrInvalidPattern.Error()), field, p)
			}
		}
	}
	return nil
}

func invalid(err error, field string, value any) error {
	wrapped := zerr.Wrap(err, domain.ErrInvalidConfig.Error())
	wrapped = zerr.With(wrapped, "field", field)
	return zerr.With(wrapped, "value", value)
}

func resolveRoot(baseDir, configured string) string {
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(baseDir, configured))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is chosen by the operator
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
