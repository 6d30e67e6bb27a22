package ports

import "go.trai.ch/romdeps/internal/core/domain"

//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLoader defines the interface for loading the configuration.
type ConfigLoader interface {
	// Load reads the configuration. An empty explicitPath discovers romdeps.yaml
	// by walking up from cwd; when none exists the defaults are returned.
	Load(cwd, explicitPath string) (domain.Config, error)
}
