package ports

import "go.trai.ch/runall/internal/core/domain"

// ConfigLoader defines the interface for loading the run layout.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the override file at path on top of base.
	// An empty path returns base unchanged without touching the filesystem.
	Load(path string, base domain.Config) (domain.Config, error)
}
