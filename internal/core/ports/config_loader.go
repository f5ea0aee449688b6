package ports

import "go.trai.ch/vmb/internal/core/domain"

// ConfigLoader defines the interface for loading project defaults.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project config file from projectDir. A missing file yields an
	// empty config and no error.
	Load(projectDir string) (*domain.ProjectConfig, error)
}
