package ports

import "go.trai.ch/vmb/internal/core/domain"

// PackageConfigLoader reads the package manager configuration.
//
//go:generate mockgen -source=package_config.go -destination=mocks/mock_package_config.go -package=mocks
type PackageConfigLoader interface {
	// Load reads the config at path and returns the section for the given platform key.
	Load(path, platform string) (*domain.PackageConfig, error)
}
