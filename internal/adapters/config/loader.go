// Package config provides the project file and package manager config loaders.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the project file looked up in the project directory.
const DefaultFilename = "vmb.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a FileConfigLoader reading DefaultFilename.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		Filename: DefaultFilename,
		logger:   logger,
	}
}

// Load reads the project file from projectDir. A missing file is not an error.
func (l *FileConfigLoader) Load(projectDir string) (*domain.ProjectConfig, error) {
	path := filepath.Join(projectDir, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no project file at " + path)
			return &domain.ProjectConfig{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file ProjectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	l.logger.Debug("loaded project file " + path)

	return &domain.ProjectConfig{
		BuildType:     file.BuildType,
		Threads:       file.Threads,
		ToolchainPath: file.ToolchainPath,
		BundlePath:    file.BundlePath,
		VcpkgConfig:   file.VcpkgConfig,
		XcodeProject:  file.XcodeProject,
		Doc:           file.Doc,
		Resource:      file.Resource,
		UnitTests:     file.UnitTests,
	}, nil
}
