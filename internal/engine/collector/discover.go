package collector

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/zerr"
)

// Modules walks testDir in lexical order and returns the dotted name of every
// Python module below it, package markers excluded. A missing directory yields
// no modules.
func Modules(testDir string) ([]string, error) {
	var modules []string

	err := filepath.WalkDir(testDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() == "__init__.py" || filepath.Ext(path) != ".py" {
			return nil
		}

		rel, err := filepath.Rel(testDir, path)
		if err != nil {
			return err
		}
		modules = append(modules, ModuleName(rel))
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrTestDiscoveryFailed, err.Error()), "dir", testDir)
	}

	return modules, nil
}

// ModuleName converts a path relative to the test directory into a dotted module name.
func ModuleName(rel string) string {
	return strings.ReplaceAll(strings.TrimSuffix(filepath.ToSlash(rel), ".py"), "/", ".")
}
