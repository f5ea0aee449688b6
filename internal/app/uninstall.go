package app

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/engine/session"
	"go.trai.ch/zerr"
)

// ManifestFile is the list of installed files the build system writes into the build directory.
const ManifestFile = "install_manifest.txt"

// uninstall removes every file listed in the install manifest. Python sources also
// lose their compiled sibling.
func (a *App) uninstall(ctx context.Context, sess *session.Session, inv *domain.Invocation) error {
	manifest := filepath.Join(inv.BuildDir, ManifestFile)

	paths, err := readManifest(manifest)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrManifestReadFailed, err.Error()), "path", manifest)
	}

	for _, path := range paths {
		if err := sess.Execute(ctx, domain.NewCommand(inv.Root, "rm", "-f", path)); err != nil {
			return err
		}
		if strings.HasSuffix(path, ".py") {
			if err := sess.Execute(ctx, domain.NewCommand(inv.Root, "rm", "-f", path+"c")); err != nil {
				return err
			}
		}
	}
	return nil
}

func readManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // manifest lives in the resolved build directory
	if err != nil {
		return nil, err
	}

	var paths []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			paths = append(paths, line)
		}
	}
	return paths, scanner.Err()
}
