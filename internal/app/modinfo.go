package app

import (
	"context"
	"encoding/json"

	"go.trai.ch/zerr"
)

// moduleInfo prints the metadata of the repository at projectDir and its
// submodules as indented JSON keyed by module name.
func (a *App) moduleInfo(ctx context.Context, projectDir string) error {
	root, err := absProjectDir(projectDir)
	if err != nil {
		return err
	}

	modules, err := a.inspector.Inspect(ctx, root)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(modules, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode module info")
	}

	if _, err := a.stdout.Write(append(data, '\n')); err != nil {
		return zerr.Wrap(err, "failed to write module info")
	}
	return nil
}
