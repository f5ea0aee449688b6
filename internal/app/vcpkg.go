package app

import (
	"context"
	"path/filepath"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/engine/session"
	"go.trai.ch/zerr"
)

// BootstrapScript builds the package manager binary next to it.
const BootstrapScript = "bootstrap-vcpkg.sh"

// vcpkg bootstraps the package manager when its binary is missing and installs
// every configured package for each of its triplets.
func (a *App) vcpkg(ctx context.Context, sess *session.Session, inv *domain.Invocation, configPath string) error {
	if configPath == "" {
		configPath = domain.DefaultVcpkgConfig
	}

	cfg, err := a.packages.Load(configPath, a.platform)
	if err != nil {
		return err
	}

	binary := filepath.Join(inv.ProjectDir, cfg.VcpkgPath)

	if exists(binary) {
		a.logger.Debug("skipping vcpkg bootstrap")
	} else {
		bootstrap := filepath.Join(filepath.Dir(binary), BootstrapScript)
		if !exists(bootstrap) {
			return zerr.With(zerr.Wrap(domain.ErrBootstrapMissing, "cannot bootstrap vcpkg"), "path", bootstrap)
		}
		if err := sess.Execute(ctx, domain.NewCommand(inv.ProjectDir, bootstrap)); err != nil {
			return err
		}
	}

	installNameDir := "INSTALL_NAME_DIR=" + filepath.Join(inv.EnvRoot, "lib")
	for _, pkg := range cfg.Packages {
		for _, triplet := range pkg.Triplets {
			cmd := domain.NewCommand("",
				binary, "install", "--recurse",
				"--triplet", triplet,
				"--overlay-triplets="+cfg.TripletOverlay,
				"--overlay-ports="+cfg.PortsOverlay(),
				pkg.Name,
			).WithEnv(installNameDir)

			if err := sess.Execute(ctx, cmd); err != nil {
				return err
			}
		}
	}
	return nil
}
