package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/engine/assembler"
	"go.trai.ch/vmb/internal/engine/resolver"
	"go.trai.ch/vmb/internal/engine/session"
	"go.trai.ch/zerr"
)

// build prepares the build directory, configures it and builds or, for mobile
// builds, opens the generated IDE projects.
func (a *App) build(ctx context.Context, sess *session.Session, inv *domain.Invocation, mode domain.BuildMode) error {
	if mode == domain.BuildClean {
		if err := sess.Execute(ctx, domain.NewCommand(inv.Root, "rm", "-rf", inv.BuildDir)); err != nil {
			return err
		}
	}

	if err := sess.Execute(ctx, domain.NewCommand(inv.Root, "mkdir", "-p", inv.BuildDir)); err != nil {
		return err
	}

	sdk := a.sdkInfo(ctx, inv.ProjectDir)

	sitePackages, err := a.sitePackages(ctx, inv)
	if err != nil {
		return err
	}

	if err := sess.Execute(ctx, assembler.Configure(inv, sitePackages, sdk)); err != nil {
		return err
	}

	if inv.Mobile {
		return a.openMobileProjects(ctx, sess, inv)
	}

	return sess.Execute(ctx, assembler.Build(inv))
}

// sitePackages asks the interpreter for its site-packages directory and
// searches the environment when it cannot answer. The query only reads, so it is
// not gated by the run mode.
func (a *App) sitePackages(ctx context.Context, inv *domain.Invocation) (string, error) {
	var out bytes.Buffer
	err := a.executor.Execute(ctx, resolver.SitePackagesQuery(inv.Interpreter), &out, io.Discard)
	if err == nil {
		if dir := lastLine(out.String()); dir != "" {
			return dir, nil
		}
	} else {
		a.logger.Debug("searching site-packages in " + inv.EnvRoot + ": " + err.Error())
	}
	return resolver.SitePackages(inv.EnvRoot)
}

// sdkInfo returns the version stamp of the SDK module. Projects outside version
// control get the placeholder stamp.
func (a *App) sdkInfo(ctx context.Context, projectDir string) domain.ModuleInfo {
	fallback := domain.DefaultSDKInfo(projectDir)

	modules, err := a.inspector.Inspect(ctx, projectDir)
	if err != nil {
		a.logger.Warn("using default " + domain.SDKModuleName + " version: " + err.Error())
		return fallback
	}
	return modules.Lookup(domain.SDKModuleName, fallback)
}

// openMobileProjects installs the gem bundle and pods the generated projects need
// and opens each project in the IDE, one at a time in path order.
func (a *App) openMobileProjects(ctx context.Context, sess *session.Session, inv *domain.Invocation) error {
	var podPrefix []string
	if exists(filepath.Join(inv.BuildDir, "Gemfile")) {
		podPrefix = []string{inv.BundlePath, "exec"}

		if !exists(filepath.Join(inv.BuildDir, "Gemfile.lock")) {
			a.logger.Info("installing Gem bundle")
			if err := sess.Execute(ctx, domain.NewCommand(inv.BuildDir,
				inv.BundlePath, "config", "set", "path", inv.VendorDir)); err != nil {
				return err
			}
			if err := sess.Execute(ctx, domain.NewCommand(inv.BuildDir, inv.BundlePath, "install")); err != nil {
				return err
			}
		}
	}

	projects, err := xcodeProjects(inv.BuildDir, inv.XcodeProject)
	if err != nil {
		return err
	}

	for _, project := range projects {
		dir := filepath.Dir(project)
		target := project

		if exists(filepath.Join(dir, "Podfile")) {
			target = strings.TrimSuffix(project, filepath.Ext(project)) + ".xcworkspace"

			a.logger.Info("installing Pods")
			argv := append(append([]string{}, podPrefix...), "pod", "install")
			if err := sess.Execute(ctx, domain.NewCommand(dir, argv...)); err != nil {
				return err
			}
		}

		if err := sess.Execute(ctx, domain.NewCommand(dir, "open", target)); err != nil {
			return err
		}
	}
	return nil
}

// xcodeProjects lists <buildDir>/<name>/*.xcodeproj sorted by path. An empty name
// matches every subdirectory.
func xcodeProjects(buildDir, name string) ([]string, error) {
	if name == "" {
		name = "*"
	}

	pattern := filepath.Join(buildDir, name, "*.xcodeproj")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid project filter"), "pattern", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
