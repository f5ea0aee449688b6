// Package app implements the application layer for vmb.
package app

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/vmb/internal/core/ports"
	"go.trai.ch/vmb/internal/engine/collector"
	"go.trai.ch/vmb/internal/engine/resolver"
	"go.trai.ch/vmb/internal/engine/session"
	"go.trai.ch/vmb/internal/ui/output"
	"go.trai.ch/zerr"
)

// App dispatches one top-level action per invocation.
type App struct {
	configLoader ports.ConfigLoader
	packages     ports.PackageConfigLoader
	executor     ports.Executor
	prompter     ports.Prompter
	inspector    ports.ModuleInspector
	logger       ports.Logger
	tracer       ports.Tracer
	resolver     *resolver.Resolver
	collector    *collector.Collector

	stdout   io.Writer
	stderr   io.Writer
	platform string
}

// Dependencies groups the collaborators of an App.
type Dependencies struct {
	ConfigLoader ports.ConfigLoader
	Packages     ports.PackageConfigLoader
	Executor     ports.Executor
	Prompter     ports.Prompter
	Inspector    ports.ModuleInspector
	Logger       ports.Logger
	Tracer       ports.Tracer
	Resolver     *resolver.Resolver
	Collector    *collector.Collector
}

// New creates a new App instance writing command output to the process streams.
func New(deps Dependencies) *App {
	return &App{
		configLoader: deps.ConfigLoader,
		packages:     deps.Packages,
		executor:     deps.Executor,
		prompter:     deps.Prompter,
		inspector:    deps.Inspector,
		logger:       deps.Logger,
		tracer:       deps.Tracer,
		resolver:     deps.Resolver,
		collector:    deps.Collector,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		platform:     runtime.GOOS,
	}
}

// WithOutput replaces the streams external commands and reports are written to.
// This is primarily used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithPlatform overrides the platform used to select the package manager config section.
func (a *App) WithPlatform(platform string) *App {
	a.platform = platform
	return a
}

// ProjectConfig loads the optional project file from projectDir.
func (a *App) ProjectConfig(projectDir string) (*domain.ProjectConfig, error) {
	return a.configLoader.Load(projectDir)
}

// SetupLogging applies the log level for verbosity and the log format.
func (a *App) SetupLogging(verbosity int, asJSON bool) {
	a.logger.SetJSON(asJSON)
	a.logger.SetLevel(domain.VerbosityLevel(verbosity))
}

// Run validates opts and executes action.
//
//nolint:cyclop // dispatcher over the closed action set
func (a *App) Run(ctx context.Context, opts domain.Options, action domain.Action) error {
	a.SetupLogging(opts.Verbosity, opts.LogJSON)

	if err := opts.Validate(); err != nil {
		return err
	}

	sess := a.newSession(opts.RunMode)

	ctx, span := a.tracer.Start(ctx, actionName(action))
	defer span.End()

	var err error
	switch action.(type) {
	case domain.ModuleInfoAction:
		err = a.moduleInfo(ctx, opts.ProjectDir)
	default:
		var inv *domain.Invocation
		if inv, err = a.resolver.Resolve(opts); err != nil {
			break
		}
		a.logger.Debug("build dir " + inv.BuildDir)

		switch act := action.(type) {
		case domain.BuildAction:
			err = a.build(ctx, sess, inv, act.Mode)
		case domain.UninstallAction:
			err = a.uninstall(ctx, sess, inv)
		case domain.TestAction:
			err = a.test(ctx, sess, inv, act.Pattern)
		case domain.LintAction:
			err = a.lint(ctx, sess, inv, act.Path)
		case domain.VcpkgAction:
			err = a.vcpkg(ctx, sess, inv, act.ConfigPath)
		default:
			err = zerr.With(zerr.Wrap(domain.ErrUnknownAction, "cannot dispatch"), "action", actionName(action))
		}
	}

	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (a *App) newSession(mode domain.RunMode) *session.Session {
	return session.New(mode, a.executor, a.prompter, a.logger, a.tracer,
		session.WithOutput(a.stdout, a.stderr),
		session.WithColor(output.New(a.stderr)),
	)
}

// lint runs pylint on path from the current directory.
func (a *App) lint(ctx context.Context, sess *session.Session, inv *domain.Invocation, path string) error {
	if inv.UIFramework {
		return zerr.With(zerr.Wrap(domain.ErrLintUnsupported, "cannot lint ui framework build"), "path", path)
	}
	return sess.Execute(ctx, domain.NewCommand(".", inv.Interpreter, "-m", "pylint", path))
}

func actionName(action domain.Action) string {
	if action == nil {
		return "unknown"
	}
	switch action.Kind() {
	case domain.ActionBuild:
		return "build"
	case domain.ActionUninstall:
		return "uninstall"
	case domain.ActionTest:
		return "test"
	case domain.ActionLint:
		return "lint"
	case domain.ActionVcpkg:
		return "vcpkg"
	case domain.ActionModuleInfo:
		return "modinfo"
	default:
		return "unknown"
	}
}

// absProjectDir resolves the project directory without requiring an install layout.
func absProjectDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "project_dir", dir)
	}
	return abs, nil
}
