// Package resolver derives the invocation context from the executable layout and options.
package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// ExecutableEnv overrides the executable path used to derive the layout.
	ExecutableEnv = "VM_EXECUTABLE"
	// VirtualizationPrefix is stripped from executable paths on systems that mount
	// the data volume under it.
	VirtualizationPrefix = "/System/Volumes/Data"

	minPathParts = 6
)

// Resolver builds domain.Invocation values.
type Resolver struct {
	lookupEnv  func(string) (string, bool)
	executable func() (string, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookupEnv replaces the environment lookup.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(r *Resolver) { r.lookupEnv = fn }
}

// WithExecutable replaces the running executable lookup.
func WithExecutable(fn func() (string, error)) Option {
	return func(r *Resolver) { r.executable = fn }
}

// New creates a Resolver reading the process environment.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		lookupEnv:  os.LookupEnv,
		executable: os.Executable,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ExecutablePath returns the path used for layout parsing.
func (r *Resolver) ExecutablePath() (string, error) {
	path, ok := r.lookupEnv(ExecutableEnv)
	if !ok {
		var err error
		if path, err = r.executable(); err != nil {
			return "", zerr.Wrap(err, "failed to locate executable")
		}
	}
	return strings.TrimPrefix(path, VirtualizationPrefix), nil
}

// Layout parses the running executable's location.
func (r *Resolver) Layout() (domain.Layout, error) {
	path, err := r.ExecutablePath()
	if err != nil {
		return domain.Layout{}, err
	}
	return ParseLayout(path)
}

// ParseLayout splits path into <root>/env/<release>/bin/<executable>.
func ParseLayout(path string) (domain.Layout, error) {
	clean := filepath.ToSlash(filepath.Clean(path))
	parts := strings.Split(clean, "/")

	if len(parts) < minPathParts || parts[len(parts)-4] != "env" || parts[len(parts)-2] != "bin" {
		return domain.Layout{}, zerr.With(
			zerr.Wrap(domain.ErrInvalidExecutablePath, "unexpected install layout"), "path", path)
	}

	root := strings.Join(parts[:len(parts)-4], "/")
	if root == "" {
		root = "/"
	}
	release := parts[len(parts)-3]
	envRoot := filepath.Join(root, "env", release)

	return domain.Layout{
		Root:       filepath.FromSlash(root),
		ReleaseID:  release,
		EnvRoot:    envRoot,
		BinDir:     filepath.Join(envRoot, "bin"),
		Executable: filepath.FromSlash(clean),
	}, nil
}

// BuildDir returns <root>/build/<release>[_<toolchain>]/<project>.
func BuildDir(root, release string, tc domain.Toolchain, project string) string {
	return filepath.Join(root, "build", releaseDir(release, tc), project)
}

// VendorDir returns the gem bundle directory next to the build directory.
func VendorDir(root, release string, tc domain.Toolchain, project string) string {
	return filepath.Join(root, "build", releaseDir(release, tc), project+"_vendor")
}

func releaseDir(release string, tc domain.Toolchain) string {
	if tc.IsNative() {
		return release
	}
	return release + "_" + tc.String()
}

// ToolchainFile returns the toolchain file a project ships for tc.
func ToolchainFile(projectDir string, tc domain.Toolchain) string {
	return filepath.Join(projectDir, "build", "cmake", tc.String()+"_toolchain.cmake")
}

// Resolve computes the invocation context for opts.
func (r *Resolver) Resolve(opts domain.Options) (*domain.Invocation, error) {
	layout, err := r.Layout()
	if err != nil {
		return nil, err
	}
	return Resolve(layout, opts)
}

// Resolve computes the invocation context for opts within layout.
func Resolve(layout domain.Layout, opts domain.Options) (*domain.Invocation, error) {
	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project directory"), "project_dir", opts.ProjectDir)
	}
	project := filepath.Base(projectDir)

	tc, ui := domain.SelectToolchain(opts.Mobile, opts.UIFramework)

	toolchainPath := opts.ToolchainPath
	if !tc.IsNative() {
		toolchainPath = ToolchainFile(projectDir, tc)
	}

	interpreter := opts.Interpreter
	if interpreter == "" {
		interpreter = filepath.Join(layout.BinDir, "python")
	}
	if interpreter, err = filepath.Abs(interpreter); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve interpreter"), "interpreter", opts.Interpreter)
	}

	// UI-framework builds never build resources.
	resource := opts.Resource && !ui

	return &domain.Invocation{
		Layout:        layout,
		ProjectDir:    projectDir,
		Project:       project,
		Toolchain:     tc,
		ToolchainPath: toolchainPath,
		BuildDir:      BuildDir(layout.Root, layout.ReleaseID, tc, project),
		VendorDir:     VendorDir(layout.Root, layout.ReleaseID, tc, project),
		InstallPrefix: layout.EnvRoot,
		TestDataPath:  filepath.Join(layout.Root, "data", "test"),
		Interpreter:   interpreter,
		BuildType:     opts.BuildType,
		BuildTarget:   opts.BuildTarget,
		Threads:       opts.Threads,
		UIFramework:   ui,
		Mobile:        opts.Mobile,
		Doc:           opts.Doc,
		Resource:      resource,
		UnitTests:     opts.UnitTests,
		Verbose:       opts.Verbose(),
		XcodeProject:  opts.XcodeProject,
		BundlePath:    opts.BundlePath,
	}, nil
}

// SitePackagesScript prints the interpreter's primary site-packages directory.
const SitePackagesScript = "import site; print(site.getsitepackages()[0])"

// SitePackagesQuery is the command asking interpreter for its site-packages directory.
func SitePackagesQuery(interpreter string) domain.Command {
	return domain.NewCommand("", interpreter, "-c", SitePackagesScript)
}

// SitePackages finds a site-packages directory inside envRoot. It is the fallback
// for interpreters that cannot be asked.
func SitePackages(envRoot string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(envRoot, "lib", "python*", "site-packages"))
	if err == nil && len(matches) > 0 {
		sort.Strings(matches)
		return matches[0], nil
	}

	windows := filepath.Join(envRoot, "Lib", "site-packages")
	if info, err := os.Stat(windows); err == nil && info.IsDir() {
		return windows, nil
	}

	return "", zerr.With(zerr.Wrap(domain.ErrSitePackagesNotFound, "no site-packages directory"), "env", envRoot)
}
