package domain

// ActionKind enumerates the top-level commands.
type ActionKind int

const (
	// ActionBuild configures and builds.
	ActionBuild ActionKind = iota
	// ActionUninstall removes files listed in the install manifest.
	ActionUninstall
	// ActionTest runs the project's tests.
	ActionTest
	// ActionLint lints a path.
	ActionLint
	// ActionVcpkg bootstraps the package manager and builds its packages.
	ActionVcpkg
	// ActionModuleInfo prints version control metadata.
	ActionModuleInfo
)

// Action is the closed set of top-level commands. Each variant carries its own payload.
type Action interface {
	Kind() ActionKind
	action()
}

// BuildMode selects what happens before the build directory is configured.
type BuildMode int

const (
	// BuildDefault configures and builds in place.
	BuildDefault BuildMode = iota
	// BuildIncremental behaves like BuildDefault.
	BuildIncremental
	// BuildClean removes the build directory first.
	BuildClean
)

// BuildAction configures and builds the project.
type BuildAction struct {
	Mode BuildMode
}

// UninstallAction removes previously installed artifacts.
type UninstallAction struct{}

// TestAction runs tests whose identifiers match Pattern. An empty pattern matches all.
type TestAction struct {
	Pattern string
}

// LintAction lints Path.
type LintAction struct {
	Path string
}

// VcpkgAction builds packages declared in the config at ConfigPath.
type VcpkgAction struct {
	ConfigPath string
}

// ModuleInfoAction prints metadata of the repository and its submodules.
type ModuleInfoAction struct{}

func (BuildAction) Kind() ActionKind      { return ActionBuild }
func (UninstallAction) Kind() ActionKind  { return ActionUninstall }
func (TestAction) Kind() ActionKind       { return ActionTest }
func (LintAction) Kind() ActionKind       { return ActionLint }
func (VcpkgAction) Kind() ActionKind      { return ActionVcpkg }
func (ModuleInfoAction) Kind() ActionKind { return ActionModuleInfo }

func (BuildAction) action()      {}
func (UninstallAction) action()  {}
func (TestAction) action()       {}
func (LintAction) action()       {}
func (VcpkgAction) action()      {}
func (ModuleInfoAction) action() {}
