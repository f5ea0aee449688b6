package domain

// Layout describes where the running executable is installed:
// <Root>/env/<ReleaseID>/bin/<executable>.
type Layout struct {
	Root       string
	ReleaseID  string
	EnvRoot    string
	BinDir     string
	Executable string
}

// Invocation is the resolved context of one run. It is computed once by the resolver
// and never mutated afterwards.
type Invocation struct {
	Layout

	ProjectDir    string
	Project       string
	Toolchain     Toolchain
	ToolchainPath string
	BuildDir      string
	VendorDir     string
	InstallPrefix string
	TestDataPath  string
	Interpreter   string

	BuildType    BuildType
	BuildTarget  string
	Threads      int
	UIFramework  bool
	Mobile       bool
	Doc          bool
	Resource     bool
	UnitTests    bool
	Verbose      bool
	XcodeProject string
	BundlePath   string
}
