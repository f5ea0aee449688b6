package domain

import "go.trai.ch/zerr"

var (
	// ErrCommandFailed is returned when an external command exits with a non-zero status.
	ErrCommandFailed = zerr.New("external command failed")

	// ErrInvalidExecutablePath is returned when the running executable is not installed as
	// <root>/env/<release>/bin/<executable>.
	ErrInvalidExecutablePath = zerr.New("executable path must be of the form /<root>/env/<release>/bin/<executable>")

	// ErrInvalidRunMode is returned when more than one run mode is selected.
	ErrInvalidRunMode = zerr.New("one of [run-never, run-confirm, run-always] must be selected")

	// ErrInvalidBuildType is returned when a build type outside the supported set is requested.
	ErrInvalidBuildType = zerr.New("invalid build type, expected one of RelWithDebInfo, Release, Debug")

	// ErrInvalidThreads is returned when the thread count is not positive.
	ErrInvalidThreads = zerr.New("thread count must be positive")

	// ErrSitePackagesNotFound is returned when the environment has no site-packages directory.
	ErrSitePackagesNotFound = zerr.New("no site packages found")

	// ErrManifestReadFailed is returned when the install manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read install manifest")

	// ErrLintUnsupported is returned when linting is requested for a UI-framework build.
	ErrLintUnsupported = zerr.New("only python linting supported")

	// ErrInvalidTestPattern is returned when the test filter is not a valid regular expression.
	ErrInvalidTestPattern = zerr.New("invalid test pattern")

	// ErrTestDiscoveryFailed is returned when the test directory cannot be walked.
	ErrTestDiscoveryFailed = zerr.New("failed to discover tests")

	// ErrTestRunFailed is returned when the test runner itself could not report a result.
	ErrTestRunFailed = zerr.New("failed to run test suite")

	// ErrTestsFailed is returned when the test suite reports failures or errors.
	ErrTestsFailed = zerr.New("test suite failed")

	// ErrConfigReadFailed is returned when the project config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrPackageConfigReadFailed is returned when the package manager config cannot be read.
	ErrPackageConfigReadFailed = zerr.New("failed to read package manager config")

	// ErrPackageConfigParseFailed is returned when the package manager config cannot be parsed.
	ErrPackageConfigParseFailed = zerr.New("failed to parse package manager config")

	// ErrPackageConfigMissingOS is returned when the package manager config has no section for the current OS.
	ErrPackageConfigMissingOS = zerr.New("missing os section in package manager config")

	// ErrBootstrapMissing is returned when the package manager must be bootstrapped but its
	// bootstrap script is absent.
	ErrBootstrapMissing = zerr.New("missing vcpkg build files")

	// ErrModuleInfoFailed is returned when version control metadata cannot be collected.
	ErrModuleInfoFailed = zerr.New("failed to collect module info")

	// ErrUnknownAction is returned when the dispatcher receives an action it does not handle.
	ErrUnknownAction = zerr.New("unknown action")
)

// CommandError reports a failed external command. It matches ErrCommandFailed
// with errors.Is and unwraps to the executor's error.
type CommandError struct {
	Command string
	Err     error
}

// NewCommandError wraps err as the failure of cmd.
func NewCommandError(cmd Command, err error) *CommandError {
	return &CommandError{Command: cmd.String(), Err: err}
}

func (e *CommandError) Error() string {
	return e.Message() + ": " + e.Err.Error()
}

// Message returns the failure without its cause.
func (e *CommandError) Message() string {
	return ErrCommandFailed.Error() + " [" + e.Command + "]"
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCommandFailed.
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed //nolint:errorlint // identity check against the sentinel
}
