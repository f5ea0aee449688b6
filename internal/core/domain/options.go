package domain

import "go.trai.ch/zerr"

// Default option values.
const (
	DefaultThreads       = 8
	DefaultProjectDir    = "."
	DefaultToolchainPath = "../foundation/third_party/vcpkg/scripts/buildsystems/vcpkg.cmake"
	DefaultBundlePath    = "/usr/local/opt/ruby/bin/bundle"
	DefaultVcpkgConfig   = "etc/vcpkg/vcpkg.json"
)

// Options is the validated configuration of one invocation, built once from flags and
// the optional project config file.
type Options struct {
	ProjectDir    string
	BuildType     BuildType
	BuildTarget   string
	Threads       int
	UIFramework   bool
	Mobile        bool
	Doc           bool
	Resource      bool
	UnitTests     bool
	ToolchainPath string
	XcodeProject  string
	BundlePath    string
	Interpreter   string
	Verbosity     int
	RunMode       RunMode
	LogJSON       bool
}

// DefaultOptions returns the options used when neither flags nor config override them.
func DefaultOptions() Options {
	return Options{
		ProjectDir:    DefaultProjectDir,
		BuildType:     BuildRelease,
		Threads:       DefaultThreads,
		ToolchainPath: DefaultToolchainPath,
		BundlePath:    DefaultBundlePath,
		RunMode:       RunAlways,
	}
}

// Validate checks field ranges that flag parsing cannot express.
func (o Options) Validate() error {
	if _, err := ParseBuildType(string(o.BuildType)); err != nil {
		return err
	}
	if o.Threads <= 0 {
		return zerr.With(zerr.Wrap(ErrInvalidThreads, "invalid options"), "threads", o.Threads)
	}
	return nil
}

// Verbose reports whether at least one -v was given.
func (o Options) Verbose() bool {
	return o.Verbosity > 0
}
