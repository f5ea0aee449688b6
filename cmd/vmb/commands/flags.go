package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/zerr"
)

// buildTypeValue is a pflag.Value restricted to the supported build types.
type buildTypeValue domain.BuildType

var _ pflag.Value = (*buildTypeValue)(nil)

func (v *buildTypeValue) String() string {
	return string(*v)
}

func (v *buildTypeValue) Set(s string) error {
	bt, err := domain.ParseBuildType(s)
	if err != nil {
		return err
	}
	*v = buildTypeValue(bt)
	return nil
}

func (*buildTypeValue) Type() string {
	return "build-type"
}

// rootFlags holds the persistent flags shared by every command.
type rootFlags struct {
	uiFramework   bool
	mobile        bool
	buildType     buildTypeValue
	buildTarget   string
	threads       int
	projectDir    string
	doc           bool
	resource      bool
	unitTests     bool
	toolchainPath string
	xcodeProject  string
	bundlePath    string
	interpreter   string
	verbosity     int
	runNever      bool
	runConfirm    bool
	runAlways     bool
	logJSON       bool
	openXcode     bool
}

func newRootFlags() *rootFlags {
	defaults := domain.DefaultOptions()
	return &rootFlags{
		buildType:     buildTypeValue(defaults.BuildType),
		threads:       defaults.Threads,
		projectDir:    defaults.ProjectDir,
		toolchainPath: defaults.ToolchainPath,
		bundlePath:    defaults.BundlePath,
	}
}

func (f *rootFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()

	fs.BoolVar(&f.uiFramework, "swift", false, "Compile swift code using the xcode toolchain (alias --ui-framework)")
	fs.BoolVar(&f.mobile, "ios", false, "Configure the xcode toolchain to build for ios (alias --mobile)")
	fs.StringVar(&f.toolchainPath, "toolchain-path", f.toolchainPath, "Path to a toolchain file, replaced by --ios and --swift")
	fs.Var(&f.buildType, "build-type", "One of "+buildTypeList())
	fs.StringVar(&f.buildTarget, "build-target", "", "Target to build")
	fs.StringVar(&f.xcodeProject, "xcode-proj", "", "Name of the xcode project to open")
	fs.BoolVar(&f.doc, "doc", false, "Run a documentation specific build")
	fs.BoolVar(&f.resource, "resource", false, "Run a resource specific build")
	fs.BoolVar(&f.unitTests, "unit-tests", false, "Build unit tests")
	fs.IntVar(&f.threads, "threads", f.threads, "Number of build threads")
	fs.StringVar(&f.projectDir, "project-dir", f.projectDir, "Path to the project")
	fs.StringVar(&f.bundlePath, "bundle-path", f.bundlePath, "Path to the bundle executable")
	fs.StringVar(&f.interpreter, "python", "", "Python interpreter, defaults to the one in the environment")
	fs.CountVarP(&f.verbosity, "verbose", "v", "Verbose level, repeat up to 2 times")
	fs.BoolVar(&f.runNever, "run-never", false, "Only log external commands")
	fs.BoolVar(&f.runConfirm, "run-confirm", false, "Ask before running each external command")
	fs.BoolVar(&f.runAlways, "run-always", false, "Run every external command (default)")
	fs.BoolVar(&f.logJSON, "log-json", false, "Log as JSON")
	fs.BoolVar(&f.openXcode, "open-xcode", false, "Does nothing")
	_ = fs.MarkHidden("open-xcode")

	cmd.MarkFlagsMutuallyExclusive("run-never", "run-confirm", "run-always")
}

func buildTypeList() string {
	names := make([]string, 0, len(domain.BuildTypes()))
	for _, bt := range domain.BuildTypes() {
		names = append(names, bt.String())
	}
	return strings.Join(names, ", ")
}

// options builds validated options from the flags of cmd. Values from the project
// file fill in flags that were not given explicitly. The project file is returned
// for command specific defaults.
func (c *CLI) options(cmd *cobra.Command) (domain.Options, *domain.ProjectConfig, error) {
	f := c.flags

	mode, err := domain.SelectRunMode(f.runNever, f.runConfirm, f.runAlways)
	if err != nil {
		return domain.Options{}, nil, err
	}

	opts := domain.Options{
		ProjectDir:    f.projectDir,
		BuildType:     domain.BuildType(f.buildType),
		BuildTarget:   f.buildTarget,
		Threads:       f.threads,
		UIFramework:   f.uiFramework,
		Mobile:        f.mobile,
		Doc:           f.doc,
		Resource:      f.resource,
		UnitTests:     f.unitTests,
		ToolchainPath: f.toolchainPath,
		XcodeProject:  f.xcodeProject,
		BundlePath:    f.bundlePath,
		Interpreter:   f.interpreter,
		Verbosity:     f.verbosity,
		RunMode:       mode,
		LogJSON:       f.logJSON,
	}

	c.app.SetupLogging(opts.Verbosity, opts.LogJSON)

	cfg, err := c.app.ProjectConfig(opts.ProjectDir)
	if err != nil {
		return domain.Options{}, nil, err
	}
	if err := applyProjectConfig(&opts, cfg, cmd.Flags().Changed); err != nil {
		return domain.Options{}, nil, err
	}

	if err := opts.Validate(); err != nil {
		return domain.Options{}, nil, err
	}
	return opts, cfg, nil
}

// applyProjectConfig copies every set config value whose flag was not changed.
func applyProjectConfig(opts *domain.Options, cfg *domain.ProjectConfig, changed func(string) bool) error {
	if cfg == nil {
		return nil
	}

	if cfg.BuildType != nil && !changed("build-type") {
		bt, err := domain.ParseBuildType(*cfg.BuildType)
		if err != nil {
			return zerr.Wrap(err, "invalid build_type in project file")
		}
		opts.BuildType = bt
	}
	setInt(&opts.Threads, cfg.Threads, !changed("threads"))
	setString(&opts.ToolchainPath, cfg.ToolchainPath, !changed("toolchain-path"))
	setString(&opts.BundlePath, cfg.BundlePath, !changed("bundle-path"))
	setString(&opts.XcodeProject, cfg.XcodeProject, !changed("xcode-proj"))
	setBool(&opts.Doc, cfg.Doc, !changed("doc"))
	setBool(&opts.Resource, cfg.Resource, !changed("resource"))
	setBool(&opts.UnitTests, cfg.UnitTests, !changed("unit-tests"))
	return nil
}

func setString(dst *string, src *string, apply bool) {
	if src != nil && apply {
		*dst = *src
	}
}

func setInt(dst *int, src *int, apply bool) {
	if src != nil && apply {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool, apply bool) {
	if src != nil && apply {
		*dst = *src
	}
}
