package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vmb/cmd/vmb/commands"
	"go.trai.ch/vmb/internal/build"
	"go.trai.ch/vmb/internal/core/domain"
)

type mockApp struct {
	runFunc func(ctx context.Context, opts domain.Options, action domain.Action) error
	config  *domain.ProjectConfig
	dirs    []string
	calls   []string
	level   int
}

func (m *mockApp) SetupLogging(verbosity int, _ bool) {
	m.calls = append(m.calls, "logging")
	m.level = verbosity
}

func (m *mockApp) Run(ctx context.Context, opts domain.Options, action domain.Action) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts, action)
	}
	return nil
}

func (m *mockApp) ProjectConfig(projectDir string) (*domain.ProjectConfig, error) {
	m.dirs = append(m.dirs, projectDir)
	m.calls = append(m.calls, "config")
	if m.config == nil {
		return &domain.ProjectConfig{}, nil
	}
	return m.config, nil
}

// capture runs args and returns the options and action the app received.
func capture(t *testing.T, m *mockApp, args ...string) (domain.Options, domain.Action) {
	t.Helper()

	var (
		gotOpts   domain.Options
		gotAction domain.Action
	)
	m.runFunc = func(_ context.Context, opts domain.Options, action domain.Action) error {
		gotOpts, gotAction = opts, action
		return nil
	}

	cli := commands.New(m)
	cli.SetArgs(args)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	require.NoError(t, cli.Execute(context.Background()))
	require.NotNil(t, gotAction, "app was not called")
	return gotOpts, gotAction
}

func TestCommands_Actions(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.Action
	}{
		{name: "default build", args: nil, want: domain.BuildAction{Mode: domain.BuildDefault}},
		{name: "incremental", args: []string{"incremental"}, want: domain.BuildAction{Mode: domain.BuildIncremental}},
		{name: "incremental dummy", args: []string{"incremental", "x"}, want: domain.BuildAction{Mode: domain.BuildIncremental}},
		{name: "clean", args: []string{"clean"}, want: domain.BuildAction{Mode: domain.BuildClean}},
		{name: "clean dummy", args: []string{"clean", "clean"}, want: domain.BuildAction{Mode: domain.BuildClean}},
		{name: "uninstall", args: []string{"uninstall"}, want: domain.UninstallAction{}},
		{name: "test", args: []string{"test"}, want: domain.TestAction{}},
		{name: "test pattern", args: []string{"test", "vm_test.py"}, want: domain.TestAction{Pattern: "vm_test.py"}},
		{name: "lint", args: []string{"lint", "vm"}, want: domain.LintAction{Path: "vm"}},
		{name: "vcpkg", args: []string{"vcpkg"}, want: domain.VcpkgAction{ConfigPath: domain.DefaultVcpkgConfig}},
		{name: "vcpkg json", args: []string{"vcpkg", "--vcpkg-json", "a.json"}, want: domain.VcpkgAction{ConfigPath: "a.json"}},
		{name: "modinfo", args: []string{"modinfo"}, want: domain.ModuleInfoAction{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, action := capture(t, &mockApp{}, tt.args...)
			assert.Equal(t, tt.want, action)
		})
	}
}

func TestCommands_Defaults(t *testing.T) {
	opts, _ := capture(t, &mockApp{})
	assert.Equal(t, domain.DefaultOptions(), opts)
}

func TestCommands_Flags(t *testing.T) {
	opts, _ := capture(t, &mockApp{},
		"--ui-framework", "--build-type", "Debug", "--build-target", "vm",
		"--threads", "3", "--project-dir", "/p", "--doc", "--resource", "--unit-tests",
		"--toolchain-path", "tc.cmake", "--xcode-proj", "App", "--bundle-path", "/bin/bundle",
		"--python", "/env/bin/python3", "-vv", "--run-confirm", "--log-json", "--open-xcode",
		"incremental",
	)

	assert.Equal(t, domain.Options{
		ProjectDir:    "/p",
		BuildType:     domain.BuildDebug,
		BuildTarget:   "vm",
		Threads:       3,
		UIFramework:   true,
		Doc:           true,
		Resource:      true,
		UnitTests:     true,
		ToolchainPath: "tc.cmake",
		XcodeProject:  "App",
		BundlePath:    "/bin/bundle",
		Interpreter:   "/env/bin/python3",
		Verbosity:     2,
		RunMode:       domain.RunConfirm,
		LogJSON:       true,
	}, opts)
}

func TestCommands_FlagAliases(t *testing.T) {
	opts, _ := capture(t, &mockApp{}, "--swift", "--mobile")
	assert.True(t, opts.UIFramework)
	assert.True(t, opts.Mobile)

	opts, _ = capture(t, &mockApp{}, "--ios")
	assert.True(t, opts.Mobile)
}

func TestCommands_FlagsAfterSubcommand(t *testing.T) {
	opts, action := capture(t, &mockApp{}, "test", "Widget", "--run-never", "-v")
	assert.Equal(t, domain.TestAction{Pattern: "Widget"}, action)
	assert.Equal(t, domain.RunNever, opts.RunMode)
	assert.Equal(t, 1, opts.Verbosity)
}

func TestCommands_ProjectConfig(t *testing.T) {
	buildType := "RelWithDebInfo"
	threads := 16
	vcpkg := "etc/other.json"
	doc := true

	m := &mockApp{config: &domain.ProjectConfig{
		BuildType:   &buildType,
		Threads:     &threads,
		VcpkgConfig: &vcpkg,
		Doc:         &doc,
	}}

	opts, action := capture(t, m, "--threads", "2", "--project-dir", "/proj", "vcpkg")
	assert.Equal(t, domain.BuildRelWithDebInfo, opts.BuildType)
	assert.Equal(t, 2, opts.Threads, "explicit flags win over the project file")
	assert.True(t, opts.Doc)
	assert.Equal(t, domain.VcpkgAction{ConfigPath: "etc/other.json"}, action)
	assert.Equal(t, []string{"/proj"}, m.dirs)
}

func TestCommands_ProjectConfigInvalidBuildType(t *testing.T) {
	buildType := "Fast"
	m := &mockApp{config: &domain.ProjectConfig{BuildType: &buildType}}
	m.runFunc = func(context.Context, domain.Options, domain.Action) error {
		panic("should not be called")
	}

	cli := commands.New(m)
	cli.SetArgs(nil)
	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidBuildType)
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad build type", args: []string{"--build-type", "Fast"}},
		{name: "zero threads", args: []string{"--threads", "0"}},
		{name: "two run modes", args: []string{"--run-never", "--run-always"}},
		{name: "lint without path", args: []string{"lint"}},
		{name: "test with two patterns", args: []string{"test", "a", "b"}},
		{name: "unknown command", args: []string{"deploy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockApp{runFunc: func(context.Context, domain.Options, domain.Action) error {
				panic("should not be called")
			}}

			cli := commands.New(m)
			cli.SetArgs(tt.args)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
			require.Error(t, cli.Execute(context.Background()))
		})
	}
}

func TestCommands_RunError(t *testing.T) {
	m := &mockApp{runFunc: func(context.Context, domain.Options, domain.Action) error {
		return errors.New("simulated error")
	}}

	cli := commands.New(m)
	cli.SetArgs([]string{"uninstall"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "vmb version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	var cli *commands.CLI
	require.NotPanics(t, func() { cli = commands.New(&mockApp{}) })

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "vmb version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VerboseShorthand(t *testing.T) {
	opts, action := capture(t, &mockApp{}, "-vv")
	assert.Equal(t, domain.BuildAction{Mode: domain.BuildDefault}, action)
	assert.Equal(t, 2, opts.Verbosity)
}

func TestCommands_LoggingBeforeProjectConfig(t *testing.T) {
	m := &mockApp{}
	capture(t, m, "-vv", "uninstall")

	assert.Equal(t, []string{"logging", "config"}, m.calls)
	assert.Equal(t, 2, m.level)
}
