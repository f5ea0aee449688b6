package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vmb/internal/core/domain"
)

func TestSelectRunMode(t *testing.T) {
	tests := []struct {
		name                   string
		never, confirm, always bool
		want                   domain.RunMode
		wantErr                bool
	}{
		{"Default", false, false, false, domain.RunAlways, false},
		{"Never", true, false, false, domain.RunNever, false},
		{"Confirm", false, true, false, domain.RunConfirm, false},
		{"Always", false, false, true, domain.RunAlways, false},
		{"NeverAndConfirm", true, true, false, domain.RunAlways, true},
		{"All", true, true, true, domain.RunAlways, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.SelectRunMode(tt.never, tt.confirm, tt.always)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidRunMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBuildType(t *testing.T) {
	for _, bt := range domain.BuildTypes() {
		got, err := domain.ParseBuildType(bt.String())
		require.NoError(t, err)
		assert.Equal(t, bt, got)
	}

	_, err := domain.ParseBuildType("MinSizeRel")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidBuildType))
}

func TestSelectToolchain(t *testing.T) {
	tests := []struct {
		name       string
		mobile, ui bool
		wantTC     domain.Toolchain
		wantUI     bool
	}{
		{"Native", false, false, domain.ToolchainNative, false},
		{"UIFrameworkOnly", false, true, domain.ToolchainOSX, true},
		{"MobileOnly", true, false, domain.ToolchainIOS, true},
		{"MobileAndUIFramework", true, true, domain.ToolchainIOS, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ui := domain.SelectToolchain(tt.mobile, tt.ui)
			assert.Equal(t, tt.wantTC, tc)
			assert.Equal(t, tt.wantUI, ui)
			if tt.mobile {
				assert.True(t, ui, "mobile must imply a UI-framework build")
			}
		})
	}
}

func TestCommand_Immutable(t *testing.T) {
	argv := []string{"cmake", "--build", "."}
	cmd := domain.NewCommand("/build", argv...)
	argv[1] = "--mutated"

	assert.Equal(t, []string{"cmake", "--build", "."}, cmd.Argv())

	withEnv := cmd.WithEnv("A=1")
	assert.Empty(t, cmd.Env)
	assert.Equal(t, []string{"A=1"}, withEnv.Env)

	got := cmd.Argv()
	got[0] = "changed"
	assert.Equal(t, "cmake", cmd.Name)
}

func TestCommand_Empty(t *testing.T) {
	cmd := domain.NewCommand("/tmp")
	assert.True(t, cmd.IsEmpty())
	assert.Nil(t, cmd.Argv())
}

func TestCommand_String(t *testing.T) {
	cmd := domain.NewCommand("/build", "open", "/tmp/My App/app.xcworkspace")
	assert.Equal(t, "open '/tmp/My App/app.xcworkspace'", cmd.String())
	assert.Empty(t, domain.Command{}.String())
}

func TestCommand_String_Words(t *testing.T) {
	tests := []struct {
		name string
		cmd  domain.Command
		want string
	}{
		{
			name: "options with values stay bare",
			cmd:  domain.NewCommand("", "vcpkg", "install", "--overlay-triplets=etc/vcpkg/triplets", "zlib"),
			want: "vcpkg install --overlay-triplets=etc/vcpkg/triplets zlib",
		},
		{
			name: "quoted define",
			cmd:  domain.NewCommand("", "cmake", `-DVM_LIB_BRANCH="main"`),
			want: `cmake '-DVM_LIB_BRANCH="main"'`,
		},
		{
			name: "empty argument",
			cmd:  domain.NewCommand("", "echo", ""),
			want: "echo ''",
		},
		{
			name: "environment prefix",
			cmd:  domain.NewCommand("", "vcpkg", "install").WithEnv("INSTALL_NAME_DIR=/opt/env/lib", "NOTE=a b"),
			want: "INSTALL_NAME_DIR=/opt/env/lib NOTE='a b' vcpkg install",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestModuleSet_Lookup(t *testing.T) {
	fallback := domain.DefaultSDKInfo("/project")
	set := domain.ModuleSet{
		"vm-sdk": {Name: "vm-sdk", Branch: "main", Commit: "abc"},
	}

	assert.Equal(t, "abc", set.Lookup(domain.SDKModuleName, fallback).Commit)
	assert.Equal(t, fallback, domain.ModuleSet{}.Lookup(domain.SDKModuleName, fallback))
	assert.Equal(t, "master", fallback.Branch)
	assert.Equal(t, "/project/third_party/vm-sdk-internal", fallback.Path)
}

func TestPlatformKey(t *testing.T) {
	assert.Equal(t, "linux", domain.PlatformKey("linux"))
	assert.Equal(t, "linux", domain.PlatformKey("Linux2"))
	assert.Equal(t, "darwin", domain.PlatformKey("Darwin"))
	assert.Equal(t, "win32", domain.PlatformKey("win32"))
}

func TestPackageConfig_PortsOverlay(t *testing.T) {
	cfg := domain.PackageConfig{TripletOverlay: "etc/vcpkg/triplets"}
	assert.Equal(t, "etc/vcpkg/triplets/ports", cfg.PortsOverlay())
}

func TestVerbosityLevel(t *testing.T) {
	assert.Equal(t, domain.LogLevelWarn, domain.VerbosityLevel(0))
	assert.Equal(t, domain.LogLevelInfo, domain.VerbosityLevel(1))
	assert.Equal(t, domain.LogLevelDebug, domain.VerbosityLevel(2))
	assert.Equal(t, domain.LogLevelDebug, domain.VerbosityLevel(5))
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
}

func TestOptions_Validate(t *testing.T) {
	opts := domain.DefaultOptions()
	require.NoError(t, opts.Validate())
	assert.False(t, opts.Verbose())

	opts.Threads = 0
	assert.True(t, errors.Is(opts.Validate(), domain.ErrInvalidThreads))

	opts = domain.DefaultOptions()
	opts.BuildType = "Fast"
	assert.True(t, errors.Is(opts.Validate(), domain.ErrInvalidBuildType))
}

func TestTestResult_WasSuccessful(t *testing.T) {
	assert.True(t, domain.TestResult{TestsRun: 3}.WasSuccessful())
	assert.False(t, domain.TestResult{TestsRun: 3, Failures: 1}.WasSuccessful())
	assert.False(t, domain.TestResult{TestsRun: 3, Errors: 1}.WasSuccessful())
}

func TestActionKinds(t *testing.T) {
	actions := map[domain.ActionKind]domain.Action{
		domain.ActionBuild:      domain.BuildAction{Mode: domain.BuildClean},
		domain.ActionUninstall:  domain.UninstallAction{},
		domain.ActionTest:       domain.TestAction{Pattern: "."},
		domain.ActionLint:       domain.LintAction{Path: "pkg"},
		domain.ActionVcpkg:      domain.VcpkgAction{ConfigPath: domain.DefaultVcpkgConfig},
		domain.ActionModuleInfo: domain.ModuleInfoAction{},
	}
	for kind, action := range actions {
		assert.Equal(t, kind, action.Kind())
	}
}

func TestCommandError(t *testing.T) {
	cause := errors.New("exit status 2")
	err := domain.NewCommandError(domain.NewCommand("/build", "cmake", "--build", "."), cause)

	assert.ErrorIs(t, err, domain.ErrCommandFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "external command failed [cmake --build .]", err.Message())
	assert.Equal(t, "external command failed [cmake --build .]: exit status 2", err.Error())
	assert.NotErrorIs(t, errors.New("other"), domain.ErrCommandFailed)
}
