// Package assembler builds the configure and build command lines for cmake.
package assembler

import (
	"strconv"

	"go.trai.ch/vmb/internal/core/domain"
)

// CMake is the build system generator and driver.
const CMake = "cmake"

// Define is one -D<Name>=<Value> cache entry.
type Define struct {
	Name  string
	Value string
}

func (d Define) String() string {
	return "-D" + d.Name + "=" + d.Value
}

// Defines returns the cache entries every configure step sets, in order.
func Defines(inv *domain.Invocation, sitePackages string, sdk domain.ModuleInfo) []Define {
	return []Define{
		{"PYTHON_EXECUTABLE", inv.Interpreter},
		{"SITE_PACKAGES", sitePackages},
		{"CMAKE_INSTALL_PREFIX", inv.InstallPrefix},
		{"CMAKE_BUILD_TYPE", inv.BuildType.String()},
		{"TEST_DATA_PATH", inv.TestDataPath},
		{"VM_LIB_DATE", quoted(sdk.Date)},
		{"VM_LIB_BRANCH", quoted(sdk.Branch)},
		{"VM_LIB_COMMIT", quoted(sdk.Commit)},
		{"DOC_BUILD", flag(inv.Doc)},
		{"RESOURCE_BUILD", flag(inv.Resource)},
		{"SWIFT_BUILD", flag(inv.UIFramework)},
		{"TEST_BUILD", flag(inv.UnitTests)},
	}
}

// Configure assembles the configure step, run from the build directory.
func Configure(inv *domain.Invocation, sitePackages string, sdk domain.ModuleInfo) domain.Command {
	argv := []string{CMake, "--target", "clean"}
	for _, d := range Defines(inv, sitePackages, sdk) {
		argv = append(argv, d.String())
	}

	argv = append(argv, inv.ProjectDir)

	if inv.ToolchainPath != "" {
		argv = append(argv, Define{"CMAKE_TOOLCHAIN_FILE", inv.ToolchainPath}.String())
	}

	if inv.UIFramework {
		argv = append(argv, "-GXcode", "--debug-trycompile")
	}

	return domain.NewCommand(inv.BuildDir, argv...)
}

// Build assembles the build step, run from the build directory.
func Build(inv *domain.Invocation) domain.Command {
	argv := []string{CMake, "--build", "."}

	target := inv.BuildTarget
	if target == "" && !inv.UIFramework {
		target = "install"
	}
	if target != "" {
		argv = append(argv, "--target", target)
	}

	argv = append(argv, "--config", inv.BuildType.String())

	if inv.Verbose {
		argv = append(argv, "--verbose")
	}

	argv = append(argv, "--parallel", strconv.Itoa(inv.Threads))

	if inv.UIFramework {
		argv = append(argv, "--", "-quiet")
	}

	return domain.NewCommand(inv.BuildDir, argv...)
}

func quoted(s string) string {
	return `"` + s + `"`
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
