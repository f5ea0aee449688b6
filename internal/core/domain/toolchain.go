package domain

// Toolchain names a cross-compilation profile.
type Toolchain string

const (
	// ToolchainNative is the plain native build without a toolchain file.
	ToolchainNative Toolchain = ""
	// ToolchainIOS cross-compiles for mobile devices through the IDE toolchain.
	ToolchainIOS Toolchain = "ios"
	// ToolchainOSX compiles the UI framework through the IDE toolchain.
	ToolchainOSX Toolchain = "osx"
)

// SelectToolchain picks the toolchain for the given flags. The mobile flag always
// implies a UI-framework build, so the returned uiFramework is true whenever mobile is.
func SelectToolchain(mobile, uiFramework bool) (tc Toolchain, ui bool) {
	switch {
	case mobile:
		return ToolchainIOS, true
	case uiFramework:
		return ToolchainOSX, true
	default:
		return ToolchainNative, false
	}
}

// IsNative reports whether no toolchain is selected.
func (t Toolchain) IsNative() bool {
	return t == ToolchainNative
}

func (t Toolchain) String() string {
	return string(t)
}
