package domain

// ProjectConfig holds defaults read from the project config file. Nil fields are unset.
type ProjectConfig struct {
	BuildType     *string
	Threads       *int
	ToolchainPath *string
	BundlePath    *string
	VcpkgConfig   *string
	XcodeProject  *string
	Doc           *bool
	Resource      *bool
	UnitTests     *bool
}
