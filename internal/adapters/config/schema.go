package config

// ProjectFile is the structure of the vmb.yaml project file.
type ProjectFile struct {
	BuildType     *string `yaml:"build_type"`
	Threads       *int    `yaml:"threads"`
	ToolchainPath *string `yaml:"toolchain_path"`
	BundlePath    *string `yaml:"bundle_path"`
	VcpkgConfig   *string `yaml:"vcpkg_json"`
	XcodeProject  *string `yaml:"xcode_proj"`
	Doc           *bool   `yaml:"doc"`
	Resource      *bool   `yaml:"resource"`
	UnitTests     *bool   `yaml:"unit_tests"`
}

// PlatformSection is one OS section of the vcpkg config. Packages are decoded
// separately to keep their declaration order.
type PlatformSection struct {
	VcpkgPath      string `yaml:"vcpkg_path"`
	PkgRoot        string `yaml:"pkg_root"`
	TripletOverlay string `yaml:"triplet_overlay"`
}
