package domain

import "strings"

// PackageSpec is one package and the target triplets it is built for.
type PackageSpec struct {
	Name     string
	Triplets []string
}

// PackageConfig is the OS-specific section of the package manager config.
type PackageConfig struct {
	VcpkgPath      string
	PkgRoot        string
	TripletOverlay string
	Packages       []PackageSpec
}

// PortsOverlay returns the overlay ports directory, which lives inside the triplet overlay.
func (c PackageConfig) PortsOverlay() string {
	return c.TripletOverlay + "/ports"
}

// PlatformKey derives the config section name from a platform identifier:
// "linux2" and "linux" both select "linux", anything else is lower-cased as is.
func PlatformKey(platform string) string {
	key := strings.ToLower(platform)
	if strings.HasPrefix(key, "linux") {
		return "linux"
	}
	return key
}
