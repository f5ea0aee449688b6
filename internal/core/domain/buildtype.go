package domain

import "go.trai.ch/zerr"

// BuildType is the optimization profile handed to the build system.
type BuildType string

const (
	// BuildRelease is an optimized build.
	BuildRelease BuildType = "Release"
	// BuildDebug is an unoptimized build with debug symbols.
	BuildDebug BuildType = "Debug"
	// BuildRelWithDebInfo is an optimized build with debug symbols.
	BuildRelWithDebInfo BuildType = "RelWithDebInfo"
)

// BuildTypes lists the supported build types in help order.
func BuildTypes() []BuildType {
	return []BuildType{BuildRelWithDebInfo, BuildRelease, BuildDebug}
}

// ParseBuildType validates s against the supported build types.
func ParseBuildType(s string) (BuildType, error) {
	for _, bt := range BuildTypes() {
		if string(bt) == s {
			return bt, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrInvalidBuildType, "unsupported build type"), "build_type", s)
}

func (b BuildType) String() string {
	return string(b)
}
