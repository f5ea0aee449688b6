package domain

import "path/filepath"

// SDKModuleName is the module whose version is stamped into configured builds.
const SDKModuleName = "vm-sdk"

// DirtySuffix marks a commit whose working tree has uncommitted changes.
const DirtySuffix = "-dirty"

// ModuleInfo is version control metadata for a repository or submodule.
type ModuleInfo struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Branch string `json:"branch"`
	Commit string `json:"commit"`
	Date   string `json:"date"`
	Now    string `json:"now"`
}

// ModuleSet maps module names to their metadata.
type ModuleSet map[string]ModuleInfo

// DefaultSDKInfo is the placeholder version used when the SDK module is not checked out.
func DefaultSDKInfo(projectDir string) ModuleInfo {
	return ModuleInfo{
		Name:   SDKModuleName,
		Path:   filepath.Join(projectDir, "third_party", "vm-sdk-internal"),
		Branch: "master",
		Commit: "9312884026cd9637cc97c4684a8236547941b49c",
		Date:   "2019-12-02 12:36:33 -0800",
		Now:    "2019-12-02 16:22:28.452174",
	}
}

// Lookup returns the named module or fallback if it is absent.
func (s ModuleSet) Lookup(name string, fallback ModuleInfo) ModuleInfo {
	if info, ok := s[name]; ok {
		return info
	}
	return fallback
}
