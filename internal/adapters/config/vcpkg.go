package config

import (
	"bytes"
	"os"

	"go.trai.ch/vmb/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// PackageLoader implements ports.PackageConfigLoader for the JSON vcpkg config.
// JSON is read through the YAML decoder so mappings keep their declaration order.
type PackageLoader struct{}

// NewPackageLoader creates a PackageLoader.
func NewPackageLoader() *PackageLoader {
	return &PackageLoader{}
}

// Load reads path and returns the section for platform.
func (*PackageLoader) Load(path, platform string) (*domain.PackageConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageConfigReadFailed.Error()), "path", path)
	}

	// Tabs may only appear as insignificant whitespace in valid JSON, and YAML
	// rejects them as indentation.
	data = bytes.ReplaceAll(data, []byte("\t"), []byte(" "))

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageConfigParseFailed.Error()), "path", path)
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrPackageConfigParseFailed, "config root is not an object"), "path", path)
	}

	key := domain.PlatformKey(platform)
	section := mappingValue(doc, key)
	if section == nil {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrPackageConfigMissingOS, "no section for platform"), "os", key), "path", path)
	}

	var ps PlatformSection
	if err := section.Decode(&ps); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageConfigParseFailed.Error()), "path", path)
	}

	packages, err := decodePackages(mappingValue(section, "pkgs"))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageConfigParseFailed.Error()), "path", path)
	}

	return &domain.PackageConfig{
		VcpkgPath:      ps.VcpkgPath,
		PkgRoot:        ps.PkgRoot,
		TripletOverlay: ps.TripletOverlay,
		Packages:       packages,
	}, nil
}

// mappingValue returns the value node for key in a mapping node.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

func decodePackages(pkgs *yaml.Node) ([]domain.PackageSpec, error) {
	if pkgs == nil {
		return nil, nil
	}
	if pkgs.Kind != yaml.MappingNode {
		return nil, zerr.New("pkgs is not an object")
	}

	specs := make([]domain.PackageSpec, 0, len(pkgs.Content)/2)
	for i := 0; i+1 < len(pkgs.Content); i += 2 {
		var triplets []string
		if err := pkgs.Content[i+1].Decode(&triplets); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid triplet list"), "package", pkgs.Content[i].Value)
		}
		specs = append(specs, domain.PackageSpec{
			Name:     pkgs.Content[i].Value,
			Triplets: triplets,
		})
	}
	return specs, nil
}
