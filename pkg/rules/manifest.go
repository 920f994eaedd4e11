package rules

import (
	"sort"

	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Manifest names, in run order, which built-in rules a TransformationManager
// should register.
type Manifest struct {
	Rules []string `yaml:"rules"`
}

// ParseManifest decodes a YAML rule manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parse manifest")
	}
	return &m, nil
}

// Factory constructs a fresh Transformation for one registry entry.
type Factory func() *transform.Transformation

var registry = map[string]Factory{
	"uniform-block-member-removal": NewUniformBlockMemberRemoval,
	"shadow2d-to-texture":          NewShadow2DToTexture,
	"out-declaration-location":     NewOutDeclarationLocation,
	"unsized-array-move":           NewUnsizedArraySpecifierMove,
	"printf-extraction":            func() *transform.Transformation { return NewPrintfExtraction().Transformation },
}

// Names returns every built-in rule name a manifest may reference,
// sorted, plus "add-if-not-exists" which is special-cased in Build.
func Names() []string {
	names := make([]string, 0, len(registry)+1)
	for name := range registry {
		names = append(names, name)
	}
	names = append(names, "add-if-not-exists")
	sort.Strings(names)
	return names
}

// Build resolves every rule name in m against the built-in registry and
// registers it on a new TransformationManager, in manifest order.
// "add-if-not-exists" is special-cased: it needs the caller-supplied
// addRequests the manifest alone cannot carry.
func Build(m *Manifest, addRequests []DeclarationRequest, opts ...transform.ManagerOption) (*transform.TransformationManager, error) {
	mgr := transform.NewTransformationManager(opts...)
	for _, name := range m.Rules {
		if name == "add-if-not-exists" {
			mgr.RegisterTransformation(NewAddIfNotExists(addRequests))
			continue
		}
		factory, ok := registry[name]
		if !ok {
			return nil, errors.Errorf("build manifest: unknown rule %q", name)
		}
		mgr.RegisterTransformation(factory())
	}
	return mgr, nil
}
