package navtree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// menuFile is the on-disk layout of a navigation file.
type menuFile struct {
	Items []Spec `yaml:"items"`
}

// Load builds the navigation tree. An empty path selects DefaultMenu.
func Load(path string, opts Options) (*Tree, error) {
	if path == "" {
		return Build(DefaultMenu(), opts)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading navigation file %s: %w", path, err)
	}

	specs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing navigation file %s: %w", path, err)
	}

	tree, err := Build(specs, opts)
	if err != nil {
		return nil, fmt.Errorf("building navigation from %s: %w", path, err)
	}
	return tree, nil
}

// Parse decodes a YAML navigation document of the form `items: [...]`.
func Parse(data []byte) ([]Spec, error) {
	var f menuFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("no navigation items defined")
	}
	return f.Items, nil
}

// Marshal encodes specs in the format accepted by Parse.
func Marshal(specs []Spec) ([]byte, error) {
	return yaml.Marshal(menuFile{Items: specs})
}

// Specs converts the tree back into specs in display order, so that
// Marshal(t.Specs()) round-trips through Load.
func (t *Tree) Specs() []Spec {
	var conv func(ids []ID) []Spec
	conv = func(ids []ID) []Spec {
		if len(ids) == 0 {
			return nil
		}
		out := make([]Spec, 0, len(ids))
		for _, id := range ids {
			n := t.nodes[id]
			out = append(out, Spec{
				ID:       n.ID,
				Name:     n.Name,
				Path:     n.Path,
				Icon:     n.Icon,
				Children: conv(n.Children),
			})
		}
		return out
	}
	return conv(t.roots)
}
