package navtree

// ID uniquely identifies a node across the whole navigation tree.
type ID int

// Kind classifies a node once at build time so callers never re-inspect
// the shape of children and path.
type Kind int

const (
	// KindLeaf has a path and no children. Clicking it navigates.
	KindLeaf Kind = iota
	// KindGroup has children and no path. Clicking it toggles expansion.
	KindGroup
	// KindGroupWithPath has children and a path. It behaves as a group;
	// the path is kept only for active-route matching.
	KindGroupWithPath
	// KindInert has neither path nor children and is rendered disabled.
	KindInert
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindGroup:
		return "group"
	case KindGroupWithPath:
		return "group_with_path"
	case KindInert:
		return "inert"
	default:
		return "unknown"
	}
}

// Spec is the configuration form of a navigation entry, as written in
// YAML or in the built-in default menu.
type Spec struct {
	ID       ID     `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Path     string `yaml:"path" json:"path"`
	Icon     string `yaml:"icon" json:"icon"`
	Children []Spec `yaml:"children,omitempty" json:"children,omitempty"`
}

// Node is one entry of a built Tree. Relationships are stored as ids into
// the tree's arena.
type Node struct {
	ID       ID
	Name     string
	Path     string
	Icon     string
	Kind     Kind
	Parent   ID   // zero value is meaningless when IsRoot is true
	IsRoot   bool
	Depth    int  // roots have depth 0
	Children []ID // display order
}

// IsGroup reports whether clicking the node toggles expansion.
func (n *Node) IsGroup() bool {
	return n.Kind == KindGroup || n.Kind == KindGroupWithPath
}

// IsNavigable reports whether clicking the node issues a route transition.
func (n *Node) IsNavigable() bool {
	return n.Kind == KindLeaf
}
