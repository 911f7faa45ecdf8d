package navtree

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateID is returned by Build when two entries share an id.
var ErrDuplicateID = errors.New("duplicate navigation id")

// Options control how a Tree is built from specs.
type Options struct {
	// SortChildren orders the children of every group by name. Roots keep
	// their declared order.
	SortChildren bool
}

// Tree is an immutable navigation tree stored as a flat table keyed by id.
type Tree struct {
	nodes map[ID]*Node
	roots []ID
}

// Build validates specs and flattens them into a Tree. Ids must be unique
// across the whole tree.
func Build(specs []Spec, opts Options) (*Tree, error) {
	t := &Tree{nodes: make(map[ID]*Node)}

	var add func(s Spec, parent *Node, depth int) error
	add = func(s Spec, parent *Node, depth int) error {
		if _, exists := t.nodes[s.ID]; exists {
			return fmt.Errorf("%w: %d (%q)", ErrDuplicateID, s.ID, s.Name)
		}

		n := &Node{
			ID:    s.ID,
			Name:  strings.TrimSpace(s.Name),
			Path:  s.Path,
			Icon:  s.Icon,
			Depth: depth,
			Kind:  classify(s),
		}
		if parent == nil {
			n.IsRoot = true
			t.roots = append(t.roots, n.ID)
		} else {
			n.Parent = parent.ID
			parent.Children = append(parent.Children, n.ID)
		}
		t.nodes[n.ID] = n

		for _, c := range s.Children {
			if err := add(c, n, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, s := range specs {
		if err := add(s, nil, 0); err != nil {
			return nil, err
		}
	}

	if opts.SortChildren {
		for _, n := range t.nodes {
			t.sortByName(n.Children)
		}
	}

	return t, nil
}

// MustBuild is like Build but panics on error. It is meant for static
// menus compiled into the binary.
func MustBuild(specs []Spec, opts Options) *Tree {
	t, err := Build(specs, opts)
	if err != nil {
		panic(err)
	}
	return t
}

func classify(s Spec) Kind {
	hasChildren := len(s.Children) > 0
	hasPath := s.Path != ""
	switch {
	case hasChildren && hasPath:
		return KindGroupWithPath
	case hasChildren:
		return KindGroup
	case hasPath:
		return KindLeaf
	default:
		return KindInert
	}
}

func (t *Tree) sortByName(ids []ID) {
	sort.SliceStable(ids, func(i, j int) bool {
		return strings.ToLower(t.nodes[ids[i]].Name) < strings.ToLower(t.nodes[ids[j]].Name)
	})
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id ID) *Node { return t.nodes[id] }

// Roots returns the root ids in display order.
func (t *Tree) Roots() []ID { return t.roots }

// Children returns the child ids of id in display order.
func (t *Tree) Children(id ID) []ID {
	if n := t.nodes[id]; n != nil {
		return n.Children
	}
	return nil
}

// Siblings returns the ids sharing id's parent, excluding id itself. Roots
// are siblings of each other.
func (t *Tree) Siblings(id ID) []ID {
	n := t.nodes[id]
	if n == nil {
		return nil
	}
	group := t.roots
	if !n.IsRoot {
		group = t.nodes[n.Parent].Children
	}
	out := make([]ID, 0, len(group))
	for _, sid := range group {
		if sid != id {
			out = append(out, sid)
		}
	}
	return out
}

// Ancestors returns the chain from the root down to id's parent.
func (t *Tree) Ancestors(id ID) []ID {
	n := t.nodes[id]
	if n == nil {
		return nil
	}
	var chain []ID
	for !n.IsRoot {
		chain = append(chain, n.Parent)
		n = t.nodes[n.Parent]
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Descendants returns every strict descendant of id in depth-first order.
func (t *Tree) Descendants(id ID) []ID {
	var out []ID
	var visit func(ID)
	visit = func(cur ID) {
		for _, c := range t.Children(cur) {
			out = append(out, c)
			visit(c)
		}
	}
	visit(id)
	return out
}

// Walk visits every node depth-first in display order. Returning false
// from fn skips that node's children.
func (t *Tree) Walk(fn func(n *Node) bool) {
	var visit func(ids []ID)
	visit = func(ids []ID) {
		for _, id := range ids {
			n := t.nodes[id]
			if fn(n) {
				visit(n.Children)
			}
		}
	}
	visit(t.roots)
}

// FindByPath returns every node whose path equals route, in display order.
func (t *Tree) FindByPath(route string) []*Node {
	route = NormalizeRoute(route)
	var out []*Node
	t.Walk(func(n *Node) bool {
		if n.Path != "" && NormalizeRoute(n.Path) == route {
			out = append(out, n)
		}
		return true
	})
	return out
}

// NormalizeRoute trims a trailing slash so "/a/b/" and "/a/b" compare
// equal. The root route is left untouched.
func NormalizeRoute(route string) string {
	if len(route) > 1 {
		route = strings.TrimRight(route, "/")
		if route == "" {
			return "/"
		}
	}
	return route
}
