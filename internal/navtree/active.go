package navtree

import "sort"

// ActiveSet is the set of node ids on the path from a root to any node
// whose path matches the current route.
type ActiveSet map[ID]struct{}

// Has reports whether id is active.
func (a ActiveSet) Has(id ID) bool {
	_, ok := a[id]
	return ok
}

// IDs returns the active ids in ascending order.
func (a ActiveSet) IDs() []ID {
	out := make([]ID, 0, len(a))
	for id := range a {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ComputeActive marks a node active when its path equals route or when any
// descendant is active. Every branch is visited, so several leaves sharing
// a route are all reported.
func (t *Tree) ComputeActive(route string) ActiveSet {
	route = NormalizeRoute(route)
	active := make(ActiveSet)

	var visit func(id ID) bool
	visit = func(id ID) bool {
		n := t.nodes[id]
		hit := n.Path != "" && NormalizeRoute(n.Path) == route
		for _, c := range n.Children {
			if visit(c) {
				hit = true
			}
		}
		if hit {
			active[id] = struct{}{}
		}
		return hit
	}

	for _, id := range t.roots {
		visit(id)
	}
	return active
}
