package expansion

import "github.com/scenedash/scenedash/internal/navtree"

// Toggle applies a click on id and returns the resulting state. The input
// state is never modified.
//
// Clicking an open group closes it together with all of its descendants.
// Clicking a closed group opens it and closes every other open sibling
// group under the same parent, descendants included. Leaves, inert nodes
// and unknown ids leave the state unchanged.
func Toggle(tree *navtree.Tree, s State, id navtree.ID) State {
	n := tree.Node(id)
	if n == nil || !n.IsGroup() {
		return s
	}

	next := s.Clone()
	if next.open[id] {
		next.collapse(tree, id)
		return next
	}

	next.open[id] = true
	closeSiblings(tree, next, id)
	return next
}

// ExpandTo opens every ancestor of id, closing competing siblings along the
// way. id itself is opened only when it is a group. Unknown ids are a no-op.
func ExpandTo(tree *navtree.Tree, s State, id navtree.ID) State {
	n := tree.Node(id)
	if n == nil {
		return s
	}

	chain := tree.Ancestors(id)
	if n.IsGroup() {
		chain = append(chain, id)
	}

	next := s.Clone()
	for _, a := range chain {
		if !next.open[a] {
			next.open[a] = true
		}
		closeSiblings(tree, next, a)
	}
	return next
}

func closeSiblings(tree *navtree.Tree, s State, id navtree.ID) {
	for _, sib := range tree.Siblings(id) {
		sn := tree.Node(sib)
		if sn.IsGroup() && s.open[sib] {
			s.collapse(tree, sib)
		}
	}
}
