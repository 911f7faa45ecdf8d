// Package expansion tracks which navigation groups are open and enforces
// that only one sibling group per parent is open at a time.
package expansion

import (
	"sort"

	"github.com/scenedash/scenedash/internal/navtree"
)

// State maps a node id to its expanded flag. A missing id is collapsed.
// Values are treated as immutable by the transition functions.
type State struct {
	open map[navtree.ID]bool
}

// New returns an empty state with every node collapsed.
func New() State {
	return State{open: make(map[navtree.ID]bool)}
}

// FromIDs returns a state with the given ids expanded. It performs no
// sibling validation and is meant for tests and fixtures.
func FromIDs(ids ...navtree.ID) State {
	s := New()
	for _, id := range ids {
		s.open[id] = true
	}
	return s
}

// IsExpanded reports whether id is open.
func (s State) IsExpanded(id navtree.ID) bool {
	return s.open[id]
}

// Len returns the number of expanded entries.
func (s State) Len() int { return len(s.open) }

// Expanded returns the open ids in ascending order.
func (s State) Expanded() []navtree.ID {
	out := make([]navtree.ID, 0, len(s.open))
	for id, ok := range s.open {
		if ok {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy.
func (s State) Clone() State {
	c := State{open: make(map[navtree.ID]bool, len(s.open))}
	for id, v := range s.open {
		c.open[id] = v
	}
	return c
}

// Equal reports structural equality of the two maps.
func (s State) Equal(other State) bool {
	if len(s.open) != len(other.open) {
		return false
	}
	for id, v := range s.open {
		if ov, ok := other.open[id]; !ok || ov != v {
			return false
		}
	}
	return true
}

// collapse removes id and every descendant entry in place.
func (s State) collapse(tree *navtree.Tree, id navtree.ID) {
	delete(s.open, id)
	for _, d := range tree.Descendants(id) {
		delete(s.open, d)
	}
}
