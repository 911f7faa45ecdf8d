package navtree

import (
	"fmt"
	"strings"
)

// Outline renders the tree as an indented text listing. Active nodes are
// marked with "*".
func (t *Tree) Outline(active ActiveSet) string {
	var b strings.Builder
	t.Walk(func(n *Node) bool {
		marker := " "
		if active.Has(n.ID) {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s%s %s [%d]", strings.Repeat("  ", n.Depth), marker, n.Name, n.ID)
		switch n.Kind {
		case KindLeaf, KindGroupWithPath:
			fmt.Fprintf(&b, " %s", n.Path)
		case KindInert:
			b.WriteString(" (disabled)")
		}
		b.WriteString("\n")
		return true
	})
	return b.String()
}

// Breadcrumb returns the names along the chain root..id joined by " / ".
func (t *Tree) Breadcrumb(id ID) string {
	n := t.nodes[id]
	if n == nil {
		return ""
	}
	var parts []string
	for _, a := range t.Ancestors(id) {
		parts = append(parts, t.nodes[a].Name)
	}
	parts = append(parts, n.Name)
	return strings.Join(parts, " / ")
}
