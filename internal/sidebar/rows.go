package sidebar

import (
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/presentation"
)

// Row is the view model for one rendered sidebar entry.
type Row struct {
	ID         navtree.ID `json:"id"`
	Label      string     `json:"label"`
	Icon       string     `json:"icon"`
	Path       string     `json:"path,omitempty"`
	Level      int        `json:"level"`
	Active     bool       `json:"active"`
	Expandable bool       `json:"expandable"`
	Expanded   bool       `json:"expanded"`
	Navigable  bool       `json:"navigable"`
	Disabled   bool       `json:"disabled"`
}

// Snapshot is the full rendered state of a sidebar.
type Snapshot struct {
	Route      string            `json:"route"`
	Mode       presentation.Mode `json:"mode"`
	ShowLabels bool              `json:"show_labels"`
	Width      int               `json:"width"`
	Breakpoint int               `json:"breakpoint"`
	Collapsed  bool              `json:"collapsed"`
	MobileOpen bool              `json:"mobile_open"`
	Expanded   []navtree.ID      `json:"expanded"`
	Active     []navtree.ID      `json:"active"`
	Rows       []Row             `json:"rows"`
}

// Rows returns the visible rows in display order. Children of collapsed
// groups are omitted; the icon rail shows only root rows.
func (c *Controller) Rows() []Row {
	rail := c.layout.Mode() == presentation.ModeCollapsed
	rows := make([]Row, 0, c.tree.Len())

	c.tree.Walk(func(n *navtree.Node) bool {
		expanded := c.expansion.IsExpanded(n.ID)
		rows = append(rows, Row{
			ID:         n.ID,
			Label:      n.Name,
			Icon:       n.Icon,
			Path:       rowPath(n),
			Level:      n.Depth,
			Active:     c.active.Has(n.ID),
			Expandable: n.IsGroup(),
			Expanded:   expanded && n.IsGroup(),
			Navigable:  n.IsNavigable(),
			Disabled:   n.Kind == navtree.KindInert,
		})
		return !rail && expanded
	})
	return rows
}

// Snapshot captures rows, layout and expansion for rendering.
func (c *Controller) Snapshot() Snapshot {
	mode := c.layout.Mode()
	return Snapshot{
		Route:      c.route,
		Mode:       mode,
		ShowLabels: mode.ShowsLabels(),
		Width:      c.layout.Width(),
		Breakpoint: c.layout.Breakpoint(),
		Collapsed:  c.layout.Collapsed(),
		MobileOpen: c.layout.MobileOpen(),
		Expanded:   c.expansion.Expanded(),
		Active:     c.active.IDs(),
		Rows:       c.Rows(),
	}
}

// rowPath exposes a link target only for nodes that navigate.
func rowPath(n *navtree.Node) string {
	if n.IsNavigable() {
		return n.Path
	}
	return ""
}
