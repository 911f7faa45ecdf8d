// Package sidebar composes the navigation tree, the expansion state and
// the responsive layout into the controller owned by one browser session.
package sidebar

import (
	"github.com/scenedash/scenedash/internal/expansion"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/presentation"
)

// Navigator receives route transitions for navigable leaves, together with
// the id of the clicked node. Transitions are synchronous and always succeed.
type Navigator interface {
	Navigate(id navtree.ID, path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(id navtree.ID, path string)

// Navigate calls f(id, path).
func (f NavigatorFunc) Navigate(id navtree.ID, path string) { f(id, path) }

// Options configure a Controller.
type Options struct {
	// Breakpoint is the mobile/desktop boundary in pixels.
	Breakpoint int
	// AutoExpandActive opens the ancestors of the active node the first
	// time a route is reported.
	AutoExpandActive bool
}

// Effect describes what an event caused outside the controller.
type Effect struct {
	Navigate string `json:"navigate,omitempty"`
	Changed  bool   `json:"changed"`
}

// Controller owns the expansion state and layout of one sidebar. It is not
// safe for concurrent use; callers serialize events per session.
type Controller struct {
	tree      *navtree.Tree
	nav       Navigator
	opts      Options
	expansion expansion.State
	layout    *presentation.Layout
	route     string
	active    navtree.ActiveSet
	routed    bool
}

// New returns a controller with every group collapsed and no route. nav
// may be nil.
func New(tree *navtree.Tree, nav Navigator, opts Options) *Controller {
	return &Controller{
		tree:      tree,
		nav:       nav,
		opts:      opts,
		expansion: expansion.New(),
		layout:    presentation.NewLayout(opts.Breakpoint),
		active:    navtree.ActiveSet{},
	}
}

// Tree returns the navigation tree.
func (c *Controller) Tree() *navtree.Tree { return c.tree }

// Expansion returns the current expansion state.
func (c *Controller) Expansion() expansion.State { return c.expansion }

// Mode returns the current presentation mode.
func (c *Controller) Mode() presentation.Mode { return c.layout.Mode() }

// Route returns the current route.
func (c *Controller) Route() string { return c.route }

// Active returns the active set for the current route.
func (c *Controller) Active() navtree.ActiveSet { return c.active }

// SetRoute records a route change from the router and recomputes the
// active set.
func (c *Controller) SetRoute(path string) Effect {
	path = navtree.NormalizeRoute(path)
	first := !c.routed
	c.routed = true
	if path == c.route && !first {
		return Effect{}
	}

	c.route = path
	c.active = c.tree.ComputeActive(path)

	if first && c.opts.AutoExpandActive {
		for _, n := range c.tree.FindByPath(path) {
			c.expansion = expansion.ExpandTo(c.tree, c.expansion, n.ID)
			break
		}
	}
	return Effect{Changed: true}
}

// Click handles a click on the row for id. Groups toggle expansion, even
// when they also carry a path. Leaves navigate and close an open mobile
// overlay. Inert, hidden and unknown ids are ignored.
func (c *Controller) Click(id navtree.ID) Effect {
	n := c.tree.Node(id)
	if n == nil || !c.visible(n) {
		return Effect{}
	}

	switch {
	case n.IsGroup():
		if c.layout.Mode() == presentation.ModeCollapsed {
			// The icon rail shows no children to expand into.
			return Effect{}
		}
		next := expansion.Toggle(c.tree, c.expansion, id)
		changed := !next.Equal(c.expansion)
		c.expansion = next
		return Effect{Changed: changed}

	case n.IsNavigable():
		if c.layout.Mode() == presentation.ModeMobileOverlayOpen {
			c.layout.CloseMobile()
		}
		if c.nav != nil {
			c.nav.Navigate(n.ID, n.Path)
		}
		c.SetRoute(n.Path)
		return Effect{Navigate: n.Path, Changed: true}
	}

	return Effect{}
}

// Resize records a viewport width change.
func (c *Controller) Resize(width int) Effect {
	before := c.layout.Mode()
	c.layout.Resize(width)
	return Effect{Changed: before != c.layout.Mode()}
}

// ToggleCollapse flips the desktop icon rail. Expansion state is kept so
// re-expanding restores the open groups.
func (c *Controller) ToggleCollapse() Effect {
	before := c.layout.Mode()
	c.layout.ToggleCollapse()
	return Effect{Changed: before != c.layout.Mode()}
}

// ToggleMobile flips the mobile overlay.
func (c *Controller) ToggleMobile() Effect {
	before := c.layout.Mode()
	c.layout.ToggleMobile()
	return Effect{Changed: before != c.layout.Mode()}
}

// OutsideClick handles a pointer press; inside reports whether it landed
// within the sidebar element.
func (c *Controller) OutsideClick(inside bool) Effect {
	return Effect{Changed: c.layout.OutsideClick(inside)}
}

// visible reports whether the row for n is currently rendered.
func (c *Controller) visible(n *navtree.Node) bool {
	if c.layout.Mode() == presentation.ModeCollapsed {
		return n.IsRoot
	}
	for _, a := range c.tree.Ancestors(n.ID) {
		if !c.expansion.IsExpanded(a) {
			return false
		}
	}
	return true
}
