// Package presentation decides how the sidebar is laid out for a viewport.
// It never touches expansion state.
package presentation

// DefaultBreakpoint is the viewport width, in CSS pixels, at which the
// sidebar switches from the mobile overlay to the inline desktop layout.
const DefaultBreakpoint = 1024

// Mode is the sidebar presentation.
type Mode string

const (
	ModeExpanded            Mode = "expanded"
	ModeCollapsed           Mode = "collapsed"
	ModeMobileOverlayOpen   Mode = "mobile-overlay-open"
	ModeMobileOverlayClosed Mode = "mobile-overlay-closed"
)

// IsMobile reports whether the mode is one of the overlay variants.
func (m Mode) IsMobile() bool {
	return m == ModeMobileOverlayOpen || m == ModeMobileOverlayClosed
}

// ShowsLabels reports whether row labels are visible.
func (m Mode) ShowsLabels() bool {
	return m != ModeCollapsed && m != ModeMobileOverlayClosed
}

// Resolve maps the viewport width and the two user flags to a Mode. Below
// the breakpoint only mobileOpen matters; at or above it only collapsed
// matters.
func Resolve(width, breakpoint int, collapsed, mobileOpen bool) Mode {
	if width < breakpoint {
		if mobileOpen {
			return ModeMobileOverlayOpen
		}
		return ModeMobileOverlayClosed
	}
	if collapsed {
		return ModeCollapsed
	}
	return ModeExpanded
}
