package presentation

// Layout holds the user flags and last known viewport width for one
// sidebar. Its zero value is not usable; call NewLayout.
type Layout struct {
	breakpoint int
	width      int // 0 until the first resize
	collapsed  bool
	mobileOpen bool
}

// NewLayout returns a desktop-expanded layout. A non-positive breakpoint
// falls back to DefaultBreakpoint.
func NewLayout(breakpoint int) *Layout {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Layout{breakpoint: breakpoint}
}

// Breakpoint returns the configured breakpoint.
func (l *Layout) Breakpoint() int { return l.breakpoint }

// Width returns the last viewport width, or 0 before the first resize.
func (l *Layout) Width() int { return l.width }

// Collapsed reports the desktop icon-rail flag.
func (l *Layout) Collapsed() bool { return l.collapsed }

// MobileOpen reports the overlay flag.
func (l *Layout) MobileOpen() bool { return l.mobileOpen }

// Mode resolves the current presentation. Before any resize the viewport
// is unknown and the desktop layout is assumed.
func (l *Layout) Mode() Mode {
	width := l.width
	if width == 0 {
		width = l.breakpoint
	}
	return Resolve(width, l.breakpoint, l.collapsed, l.mobileOpen)
}

// Resize records a new viewport width. An open overlay is force-closed
// once the viewport reaches the desktop layout, so a later shrink does not
// flash the overlay. Non-positive widths are ignored.
func (l *Layout) Resize(width int) {
	if width <= 0 {
		return
	}
	l.width = width
	if width >= l.breakpoint && l.mobileOpen {
		l.mobileOpen = false
	}
}

// ToggleCollapse flips the desktop icon-rail flag. The flag is remembered
// on narrow viewports but has no effect there.
func (l *Layout) ToggleCollapse() {
	l.collapsed = !l.collapsed
}

// ToggleMobile flips the overlay flag. It is ignored on desktop widths.
func (l *Layout) ToggleMobile() {
	if !l.Mode().IsMobile() {
		return
	}
	l.mobileOpen = !l.mobileOpen
}

// CloseMobile closes the overlay if it is open.
func (l *Layout) CloseMobile() {
	l.mobileOpen = false
}

// OutsideClick closes an open overlay when the pointer landed outside the
// sidebar element. It reports whether anything changed.
func (l *Layout) OutsideClick(insideSidebar bool) bool {
	if insideSidebar || l.Mode() != ModeMobileOverlayOpen {
		return false
	}
	l.mobileOpen = false
	return true
}
