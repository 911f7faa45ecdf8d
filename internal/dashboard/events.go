package dashboard

import (
	"fmt"
	"log"

	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/session"
	"github.com/scenedash/scenedash/internal/sidebar"
)

// event is a sidebar event as sent by the browser.
type event struct {
	Type   string     `json:"type"` // click, route, viewport, collapse, mobile, outside-click, snapshot
	ID     navtree.ID `json:"id,omitempty"`
	Path   string     `json:"path,omitempty"`
	Width  int        `json:"width,omitempty"`
	Inside bool       `json:"inside,omitempty"`
}

// eventResult is the reply to an event.
type eventResult struct {
	Type     string            `json:"type"` // "snapshot" or "error"
	Navigate string            `json:"navigate,omitempty"`
	Changed  bool              `json:"changed"`
	Snapshot *sidebar.Snapshot `json:"snapshot,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// apply runs ev against the session's controller and returns the new
// snapshot.
func (d *Dashboard) apply(s *session.Session, ev event) (eventResult, error) {
	var (
		eff  sidebar.Effect
		snap sidebar.Snapshot
		err  error
	)

	s.Do(func(c *sidebar.Controller, _ *demos.Values) {
		switch ev.Type {
		case "click":
			wasGroup := false
			if n := c.Tree().Node(ev.ID); n != nil {
				wasGroup = n.IsGroup()
			}
			eff = c.Click(ev.ID)
			if wasGroup && eff.Changed && d.metrics != nil {
				state := "collapsed"
				if c.Expansion().IsExpanded(ev.ID) {
					state = "expanded"
				}
				d.metrics.Toggles.Increment(state)
			}
		case "route":
			eff = c.SetRoute(ev.Path)
		case "viewport":
			eff = c.Resize(ev.Width)
		case "collapse":
			eff = c.ToggleCollapse()
		case "mobile":
			eff = c.ToggleMobile()
		case "outside-click":
			eff = c.OutsideClick(ev.Inside)
		case "snapshot":
		default:
			err = fmt.Errorf("unknown event type: %s", ev.Type)
			return
		}
		snap = c.Snapshot()
	})
	if err != nil {
		return eventResult{}, err
	}

	if d.metrics != nil {
		d.metrics.Events.Increment(ev.Type)
	}
	if d.debug {
		log.Printf("dashboard: session %s %s -> %s changed=%t navigate=%q", s.ID, ev.Type, snap.Mode, eff.Changed, eff.Navigate)
	}

	return eventResult{
		Type:     "snapshot",
		Navigate: eff.Navigate,
		Changed:  eff.Changed,
		Snapshot: &snap,
	}, nil
}
