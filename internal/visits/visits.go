package visits

import (
	"time"

	"github.com/scenedash/scenedash/internal/navtree"
)

// Visit is one navigation request dispatched from the sidebar.
type Visit struct {
	ID        string     `json:"id"`
	SessionID string     `json:"session_id"`
	NodeID    navtree.ID `json:"node_id"`
	Path      string     `json:"path"`
	VisitedAt time.Time  `json:"visited_at"`
}

// PathCount is an aggregate row for the most visited routes.
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}
