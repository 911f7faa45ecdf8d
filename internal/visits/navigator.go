package visits

import (
	"context"
	"log"

	"github.com/scenedash/scenedash/internal/metrics"
	"github.com/scenedash/scenedash/internal/navtree"
)

// Navigator records every navigation request of one session. It satisfies
// sidebar.Navigator.
type Navigator struct {
	Store     *Store
	SessionID string
	// Counter, when set, is incremented with the path label.
	Counter metrics.IncrementalCounter
}

// Navigate stores the visit against the clicked node. Failures are logged;
// navigation itself never fails.
func (n *Navigator) Navigate(id navtree.ID, path string) {
	if n.Counter != nil {
		n.Counter.Increment(path)
	}
	if n.Store == nil {
		return
	}

	if _, err := n.Store.Record(context.Background(), Visit{
		SessionID: n.SessionID,
		NodeID:    id,
		Path:      path,
	}); err != nil {
		log.Printf("visits: recording %s: %v", path, err)
	}
}
