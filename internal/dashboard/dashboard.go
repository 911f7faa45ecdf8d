// Package dashboard serves the scene dashboard: the server-rendered layout,
// the sidebar event API over HTTP and websocket, and the demo inspector API.
package dashboard

import (
	"github.com/go-chi/chi/v5"

	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/metrics"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/session"
	"github.com/scenedash/scenedash/internal/visits"
)

// Dashboard holds everything the page and API handlers need.
type Dashboard struct {
	tree       *navtree.Tree
	catalog    *demos.Catalog
	sessions   *session.Manager
	visitStore *visits.Store
	metrics    *metrics.Metrics
	debug      bool
}

// New creates a new Dashboard. visitStore and m may be nil.
func New(tree *navtree.Tree, catalog *demos.Catalog, sessions *session.Manager, visitStore *visits.Store, m *metrics.Metrics, debug bool) *Dashboard {
	return &Dashboard{
		tree:       tree,
		catalog:    catalog,
		sessions:   sessions,
		visitStore: visitStore,
		metrics:    m,
		debug:      debug,
	}
}

// RegisterRoutes mounts all dashboard routes onto the given router.
func (d *Dashboard) RegisterRoutes(r chi.Router) {
	r.Get("/", d.servePage)
	r.Get("/dashboard/*", d.servePage)
	r.NotFound(d.servePage)

	r.Route("/api/sidebar", func(r chi.Router) {
		r.Get("/", d.handleSnapshot)
		r.Post("/click/{id}", d.handleClick)
		r.Post("/route", d.handleRoute)
		r.Post("/viewport", d.handleViewport)
		r.Post("/collapse", d.handleSimple("collapse"))
		r.Post("/mobile", d.handleSimple("mobile"))
		r.Post("/outside-click", d.handleOutsideClick)
	})
	r.Get("/ws/sidebar", d.handleWebSocket)

	r.Route("/api/demos", func(r chi.Router) {
		r.Get("/", d.handleListDemos)
		r.Get("/{slug}", d.handleGetDemo)
		r.Put("/{slug}/controls/*", d.handleSetControl)
		r.Delete("/{slug}/controls", d.handleResetControls)
	})
}
