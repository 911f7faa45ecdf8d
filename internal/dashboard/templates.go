package dashboard

import (
	_ "embed"
	"html/template"
	"log"
	"net/http"

	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/sidebar"
	"github.com/scenedash/scenedash/internal/visits"
)

//go:embed layout.html
var layoutHTML string

var layoutTmpl = template.Must(template.New("layout").Parse(layoutHTML))

// pageData feeds layout.html.
type pageData struct {
	Title      string
	Breadcrumb string
	Sidebar    sidebar.Snapshot
	Page       *demos.Page
	Controls   []controlView
	Pages      []*demos.Page
	Top        []visits.PathCount
	Home       bool
	Pending    bool
	NotFound   bool
}

// controlView pairs a control with the session's current value.
type controlView struct {
	*demos.Control
	Value any
}

// servePage renders the layout for any page route. Routes in the menu
// without a demo page get a placeholder; everything else is a 404.
func (d *Dashboard) servePage(w http.ResponseWriter, r *http.Request) {
	route := navtree.NormalizeRoute(r.URL.Path)
	if route == "" {
		route = "/"
	}

	data := pageData{Title: "Dashboard", Pages: d.catalog.Pages()}
	status := http.StatusOK

	matches := d.tree.FindByPath(route)
	switch {
	case route == "/":
		data.Home = true
		if d.visitStore != nil {
			top, err := d.visitStore.Top(r.Context(), 5)
			if err != nil {
				log.Printf("dashboard: loading top visits: %v", err)
			}
			data.Top = top
		}
	case d.catalog.ByRoute(route) != nil:
		data.Page = d.catalog.ByRoute(route)
		data.Title = data.Page.Title
	case len(matches) > 0:
		data.Pending = true
		data.Title = matches[0].Name
	default:
		data.NotFound = true
		data.Title = "Not found"
		status = http.StatusNotFound
	}
	if len(matches) > 0 {
		data.Breadcrumb = d.tree.Breadcrumb(matches[0].ID)
	}

	s := d.sessions.FromRequest(w, r)
	s.Do(func(c *sidebar.Controller, v *demos.Values) {
		c.SetRoute(route)
		data.Sidebar = c.Snapshot()
		if data.Page != nil {
			for _, ctl := range data.Page.Controls() {
				val, _ := v.Get(data.Page.Slug, ctl.Key)
				data.Controls = append(data.Controls, controlView{Control: ctl, Value: val})
			}
		}
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := layoutTmpl.Execute(w, data); err != nil {
		log.Printf("dashboard: rendering %s: %v", route, err)
	}
}
