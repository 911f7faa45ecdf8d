package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/navtree"
	"github.com/scenedash/scenedash/internal/sidebar"
)

func (d *Dashboard) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	s := d.sessions.FromRequest(w, r)
	var snap sidebar.Snapshot
	s.Do(func(c *sidebar.Controller, _ *demos.Values) { snap = c.Snapshot() })
	writeJSON(w, http.StatusOK, snap)
}

func (d *Dashboard) handleClick(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid node id"})
		return
	}
	d.dispatch(w, r, event{Type: "click", ID: navtree.ID(id)})
}

func (d *Dashboard) handleRoute(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Path string `json:"path"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	d.dispatch(w, r, event{Type: "route", Path: body.Path})
}

func (d *Dashboard) handleViewport(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Width int `json:"width"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	d.dispatch(w, r, event{Type: "viewport", Width: body.Width})
}

func (d *Dashboard) handleOutsideClick(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Inside bool `json:"inside"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	d.dispatch(w, r, event{Type: "outside-click", Inside: body.Inside})
}

func (d *Dashboard) handleSimple(typ string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.dispatch(w, r, event{Type: typ})
	}
}

func (d *Dashboard) dispatch(w http.ResponseWriter, r *http.Request, ev event) {
	s := d.sessions.FromRequest(w, r)
	res, err := d.apply(s, ev)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
