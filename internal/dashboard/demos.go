package dashboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/scenedash/scenedash/internal/demos"
	"github.com/scenedash/scenedash/internal/sidebar"
)

// demoSummary is one entry of the demo list.
type demoSummary struct {
	Slug    string `json:"slug"`
	Route   string `json:"route"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

// demoResponse is a page plus the session's inspector values.
type demoResponse struct {
	Page   *demos.Page    `json:"page"`
	Values map[string]any `json:"values"`
}

func (d *Dashboard) handleListDemos(w http.ResponseWriter, r *http.Request) {
	out := make([]demoSummary, 0, len(d.catalog.Pages()))
	for _, p := range d.catalog.Pages() {
		out = append(out, demoSummary{Slug: p.Slug, Route: p.Route, Title: p.Title, Summary: p.Summary})
	}
	writeJSON(w, http.StatusOK, out)
}

func (d *Dashboard) handleGetDemo(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	p, err := d.catalog.Page(slug)
	if err != nil {
		writeDemoError(w, err)
		return
	}

	var values map[string]any
	d.sessions.FromRequest(w, r).Do(func(_ *sidebar.Controller, v *demos.Values) {
		values, err = v.Page(slug)
	})
	if err != nil {
		writeDemoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, demoResponse{Page: p, Values: values})
}

func (d *Dashboard) handleSetControl(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	key, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid control key"})
		return
	}

	var body struct {
		Value any `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	var value any
	d.sessions.FromRequest(w, r).Do(func(_ *sidebar.Controller, v *demos.Values) {
		value, err = v.Set(slug, key, body.Value)
	})
	if err != nil {
		writeDemoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key": key, "value": value})
}

func (d *Dashboard) handleResetControls(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if _, err := d.catalog.Page(slug); err != nil {
		writeDemoError(w, err)
		return
	}
	d.sessions.FromRequest(w, r).Do(func(_ *sidebar.Controller, v *demos.Values) {
		v.Reset(slug)
	})
	w.WriteHeader(http.StatusNoContent)
}

func writeDemoError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, demos.ErrUnknownPage), errors.Is(err, demos.ErrUnknownControl):
		status = http.StatusNotFound
	case errors.Is(err, demos.ErrInvalidValue):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
