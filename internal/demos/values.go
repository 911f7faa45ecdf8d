package demos

import "fmt"

// Values holds one visitor's inspector values, keyed by page slug and then
// by control key. Unset controls read as their default.
type Values struct {
	catalog *Catalog
	set     map[string]map[string]any
}

// NewValues returns an empty value set over c.
func NewValues(c *Catalog) *Values {
	return &Values{catalog: c, set: make(map[string]map[string]any)}
}

// Get returns the current value of a control.
func (v *Values) Get(slug, key string) (any, error) {
	p, err := v.catalog.Page(slug)
	if err != nil {
		return nil, err
	}
	ctl := p.Control(key)
	if ctl == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownControl, slug, key)
	}
	if val, ok := v.set[slug][key]; ok {
		return val, nil
	}
	return ctl.Default, nil
}

// Set validates raw against the control and stores the normalized value.
func (v *Values) Set(slug, key string, raw any) (any, error) {
	p, err := v.catalog.Page(slug)
	if err != nil {
		return nil, err
	}
	ctl := p.Control(key)
	if ctl == nil {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownControl, slug, key)
	}
	val, err := ctl.Normalize(raw)
	if err != nil {
		return nil, err
	}
	if v.set[slug] == nil {
		v.set[slug] = make(map[string]any)
	}
	v.set[slug][key] = val
	return val, nil
}

// Page returns every control value of a page, defaults included.
func (v *Values) Page(slug string) (map[string]any, error) {
	p, err := v.catalog.Page(slug)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(p.controls))
	for _, ctl := range p.Controls() {
		out[ctl.Key] = ctl.Default
	}
	for k, val := range v.set[slug] {
		out[k] = val
	}
	return out, nil
}

// Reset drops every value set on a page.
func (v *Values) Reset(slug string) {
	delete(v.set, slug)
}
