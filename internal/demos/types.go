package demos

import "html/template"

// ControlKind identifies the inspector widget backing a control.
type ControlKind string

const (
	KindRange  ControlKind = "range"
	KindBool   ControlKind = "bool"
	KindColor  ControlKind = "color"
	KindSelect ControlKind = "select"
)

// Control is one inspector entry bound to a scene property.
type Control struct {
	Name    string      `yaml:"name" json:"name"`
	Label   string      `yaml:"label,omitempty" json:"label,omitempty"`
	Kind    ControlKind `yaml:"kind" json:"kind"`
	Target  string      `yaml:"target" json:"target"` // e.g. "cube.rotation.x"
	Min     float64     `yaml:"min,omitempty" json:"min,omitempty"`
	Max     float64     `yaml:"max,omitempty" json:"max,omitempty"`
	Step    float64     `yaml:"step,omitempty" json:"step,omitempty"`
	Options []string    `yaml:"options,omitempty" json:"options,omitempty"`
	Default any         `yaml:"default" json:"default"`

	// Key is the slash-joined folder path plus name, unique within a page.
	Key string `yaml:"-" json:"key"`
}

// Folder groups controls the way the inspector panel nests them.
type Folder struct {
	Name     string    `yaml:"name" json:"name"`
	Controls []Control `yaml:"controls,omitempty" json:"controls,omitempty"`
	Folders  []Folder  `yaml:"folders,omitempty" json:"folders,omitempty"`
}

// Object is a scene entry described by literal constructor parameters.
type Object struct {
	Name   string         `yaml:"name" json:"name"`
	Kind   string         `yaml:"kind" json:"kind"`
	Parent string         `yaml:"parent,omitempty" json:"parent,omitempty"`
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// Page is one demo page of the dashboard.
type Page struct {
	Slug    string   `yaml:"slug" json:"slug"`
	Route   string   `yaml:"route" json:"route"`
	Title   string   `yaml:"title" json:"title"`
	Summary string   `yaml:"summary" json:"summary"`
	Notes   string   `yaml:"notes,omitempty" json:"-"`
	Camera  Object   `yaml:"camera" json:"camera"`
	Objects []Object `yaml:"objects" json:"objects"`
	Folders []Folder `yaml:"folders" json:"folders"`

	NotesMarkdown string              `yaml:"-" json:"-"`
	NotesHTML     template.HTML       `yaml:"-" json:"notes_html,omitempty"`
	controls      map[string]*Control `yaml:"-" json:"-"`
}

// Control returns the control with the given key, or nil.
func (p *Page) Control(key string) *Control {
	return p.controls[key]
}

// Controls returns every control of the page in declaration order.
func (p *Page) Controls() []*Control {
	var out []*Control
	var visit func(fs []Folder)
	visit = func(fs []Folder) {
		for i := range fs {
			for j := range fs[i].Controls {
				out = append(out, p.controls[fs[i].Controls[j].Key])
			}
			visit(fs[i].Folders)
		}
	}
	visit(p.Folders)
	return out
}
