// Package demos holds the catalog of 3D demo pages: their scene objects,
// the property-inspector controls registered for them, and the rendered
// notes shown beside each scene.
package demos

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml notes/*.md
var content embed.FS

var (
	// ErrUnknownPage is returned when a slug is not in the catalog.
	ErrUnknownPage = errors.New("unknown demo page")
	// ErrUnknownControl is returned when a control key is not on the page.
	ErrUnknownControl = errors.New("unknown control")
	// ErrInvalidValue is returned when a value does not fit its control.
	ErrInvalidValue = errors.New("invalid control value")
)

// Catalog is the immutable set of demo pages.
type Catalog struct {
	pages   []*Page
	bySlug  map[string]*Page
	byRoute map[string]*Page
}

type catalogFile struct {
	Pages []*Page `yaml:"pages"`
}

// Default loads the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Load(content, "catalog.yaml")
}

// Load reads a catalog document and its notes from fsys. Note paths in the
// document are resolved relative to the catalog file.
func Load(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", name, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", name, err)
	}

	md := newMarkdown()
	c := &Catalog{
		bySlug:  make(map[string]*Page),
		byRoute: make(map[string]*Page),
	}

	for _, p := range f.Pages {
		if p.Slug == "" || p.Route == "" {
			return nil, fmt.Errorf("page %q: slug and route are required", p.Title)
		}
		if _, dup := c.bySlug[p.Slug]; dup {
			return nil, fmt.Errorf("duplicate page slug %q", p.Slug)
		}
		if _, dup := c.byRoute[p.Route]; dup {
			return nil, fmt.Errorf("duplicate page route %q", p.Route)
		}

		if err := indexControls(p); err != nil {
			return nil, fmt.Errorf("page %s: %w", p.Slug, err)
		}

		if p.Notes != "" {
			src, err := fs.ReadFile(fsys, path.Join(path.Dir(name), p.Notes))
			if err != nil {
				return nil, fmt.Errorf("page %s: reading notes: %w", p.Slug, err)
			}
			var buf bytes.Buffer
			if err := md.Convert(src, &buf); err != nil {
				return nil, fmt.Errorf("page %s: converting notes: %w", p.Slug, err)
			}
			p.NotesMarkdown = string(src)
			p.NotesHTML = template.HTML(buf.String())
		}

		c.pages = append(c.pages, p)
		c.bySlug[p.Slug] = p
		c.byRoute[p.Route] = p
	}

	return c, nil
}

// newMarkdown configures goldmark with GFM and syntax highlighting for the
// scene-setup snippets in the notes.
func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)
}

func indexControls(p *Page) error {
	p.controls = make(map[string]*Control)

	var visit func(prefix string, fs []Folder) error
	visit = func(prefix string, fs []Folder) error {
		for i := range fs {
			dir := path.Join(prefix, fs[i].Name)
			for j := range fs[i].Controls {
				ctl := &fs[i].Controls[j]
				ctl.Key = path.Join(dir, ctl.Name)
				if _, dup := p.controls[ctl.Key]; dup {
					return fmt.Errorf("duplicate control %q", ctl.Key)
				}
				if err := ctl.validate(); err != nil {
					return fmt.Errorf("control %q: %w", ctl.Key, err)
				}
				p.controls[ctl.Key] = ctl
			}
			if err := visit(dir, fs[i].Folders); err != nil {
				return err
			}
		}
		return nil
	}
	return visit("", p.Folders)
}

// Pages returns every page in catalog order.
func (c *Catalog) Pages() []*Page { return c.pages }

// Page looks up a page by slug.
func (c *Catalog) Page(slug string) (*Page, error) {
	p, ok := c.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, slug)
	}
	return p, nil
}

// ByRoute returns the page served at route, or nil.
func (c *Catalog) ByRoute(route string) *Page {
	return c.byRoute[route]
}
