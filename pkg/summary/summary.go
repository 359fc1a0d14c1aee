package summary

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formstore/pkg/formstate"
	"github.com/goliatone/go-formstore/pkg/site"
)

// Template names looked up in the template filesystem.
const (
	ContactTemplate   = "contact.txt"
	TrademarkTemplate = "trademark.txt"
)

//go:embed templates/*.txt
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in templates.
func TemplatesFS() fs.FS {
	sub, _ := fs.Sub(embeddedTemplates, "templates")
	return sub
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSite sets the site configuration exposed to templates as "site".
func WithSite(cfg *site.Config) Option {
	return func(r *Renderer) {
		if cfg != nil {
			r.site = cfg
		}
	}
}

// WithTemplates replaces the built-in templates.
func WithTemplates(fsys fs.FS) Option {
	return func(r *Renderer) {
		if fsys != nil {
			r.templates = fsys
		}
	}
}

// Renderer turns drafts into text.
type Renderer struct {
	mu        sync.Mutex
	set       *pongo2.TemplateSet
	cache     map[string]*pongo2.Template
	templates fs.FS
	site      *site.Config
}

// New constructs a Renderer using the built-in templates and default site
// configuration unless overridden.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		templates: TemplatesFS(),
		site:      site.Default(),
		cache:     make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.templates == nil {
		return nil, errors.New("summary: template filesystem is nil")
	}
	r.set = pongo2.NewSet("formstore-summary", pongo2.NewFSLoader(r.templates))
	return r, nil
}

// Contact renders a contact draft.
func (r *Renderer) Contact(form formstate.ContactForm) (string, error) {
	return r.render(ContactTemplate, pongo2.Context{"contact": form})
}

// Trademark renders a trademark inquiry draft.
func (r *Renderer) Trademark(inquiry formstate.TrademarkInquiry) (string, error) {
	return r.render(TrademarkTemplate, pongo2.Context{"trademark": inquiry})
}

// Record renders whichever draft record names from snapshot.
func (r *Renderer) Record(record formstate.Record, snapshot formstate.Snapshot) (string, error) {
	switch record {
	case formstate.RecordContact:
		return r.Contact(snapshot.Contact)
	case formstate.RecordTrademark:
		return r.Trademark(snapshot.Trademark)
	default:
		return "", fmt.Errorf("summary: unknown record %q", record)
	}
}

func (r *Renderer) render(name string, data pongo2.Context) (string, error) {
	tmpl, err := r.template(name)
	if err != nil {
		return "", err
	}
	data["site"] = r.site
	out, err := tmpl.Execute(data)
	if err != nil {
		return "", fmt.Errorf("summary: execute %s: %w", name, err)
	}
	return strings.TrimSpace(out) + "\n", nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.cache[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("summary: load %s: %w", name, err)
	}
	r.cache[name] = tmpl
	return tmpl, nil
}
