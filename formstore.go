package formstore

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-formstore/pkg/formstate"
	"github.com/goliatone/go-formstore/pkg/prompt"
	"github.com/goliatone/go-formstore/pkg/site"
	"github.com/goliatone/go-formstore/pkg/summary"
)

// Container aliases formstate.Container so callers can depend on the root
// package only.
type Container = formstate.Container

// ContactForm aliases formstate.ContactForm.
type ContactForm = formstate.ContactForm

// TrademarkInquiry aliases formstate.TrademarkInquiry.
type TrademarkInquiry = formstate.TrademarkInquiry

// NewContainer exposes the container constructor from the top-level module.
func NewContainer(options ...formstate.Option) *Container {
	return formstate.NewContainer(options...)
}

// Session bundles the per-visitor container with the collaborators that read
// it. Create one Session per visitor session and hand its Container to every
// component that needs the drafts.
type Session struct {
	Container *Container
	Site      *site.Config
	Summary   *summary.Renderer
}

// SessionOption configures NewSession.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	site     *site.Config
	logger   *zap.Logger
	sanitize bool
}

// WithSite sets the site configuration. site.Default is used otherwise.
func WithSite(cfg *site.Config) SessionOption {
	return func(c *sessionConfig) {
		if cfg != nil {
			c.site = cfg
		}
	}
}

// WithLogger sets the logger handed to the container.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(c *sessionConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSanitizing toggles stripping markup from every stored string with
// formstate.NewStrictSanitizer. It is off by default so values are stored
// exactly as written; turn it on only when drafts are embedded in HTML.
func WithSanitizing(enabled bool) SessionOption {
	return func(c *sessionConfig) {
		c.sanitize = enabled
	}
}

// NewSession creates a fresh container with default drafts plus a summary
// renderer bound to the site configuration.
func NewSession(options ...SessionOption) (*Session, error) {
	cfg := &sessionConfig{
		site:     site.Default(),
		logger:   zap.NewNop(),
		sanitize: false,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	containerOpts := []formstate.Option{formstate.WithLogger(cfg.logger)}
	if cfg.sanitize {
		containerOpts = append(containerOpts, formstate.WithSanitizer(formstate.NewStrictSanitizer()))
	}

	renderer, err := summary.New(summary.WithSite(cfg.site))
	if err != nil {
		return nil, fmt.Errorf("formstore: summary renderer: %w", err)
	}

	return &Session{
		Container: formstate.NewContainer(containerOpts...),
		Site:      cfg.site,
		Summary:   renderer,
	}, nil
}

// Filler returns a prompt filler writing to the session container and
// offering the configured trademark categories.
func (s *Session) Filler(options ...prompt.Option) *prompt.Filler {
	opts := append([]prompt.Option{prompt.WithCategories(s.Site.TrademarkCategories)}, options...)
	return prompt.NewFiller(s.Container, opts...)
}
