// Package tarotsite wires the site content, page renderers and theme into a
// single entry point used by the server and the static build.
package tarotsite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tarotsite/pkg/content"
	"github.com/goliatone/go-tarotsite/pkg/pages"
	"github.com/goliatone/go-tarotsite/pkg/render"
	sitehtml "github.com/goliatone/go-tarotsite/pkg/renderers/html"
	"github.com/goliatone/go-tarotsite/pkg/renderers/markdown"
)

// RenderOptions aliases render.RenderOptions for callers that only import the
// root package.
type RenderOptions = render.RenderOptions

// Site aliases content.Site.
type Site = content.Site

// Option configures NewRegistry.
type Option func(*config)

type config struct {
	themeName    string
	variant      string
	manifests    []*theme.Manifest
	templatesDir string
	domain       string
}

// WithTheme selects the theme and variant. Empty values select the defaults.
func WithTheme(name, variant string) Option {
	return func(cfg *config) {
		cfg.themeName = strings.TrimSpace(name)
		cfg.variant = strings.TrimSpace(variant)
	}
}

// WithThemeManifests replaces the built-in theme manifests.
func WithThemeManifests(manifests ...*theme.Manifest) Option {
	return func(cfg *config) {
		cfg.manifests = append(cfg.manifests, manifests...)
	}
}

// WithTemplatesDir overrides embedded page templates with files on disk.
func WithTemplatesDir(dir string) Option {
	return func(cfg *config) {
		cfg.templatesDir = strings.TrimSpace(dir)
	}
}

// WithDomain makes Markdown links absolute against domain.
func WithDomain(domain string) Option {
	return func(cfg *config) {
		cfg.domain = strings.TrimSpace(domain)
	}
}

// NewRegistry builds a registry holding the HTML renderer and the Markdown
// renderer layered on top of it.
func NewRegistry(options ...Option) (*render.Registry, error) {
	var cfg config
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	selector, err := sitehtml.NewSelector(cfg.manifests...)
	if err != nil {
		return nil, err
	}
	selection, err := selector.Select(cfg.themeName, cfg.variant)
	if err != nil {
		return nil, err
	}

	htmlOpts := []sitehtml.Option{sitehtml.WithTheme(sitehtml.RendererConfig(selection))}
	if cfg.templatesDir != "" {
		htmlOpts = append(htmlOpts, sitehtml.WithTemplatesDir(cfg.templatesDir))
	}
	htmlRenderer, err := sitehtml.New(htmlOpts...)
	if err != nil {
		return nil, err
	}
	mdRenderer, err := markdown.New(
		markdown.WithHTMLRenderer(htmlRenderer),
		markdown.WithDomain(cfg.domain),
	)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, err
	}
	if err := registry.Register(mdRenderer); err != nil {
		return nil, err
	}
	return registry, nil
}

// Rendition is one rendered page.
type Rendition struct {
	Page        pages.Page
	ContentType string
	Body        []byte
}

// RenderLocation resolves location to a page, picking the Markdown renderer
// for ".md" locations and HTML otherwise, and renders it.
func RenderLocation(ctx context.Context, registry *render.Registry, site *content.Site, location string, opts RenderOptions) (Rendition, error) {
	if registry == nil {
		return Rendition{}, errors.New("tarotsite: registry is nil")
	}
	name := sitehtml.Name
	if pages.IsMarkdown(location) {
		name = markdown.Name
	}
	renderer, err := registry.Get(name)
	if err != nil {
		return Rendition{}, err
	}

	page := pages.Resolve(location)
	body, err := renderer.Render(ctx, render.Request{Page: page, Site: site, Options: opts})
	if err != nil {
		return Rendition{}, fmt.Errorf("tarotsite: render %s: %w", location, err)
	}
	return Rendition{Page: page, ContentType: renderer.ContentType(), Body: body}, nil
}

// LoadContent reads the site document from dir, or the embedded default
// content when dir is empty.
func LoadContent(dir string) (*content.Site, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return content.Default()
	}
	return content.LoadFS(os.DirFS(dir))
}
