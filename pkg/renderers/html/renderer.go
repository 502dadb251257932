package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-tarotsite/pkg/pages"
	"github.com/goliatone/go-tarotsite/pkg/render"
	rendertemplate "github.com/goliatone/go-tarotsite/pkg/render/template"
	gotemplate "github.com/goliatone/go-tarotsite/pkg/render/template/gotemplate"
)

// Name identifies the renderer in a render.Registry.
const Name = "html"

// pageTemplates maps every page to its template. Adding a page without a
// template is caught by the renderer tests.
var pageTemplates = map[pages.Page]string{
	pages.Home:     "templates/home.tmpl",
	pages.About:    "templates/about.tmpl",
	pages.Services: "templates/services.tmpl",
	pages.Book:     "templates/book.tmpl",
	pages.Contact:  "templates/contact.tmpl",
}

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation. The
// renderer must provide the price, amount and richtext filters.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme sets the resolved theme configuration. Without it the default
// manifest is used.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(c *config) {
		c.theme = cfg
	}
}

// Renderer renders site pages to HTML documents.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	theme     themeView
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	if cfg.theme == nil {
		selector, err := NewSelector()
		if err != nil {
			return nil, err
		}
		selection, err := selector.Select("", "")
		if err != nil {
			return nil, fmt.Errorf("html renderer: select default theme: %w", err)
		}
		cfg.theme = RendererConfig(selection)
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
			gotemplate.WithTemplateFunc(templateFilters()),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		theme:     buildThemeView(cfg.theme),
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the template mapped to req.Page.
func (r *Renderer) Render(_ context.Context, req render.Request) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}

	name, ok := pageTemplates[req.Page]
	if !ok {
		return nil, fmt.Errorf("html renderer: no template for page %s", req.Page)
	}

	view, err := buildView(req, r.theme)
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}

	result, err := r.templates.RenderTemplate(name, view)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
