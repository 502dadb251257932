// Package markdown renders site pages as Markdown by converting the main
// content of the HTML rendition. Navigation chrome is dropped.
package markdown

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"golang.org/x/net/html"

	"github.com/goliatone/go-tarotsite/pkg/render"
	sitehtml "github.com/goliatone/go-tarotsite/pkg/renderers/html"
)

// Name identifies the renderer in a render.Registry.
const Name = "markdown"

type Option func(*config)

type config struct {
	source render.Renderer
	domain string
}

// WithHTMLRenderer sets the renderer producing the HTML that gets converted.
func WithHTMLRenderer(r render.Renderer) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.source = r
		}
	}
}

// WithDomain resolves relative links against domain, e.g.
// "https://tarotbyluv.com".
func WithDomain(domain string) Option {
	return func(cfg *config) {
		cfg.domain = domain
	}
}

// Renderer converts HTML page renditions to Markdown.
type Renderer struct {
	source    render.Renderer
	domain    string
	converter *converter.Converter
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the Markdown renderer. Without WithHTMLRenderer a default
// HTML renderer is created.
func New(options ...Option) (*Renderer, error) {
	var cfg config
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.source == nil {
		source, err := sitehtml.New()
		if err != nil {
			return nil, fmt.Errorf("markdown renderer: %w", err)
		}
		cfg.source = source
	}

	return &Renderer{
		source: cfg.source,
		domain: cfg.domain,
		converter: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/markdown; charset=utf-8"
}

// Render renders req through the HTML renderer and converts its <main>
// element.
func (r *Renderer) Render(ctx context.Context, req render.Request) ([]byte, error) {
	page, err := r.source.Render(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}

	fragment, err := mainContent(page)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: %w", err)
	}

	var opts []converter.ConvertOptionFunc
	if r.domain != "" {
		opts = append(opts, converter.WithDomain(r.domain))
	}
	md, err := r.converter.ConvertString(fragment, opts...)
	if err != nil {
		return nil, fmt.Errorf("markdown renderer: convert: %w", err)
	}
	return []byte(md + "\n"), nil
}

func mainContent(page []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	main := findElement(doc, "main")
	if main == nil {
		return "", errors.New("page has no <main> element")
	}

	var buf bytes.Buffer
	for c := main.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render fragment: %w", err)
		}
	}
	return buf.String(), nil
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
