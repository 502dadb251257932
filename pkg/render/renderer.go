package render

import (
	"context"
	"errors"

	"github.com/goliatone/go-tarotsite/pkg/content"
	"github.com/goliatone/go-tarotsite/pkg/pages"
)

// ErrMissingContent is returned when a Request carries no site content.
var ErrMissingContent = errors.New("render: site content is required")

// Renderer turns a page of site content into a byte representation (HTML,
// Markdown, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, req Request) ([]byte, error)
}

// Request selects the page to render and carries the content it is built
// from. Site is read-only for renderers.
type Request struct {
	Page    pages.Page
	Site    *content.Site
	Options RenderOptions
}

// Validate checks the request is renderable.
func (r Request) Validate() error {
	if r.Site == nil {
		return ErrMissingContent
	}
	if !r.Page.Valid() {
		return errors.New("render: unknown page")
	}
	return nil
}
