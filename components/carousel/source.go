package carousel

import (
	"context"

	"github.com/goliatone/go-tarotsite/pkg/content"
)

// Carousel names served by SiteSource.
const (
	NameTestimonials = "testimonials"
	NameServices     = "services"
)

// Source looks up the items of a named carousel. ok is false for unknown
// names.
type Source interface {
	Items(ctx context.Context, name string) (items []any, ok bool)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, name string) ([]any, bool)

func (f SourceFunc) Items(ctx context.Context, name string) ([]any, bool) {
	return f(ctx, name)
}

// SiteSource serves the testimonials and services of the site returned by
// current. current is called per request so reloaded content is picked up.
func SiteSource(current func() *content.Site) Source {
	return SourceFunc(func(_ context.Context, name string) ([]any, bool) {
		if current == nil {
			return nil, false
		}
		site := current()
		if site == nil {
			return nil, false
		}
		switch name {
		case NameTestimonials:
			return toAny(site.Testimonials), true
		case NameServices:
			return toAny(site.Services), true
		default:
			return nil, false
		}
	})
}

func toAny[T any](items []T) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
