package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tarotsite/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, render.Request) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry_RegisterGetList(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister(namedRenderer("markdown"))
	reg.MustRegister(namedRenderer("html"))

	if err := reg.Register(namedRenderer("html")); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
	if err := reg.Register(namedRenderer("")); err == nil {
		t.Fatalf("expected empty name to fail")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}

	if diff := cmp.Diff([]string{"html", "markdown"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("html") || reg.Has("pdf") {
		t.Fatalf("unexpected Has results")
	}
	if _, err := reg.Get("pdf"); err == nil {
		t.Fatalf("expected missing renderer error")
	}
	r, err := reg.Get("markdown")
	if err != nil || r.Name() != "markdown" {
		t.Fatalf("expected markdown renderer, got %v, %v", r, err)
	}
}
