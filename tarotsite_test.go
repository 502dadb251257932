package tarotsite

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tarotsite/pkg/pages"
)

func TestNewRegistry_ListsRenderers(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	if diff := cmp.Diff([]string{"html", "markdown"}, registry.List()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
}

func TestNewRegistry_UnknownTheme(t *testing.T) {
	if _, err := NewRegistry(WithTheme("midnight", "")); err == nil {
		t.Fatalf("expected unknown theme error")
	}
}

func TestRenderLocation(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	site, err := LoadContent("")
	if err != nil {
		t.Fatalf("load content: %v", err)
	}

	cases := []struct {
		location    string
		page        pages.Page
		contentType string
		contains    string
	}{
		{location: "/", page: pages.Home, contentType: "text/html", contains: "<html"},
		{location: "/about.html", page: pages.About, contentType: "text/html", contains: "About Luv Kohli"},
		{location: "/services.md", page: pages.Services, contentType: "text/markdown", contains: "Tarot Reading"},
		{location: "/missing.html", page: pages.Home, contentType: "text/html", contains: "Client Experiences"},
	}
	for _, tc := range cases {
		t.Run(tc.location, func(t *testing.T) {
			out, err := RenderLocation(context.Background(), registry, site, tc.location, RenderOptions{})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if out.Page != tc.page {
				t.Fatalf("expected page %s, got %s", tc.page, out.Page)
			}
			if !strings.HasPrefix(out.ContentType, tc.contentType) {
				t.Fatalf("expected content type %q, got %q", tc.contentType, out.ContentType)
			}
			if !strings.Contains(string(out.Body), tc.contains) {
				t.Fatalf("expected body to contain %q", tc.contains)
			}
		})
	}
}

func TestLoadContent_Dir(t *testing.T) {
	data, err := fs.ReadFile(os.DirFS("pkg/content/data"), "site.yaml")
	if err != nil {
		t.Fatalf("read embedded content: %v", err)
	}
	dir := t.TempDir()
	edited := strings.Replace(string(data), "name: Tarot by Luv", "name: Tarot by Luv Studio", 1)
	if err := os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(edited), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	site, err := LoadContent(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if site.Brand.Name != "Tarot by Luv Studio" {
		t.Fatalf("expected brand override, got %q", site.Brand.Name)
	}

	if _, err := LoadContent(t.TempDir()); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}

func TestAssetsFSContainsStylesheet(t *testing.T) {
	data, err := fs.ReadFile(AssetsFS(), "site.css")
	if err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), "--color-accent") {
		t.Fatalf("expected stylesheet to use theme custom properties")
	}
}

func TestEmbeddedTemplatesContainsLayout(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "templates/layout.tmpl"); err != nil {
		t.Fatalf("expected layout template: %v", err)
	}
}
