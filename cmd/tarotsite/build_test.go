package main

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	tarotsite "github.com/goliatone/go-tarotsite"
	"github.com/goliatone/go-tarotsite/pkg/content"
	"github.com/goliatone/go-tarotsite/pkg/testsupport"
)

func TestBuildSite_WritesPagesAndAssets(t *testing.T) {
	registry, err := tarotsite.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	public := t.TempDir()
	if err := os.WriteFile(filepath.Join(public, "logo.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := t.TempDir()

	written, err := buildSite(context.Background(), registry, testsupport.Site(t), buildOptions{
		outDir:    out,
		markdown:  true,
		publicDir: public,
		phone:     "919876543210",
		window:    3,
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	sort.Strings(written)
	want := []string{
		"about.html", "about.md",
		"assets/site.css",
		"book.html", "book.md",
		"contact.html", "contact.md",
		"index.html", "index.md",
		"logo.png",
		"services.html", "services.md",
	}
	if diff := cmp.Diff(want, written); diff != "" {
		t.Fatalf("written files mismatch (-want +got):\n%s", diff)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "wa.me/919876543210") {
		t.Fatalf("expected phone override in chat link")
	}
}

func TestBuildSite_RequiresOutDir(t *testing.T) {
	registry, err := tarotsite.NewRegistry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if _, err := buildSite(context.Background(), registry, testsupport.Site(t), buildOptions{}); err == nil {
		t.Fatalf("expected error without output directory")
	}
}

func TestFormatTestimonial(t *testing.T) {
	got := formatTestimonial(content.Testimonial{Name: "Karan T.", Location: "Mumbai", Text: "Calm."})
	if got != "Karan T. (Mumbai): Calm." {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	sort.Strings(names)
	for _, want := range []string{"build", "preview", "serve"} {
		if !contains(names, want) {
			t.Fatalf("expected subcommand %q in %v", want, names)
		}
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
