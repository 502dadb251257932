package pages

import "testing"

func TestResolve(t *testing.T) {
	cases := map[string]Page{
		"":                                 Home,
		"/":                                Home,
		"index.html":                       Home,
		"/about.html":                      About,
		"/site/services.html":              Services,
		"https://tarotbyluv.com/book.html": Book,
		"https://tarotbyluv.com/contact.html?x=1#form": Contact,
		"/contact.html/": Contact,
		"/missing.html":  Home,
		"/about.md":      About,
		"ABOUT.HTML":     About,
	}
	for in, want := range cases {
		if got := Resolve(in); got != want {
			t.Fatalf("Resolve(%q): expected %s, got %s", in, want, got)
		}
	}
}

func TestParse(t *testing.T) {
	if p, ok := Parse("home"); !ok || p != Home {
		t.Fatalf("expected home alias, got %v %v", p, ok)
	}
	if p, ok := Parse("Services"); !ok || p != Services {
		t.Fatalf("expected services, got %v %v", p, ok)
	}
	if _, ok := Parse("blog"); ok {
		t.Fatalf("expected unknown page to fail")
	}
}

func TestIsMarkdown(t *testing.T) {
	if !IsMarkdown("/about.md") {
		t.Fatalf("expected .md to be markdown")
	}
	if IsMarkdown("/about.html") || IsMarkdown("") {
		t.Fatalf("expected html and empty locations not to be markdown")
	}
}

func TestPageNames(t *testing.T) {
	if Home.Filename() != "index.html" || Home.ContentKey() != "home" {
		t.Fatalf("unexpected home names %q %q", Home.Filename(), Home.ContentKey())
	}
	if Book.MarkdownFilename() != "book.md" || Book.Label() != "Book" {
		t.Fatalf("unexpected book names %q %q", Book.MarkdownFilename(), Book.Label())
	}
	if Page(42).Valid() || Page(42).Slug() != "index" {
		t.Fatalf("expected invalid page to fall back to index slug")
	}
}
