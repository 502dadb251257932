// Package pages enumerates the pages of the site and resolves a document
// location to one of them.
package pages

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Page identifies one of the site's pages. The zero value is Home.
type Page int

const (
	Home Page = iota
	About
	Services
	Book
	Contact
)

type pageInfo struct {
	slug  string
	label string
}

var pageTable = [...]pageInfo{
	Home:     {slug: "index", label: "Home"},
	About:    {slug: "about", label: "About"},
	Services: {slug: "services", label: "Services"},
	Book:     {slug: "book", label: "Book"},
	Contact:  {slug: "contact", label: "Contact"},
}

// All returns every page in navigation order.
func All() []Page {
	return []Page{Home, About, Services, Book, Contact}
}

// Valid reports whether p is a known page.
func (p Page) Valid() bool {
	return p >= Home && int(p) < len(pageTable)
}

// Slug is the file stem of the page ("index", "about", ...).
func (p Page) Slug() string {
	if !p.Valid() {
		return pageTable[Home].slug
	}
	return pageTable[p].slug
}

// Label is the navigation label.
func (p Page) Label() string {
	if !p.Valid() {
		return pageTable[Home].label
	}
	return pageTable[p].label
}

// Filename is the HTML document name the page is served under.
func (p Page) Filename() string {
	return p.Slug() + ".html"
}

// MarkdownFilename is the Markdown rendition's document name.
func (p Page) MarkdownFilename() string {
	return p.Slug() + ".md"
}

// ContentKey is the key of the page copy in content.Site.Pages.
func (p Page) ContentKey() string {
	if p == Home {
		return "home"
	}
	return p.Slug()
}

func (p Page) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return p.Slug()
}

// Parse maps a slug, filename or label ("about", "about.html", "About") to a
// page. It reports false for anything else.
func Parse(name string) (Page, bool) {
	stem := strings.ToLower(strings.TrimSpace(name))
	stem = strings.TrimSuffix(stem, ".html")
	stem = strings.TrimSuffix(stem, ".md")
	if stem == "home" {
		return Home, true
	}
	for _, p := range All() {
		if p.Slug() == stem {
			return p, true
		}
	}
	return Home, false
}

// Resolve picks the page for a document location, which may be a full URL, a
// path or a bare filename. Only the last path segment is considered; empty or
// unknown segments resolve to Home.
func Resolve(location string) Page {
	if page, ok := Parse(lastSegment(location)); ok {
		return page
	}
	return Home
}

// IsMarkdown reports whether location asks for the Markdown rendition.
func IsMarkdown(location string) bool {
	return strings.EqualFold(path.Ext(lastSegment(location)), ".md")
}

func lastSegment(location string) string {
	raw := strings.TrimSpace(location)
	if raw == "" {
		return ""
	}
	if u, err := url.Parse(raw); err == nil {
		raw = u.Path
	}
	raw = strings.TrimRight(raw, "/")
	if idx := strings.LastIndex(raw, "/"); idx >= 0 {
		raw = raw[idx+1:]
	}
	return raw
}
