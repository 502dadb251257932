package testsupport

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// ParseHTML parses rendered markup into a node tree.
func ParseHTML(t *testing.T, data []byte) *html.Node {
	t.Helper()

	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// FindAll walks the tree depth-first and returns every element node matching
// match, in document order.
func FindAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// FindFirst returns the first element matching match or nil.
func FindFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	nodes := FindAll(root, match)
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

// ByClass matches elements carrying class among their class list.
func ByClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, c := range strings.Fields(Attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// ByTag matches elements by tag name.
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag
	}
}

// ByID matches the element with the given id.
func ByID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return Attr(n, "id") == id
	}
}

// Attr returns the value of attribute key or "".
func Attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// Text returns the whitespace-collapsed text content of n.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Texts maps Text over nodes.
func Texts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Text(n))
	}
	return out
}
