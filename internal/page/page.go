// Package page is the document boundary: an in-process DOM held as a
// golang.org/x/net/html node tree, with the narrow set of primitives the
// rendering pipeline needs. Lookup by id, child append, content replace and
// serialization; nothing else. Node handles are live references into the
// tree, never cached across mutations by callers.
package page

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Page wraps one parsed HTML document.
type Page struct {
	root *html.Node
}

// Parse reads an HTML document. Fragments are tolerated; the parser wraps
// them into a full html/head/body structure.
func Parse(r io.Reader) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return &Page{root: root}, nil
}

// ParseString is Parse over an in-memory document.
func ParseString(src string) (*Page, error) {
	return Parse(strings.NewReader(src))
}

// Root returns the document root node.
func (p *Page) Root() *html.Node {
	return p.root
}

// NodeByID returns the element carrying the given id attribute, or nil if
// no such element exists. The search is live against the current tree.
func (p *Page) NodeByID(id string) *html.Node {
	var found *html.Node
	walk(p.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := Attr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// Elements returns all elements with the given tag name, in document order.
func (p *Page) Elements(tag string) []*html.Node {
	var nodes []*html.Node
	walk(p.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == tag {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// ElementsWithAttr returns all elements carrying the given attribute, in
// document order.
func (p *Page) ElementsWithAttr(key string) []*html.Node {
	var nodes []*html.Node
	walk(p.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if _, ok := Attr(n, key); ok {
				nodes = append(nodes, n)
			}
		}
		return true
	})
	return nodes
}

// Render serializes the document.
func (p *Page) Render(w io.Writer) error {
	if err := html.Render(w, p.root); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// RenderString serializes the document to a string.
func (p *Page) RenderString() (string, error) {
	var sb strings.Builder
	if err := p.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// walk visits n and its subtree in document order. The visitor returns
// false to stop the walk.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// Attr returns the value of the named attribute on n.
func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute on n, replacing an existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// AppendDiv appends a new div child with the given id, holding text as its
// sole content. Text is stored as a text node, so markup-significant
// characters are escaped on serialization.
func AppendDiv(parent *html.Node, id, text string) {
	div := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
		Attr:     []html.Attribute{{Key: "id", Val: id}},
	}
	div.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	parent.AppendChild(div)
}

// ReplaceText drops all of n's children and sets text as its only content.
func ReplaceText(n *html.Node, text string) {
	ClearChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// ClearChildren removes every child of n.
func ClearChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// InnerText returns the visible text of n's subtree. Text from successive
// child elements is joined with newlines, approximating how a browser
// renders block-level children; surrounding markup whitespace is trimmed.
func InnerText(n *html.Node) string {
	var segs []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if s := strings.TrimSpace(c.Data); s != "" {
				segs = append(segs, s)
			}
		case html.ElementNode:
			if s := InnerText(c); s != "" {
				segs = append(segs, s)
			}
		}
	}
	return strings.Join(segs, "\n")
}
