package script

import (
	"context"

	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/vk/pagehostgo/internal/page"
	"golang.org/x/net/html"
)

// Discover walks the page once and builds its registry. Blocks without an
// explicit id get a generated one written back onto the element, so the
// block can later be addressed as a render target. Block content is cleared
// after the source is captured; the element from then on holds only output.
//
// The output="..." attribute on a block tag is intentionally ignored.
func Discover(ctx context.Context, p *page.Page) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	reg := NewRegistry()

	for _, n := range p.Elements(BlockTag) {
		id, ok := page.Attr(n, "id")
		if !ok || id == "" {
			id = NewID()
			page.SetAttr(n, "id", id)
		}

		b := &Block{
			ID:     id,
			Source: rawText(n),
			Node:   n,
		}
		page.ClearChildren(n)

		if err := reg.Add(b); err != nil {
			return nil, err
		}
		logger.Debug("Discovered script block.", "id", b.ID, "ordinal", b.Ordinal)
	}

	for _, n := range p.ElementsWithAttr(OnClickAttr) {
		expr, _ := page.Attr(n, OnClickAttr)
		id, ok := page.Attr(n, "id")
		if !ok || id == "" {
			id = NewID()
			page.SetAttr(n, "id", id)
		}
		reg.AddBinding(HandlerBinding{ElementID: id, Expr: expr})
		logger.Debug("Discovered handler binding.", "element", id, "expr", expr)
	}

	logger.Info("Page discovery complete.", "blocks", len(reg.Blocks()), "bindings", len(reg.Bindings()))
	return reg, nil
}

// rawText concatenates the text nodes directly under n. Script sources are
// flat text; nested markup inside a block is not part of the source.
func rawText(n *html.Node) string {
	var out string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			out += c.Data
		}
	}
	return out
}
