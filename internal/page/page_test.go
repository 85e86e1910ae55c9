package page_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pagehostgo/internal/page"
)

const sample = `
<html><body>
<py-script id="py1">display('x')</py-script>
<div id="out"></div>
<button id="btn" py-onClick="go()">Click me</button>
<py-script id="py2"></py-script>
</body></html>
`

func TestNodeByID(t *testing.T) {
	t.Parallel()

	p, err := page.ParseString(sample)
	require.NoError(t, err)

	n := p.NodeByID("out")
	require.NotNil(t, n)
	require.Equal(t, "div", n.Data)

	require.Nil(t, p.NodeByID("nonexistent"))
}

func TestElementsDocumentOrder(t *testing.T) {
	t.Parallel()

	p, err := page.ParseString(sample)
	require.NoError(t, err)

	blocks := p.Elements("py-script")
	require.Len(t, blocks, 2)
	id0, _ := page.Attr(blocks[0], "id")
	id1, _ := page.Attr(blocks[1], "id")
	require.Equal(t, "py1", id0)
	require.Equal(t, "py2", id1)

	// The parser canonicalizes attribute names to lower case, so the
	// py-onClick markup convention is py-onclick in the tree.
	bound := p.ElementsWithAttr("py-onclick")
	require.Len(t, bound, 1)
	expr, ok := page.Attr(bound[0], "py-onclick")
	require.True(t, ok)
	require.Equal(t, "go()", expr)
}

func TestAppendDivAccumulates(t *testing.T) {
	t.Parallel()

	p, err := page.ParseString(sample)
	require.NoError(t, err)

	target := p.NodeByID("out")
	page.ClearChildren(target)
	page.AppendDiv(target, "py-aaa", "hello")
	page.AppendDiv(target, "py-bbb", "world")

	require.Equal(t, "hello\nworld", page.InnerText(target))

	out, err := p.RenderString()
	require.NoError(t, err)
	require.Contains(t, out, `<div id="py-aaa">hello</div><div id="py-bbb">world</div>`)
}

func TestReplaceTextDiscardsPriorContent(t *testing.T) {
	t.Parallel()

	p, err := page.ParseString(sample)
	require.NoError(t, err)

	target := p.NodeByID("out")
	page.AppendDiv(target, "py-old", "stale")
	page.ReplaceText(target, "fresh")

	require.Equal(t, "fresh", page.InnerText(target))

	out, err := p.RenderString()
	require.NoError(t, err)
	require.NotContains(t, out, "stale")
	require.Contains(t, out, `<div id="out">fresh</div>`)
}

func TestTextContentIsEscapedOnRender(t *testing.T) {
	t.Parallel()

	p, err := page.ParseString(`<html><body><div id="out"></div></body></html>`)
	require.NoError(t, err)

	page.ReplaceText(p.NodeByID("out"), `a < b & "c"`)

	out, err := p.RenderString()
	require.NoError(t, err)
	require.Contains(t, out, "a &lt; b &amp;")
}

func TestSetAttr(t *testing.T) {
	t.Parallel()

	p, err := page.ParseString(sample)
	require.NoError(t, err)

	n := p.NodeByID("py1")
	page.SetAttr(n, "id", "renamed")
	page.SetAttr(n, "data-x", "1")

	require.Nil(t, p.NodeByID("py1"))
	require.NotNil(t, p.NodeByID("renamed"))
	v, ok := page.Attr(n, "data-x")
	require.True(t, ok)
	require.Equal(t, "1", v)
}

func TestInnerTextKeepsEmbeddedNewlines(t *testing.T) {
	t.Parallel()

	p, err := page.ParseString(`<html><body><div id="out"></div></body></html>`)
	require.NoError(t, err)

	// One text node holding two physical lines stays one segment.
	page.ReplaceText(p.NodeByID("out"), "hello\nworld")
	require.Equal(t, "hello\nworld", page.InnerText(p.NodeByID("out")))
}

func TestRenderRoundTrip(t *testing.T) {
	t.Parallel()

	p, err := page.ParseString(sample)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, p.Render(&sb))
	require.Contains(t, sb.String(), `<py-script id="py1">`)
}
