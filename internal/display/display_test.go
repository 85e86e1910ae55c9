package display_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pagehostgo/internal/display"
	"github.com/vk/pagehostgo/internal/page"
	"github.com/vk/pagehostgo/internal/pyval"
	"github.com/vk/pagehostgo/internal/script"
)

func newPage(t *testing.T) *page.Page {
	t.Helper()
	p, err := page.ParseString(`
		<html><body>
		<py-script id="py1"></py-script>
		<div id="X"></div>
		</body></html>`)
	require.NoError(t, err)
	return p
}

func TestResolve(t *testing.T) {
	t.Parallel()

	block := &script.Block{ID: "py1"}

	cases := []struct {
		name    string
		call    display.Call
		current *script.Block
		wantID  string
		wantErr error
	}{
		{
			name:    "explicit target wins regardless of block",
			call:    display.Call{Target: "X"},
			current: block,
			wantID:  "X",
		},
		{
			name:    "explicit target with no block",
			call:    display.Call{Target: "X"},
			current: nil,
			wantID:  "X",
		},
		{
			name:    "implicit target is the calling block",
			call:    display.Call{},
			current: block,
			wantID:  "py1",
		},
		{
			name:    "no block and no explicit target fails",
			call:    display.Call{},
			current: nil,
			wantErr: display.ErrImplicitTarget,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			id, err := display.Resolve(tc.call, tc.current)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantID, id)
		})
	}
}

func TestFormatJoinsWithNewlines(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hello\nworld",
		display.Format([]pyval.Value{pyval.Str("hello"), pyval.Str("world")}))
	require.Equal(t, "", display.Format(nil))
	require.Equal(t, "['A', 1, '!']",
		display.Format([]pyval.Value{pyval.Seq(pyval.Str("A"), pyval.Int(1), pyval.Str("!"))}))
}

func TestRenderAppendAccumulatesInCallOrder(t *testing.T) {
	t.Parallel()

	p := newPage(t)
	r := display.NewRenderer(p)
	ctx := context.Background()

	require.NoError(t, r.Render(ctx, "py1", []pyval.Value{pyval.Str("hello")}, true))
	require.NoError(t, r.Render(ctx, "py1", []pyval.Value{pyval.Str("world")}, true))

	require.Equal(t, "hello\nworld", page.InnerText(p.NodeByID("py1")))

	// Each call produced one distinct child div with a generated id.
	out, err := p.RenderString()
	require.NoError(t, err)
	require.Regexp(t, `<py-script id="py1"><div id="py-[^"]*">hello</div><div id="py-[^"]*">world</div></py-script>`, out)
}

func TestRenderReplaceLeavesNoResidue(t *testing.T) {
	t.Parallel()

	p := newPage(t)
	r := display.NewRenderer(p)
	ctx := context.Background()

	require.NoError(t, r.Render(ctx, "py1", []pyval.Value{pyval.Str("first")}, true))
	require.NoError(t, r.Render(ctx, "py1", []pyval.Value{pyval.Str("second")}, false))

	require.Equal(t, "second", page.InnerText(p.NodeByID("py1")))

	out, err := p.RenderString()
	require.NoError(t, err)
	require.NotContains(t, out, "first")
	require.Contains(t, out, `<py-script id="py1">second</py-script>`)
}

func TestRenderMissingTargetMutatesNothing(t *testing.T) {
	t.Parallel()

	p := newPage(t)
	r := display.NewRenderer(p)

	before, err := p.RenderString()
	require.NoError(t, err)

	renderErr := r.Render(context.Background(), "nope", []pyval.Value{pyval.Str("x")}, true)
	var notFound *display.TargetNotFoundError
	require.True(t, errors.As(renderErr, &notFound))
	require.Equal(t, "nope", notFound.ID)

	after, err := p.RenderString()
	require.NoError(t, err)
	require.Equal(t, before, after, "a failed call must not partially render")
}

func TestApplyPipeline(t *testing.T) {
	t.Parallel()

	p := newPage(t)
	r := display.NewRenderer(p)
	block := &script.Block{ID: "py1"}
	ctx := context.Background()

	// Implicit target writes into the calling block.
	require.NoError(t, r.Apply(ctx, display.Call{Values: []pyval.Value{pyval.Str("a")}, Append: true}, block))
	require.Equal(t, "a", page.InnerText(p.NodeByID("py1")))

	// Explicit target wins over the calling block.
	require.NoError(t, r.Apply(ctx, display.Call{Values: []pyval.Value{pyval.Str("b")}, Target: "X", Append: true}, block))
	require.Equal(t, "b", page.InnerText(p.NodeByID("X")))

	// No block context and no explicit target: error, no DOM change.
	before, err := p.RenderString()
	require.NoError(t, err)
	err = r.Apply(ctx, display.Call{Values: []pyval.Value{pyval.Str("c")}, Append: true}, nil)
	require.ErrorIs(t, err, display.ErrImplicitTarget)
	after, err := p.RenderString()
	require.NoError(t, err)
	require.Equal(t, before, after)
}
