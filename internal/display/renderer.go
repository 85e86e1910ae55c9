package display

import (
	"context"
	"strings"

	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/vk/pagehostgo/internal/page"
	"github.com/vk/pagehostgo/internal/pyval"
	"github.com/vk/pagehostgo/internal/script"
)

// Format renders the values of one call: each value on its own line, in
// order, joined by single newlines.
func Format(values []pyval.Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Display()
	}
	return strings.Join(parts, "\n")
}

// Renderer applies display calls to one page. It holds no state of its own
// between calls; the page is the only persistent effect.
type Renderer struct {
	page *page.Page
}

// NewRenderer creates a renderer over the given page.
func NewRenderer(p *page.Page) *Renderer {
	return &Renderer{page: p}
}

// Render formats values and mutates the target node. Append mode creates
// one new div child carrying a generated id; replace mode discards the
// target's prior content. The target is looked up fresh on every call.
func (r *Renderer) Render(ctx context.Context, targetID string, values []pyval.Value, appendMode bool) error {
	node := r.page.NodeByID(targetID)
	if node == nil {
		return &TargetNotFoundError{ID: targetID}
	}

	text := Format(values)
	if appendMode {
		page.AppendDiv(node, script.NewID(), text)
	} else {
		page.ReplaceText(node, text)
	}

	ctxlog.FromContext(ctx).Debug("Rendered display output.",
		"target", targetID, "append", appendMode, "values", len(values))
	return nil
}

// Apply runs the full resolve, format, mutate pipeline for one call issued
// from the given block (nil outside block context).
func (r *Renderer) Apply(ctx context.Context, call Call, current *script.Block) error {
	targetID, err := Resolve(call, current)
	if err != nil {
		return err
	}
	return r.Render(ctx, targetID, call.Values, call.Append)
}
