package interp

import (
	"context"

	"github.com/vk/pagehostgo/internal/console"
	"github.com/vk/pagehostgo/internal/display"
	"github.com/vk/pagehostgo/internal/script"
)

// Host is what the embedding page exposes to a runtime. The session
// implements it.
type Host interface {
	// Display applies one display call issued from the given block (nil
	// outside block context). A returned error is thrown back into the
	// executing script.
	Display(ctx context.Context, call display.Call, current *script.Block) error
	// Print receives one print call's text for the console channel.
	Print(text string)
	// Console receives one console method call's text.
	Console(level console.Level, text string)
}

// Runtime executes page scripts. Implementations are not safe for
// concurrent use; the session owns the single driving goroutine.
type Runtime interface {
	// RunBlock executes a block's source with the block as the implicit
	// display target.
	RunBlock(ctx context.Context, b *script.Block) error
	// Call evaluates a handler expression with no block context.
	Call(ctx context.Context, expr string) error
}
