// Package session owns the lifecycle of one hosted page: parse, discover,
// execute blocks sequentially in document order, dispatch events, serialize.
// It implements the runtime's host interface, which is where the error
// policy lives: an implicit-target failure is reported to the console
// channel and the output dropped, a missing explicit target is thrown back
// into the executing script.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vk/pagehostgo/internal/console"
	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/vk/pagehostgo/internal/display"
	"github.com/vk/pagehostgo/internal/interp"
	"github.com/vk/pagehostgo/internal/page"
	"github.com/vk/pagehostgo/internal/pycfg"
	"github.com/vk/pagehostgo/internal/script"
)

// Session hosts one page. All methods must be driven from a single
// goroutine; block execution is strictly sequential and each display call
// runs to completion before the next statement.
type Session struct {
	page     *page.Page
	reg      *script.Registry
	cfg      *pycfg.Config
	capture  *console.Capture
	renderer *display.Renderer
	rt       interp.Runtime
}

// New parses a page and prepares it for execution: inline config is read,
// blocks and handler bindings are discovered, the runtime is created.
func New(ctx context.Context, r io.Reader) (*Session, error) {
	p, err := page.Parse(r)
	if err != nil {
		return nil, err
	}

	cfg, err := pycfg.Parse(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read inline page config: %w", err)
	}

	reg, err := script.Discover(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to discover script blocks: %w", err)
	}

	s := &Session{
		page:     p,
		reg:      reg,
		cfg:      cfg,
		capture:  console.New(),
		renderer: display.NewRenderer(p),
	}

	rt, err := interp.NewGoja(s)
	if err != nil {
		return nil, fmt.Errorf("failed to create runtime: %w", err)
	}
	s.rt = rt
	return s, nil
}

// NewFromString is New over an in-memory page source.
func NewFromString(ctx context.Context, src string) (*Session, error) {
	return New(ctx, strings.NewReader(src))
}

// Run executes every block once, in document order. A failing block is
// reported to the log and the console error channel and does not stop its
// siblings; Run itself only fails on infrastructure errors.
func (s *Session) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for _, b := range s.reg.Blocks() {
		if err := s.rt.RunBlock(ctxlog.With(ctx, "block", b.ID), b); err != nil {
			logger.Error("Script block failed.", "block", b.ID, "error", err)
			s.capture.Append(console.LevelError, err.Error())
		}
	}

	logger.Debug("Page run complete.", "blocks", len(s.reg.Blocks()))
	return nil
}

// DispatchClick fires the handler bound to the given element as a discrete
// task with no block context. An unbound element id is a caller error; a
// failing handler is reported the same way a failing block is.
func (s *Session) DispatchClick(ctx context.Context, elementID string) error {
	hb, ok := s.reg.BindingFor(elementID)
	if !ok {
		return fmt.Errorf("no click handler bound to element %q", elementID)
	}

	if err := s.rt.Call(ctxlog.With(ctx, "element", elementID), hb.Expr); err != nil {
		ctxlog.FromContext(ctx).Error("Click handler failed.", "element", elementID, "error", err)
		s.capture.Append(console.LevelError, err.Error())
	}
	return nil
}

// Display implements interp.Host. ErrImplicitTarget is terminal for the
// output but not for the script: it is pushed to the error channel and
// swallowed. Any other failure propagates and aborts the statement.
func (s *Session) Display(ctx context.Context, call display.Call, current *script.Block) error {
	err := s.renderer.Apply(ctx, call, current)
	if err == nil {
		return nil
	}
	if errors.Is(err, display.ErrImplicitTarget) {
		ctxlog.FromContext(ctx).Warn("Display call without target outside block context; output dropped.")
		s.capture.Append(console.LevelError, err.Error())
		return nil
	}
	return err
}

// Print implements interp.Host.
func (s *Session) Print(text string) {
	s.capture.Append(console.LevelLog, text)
}

// Console implements interp.Host.
func (s *Session) Console(level console.Level, text string) {
	s.capture.Append(level, text)
}

// Page returns the live document.
func (s *Session) Page() *page.Page {
	return s.page
}

// Capture returns the console capture of this page run.
func (s *Session) Capture() *console.Capture {
	return s.capture
}

// Config returns the merged inline page config.
func (s *Session) Config() *pycfg.Config {
	return s.cfg
}

// Registry returns the page's block registry. Primarily for tests.
func (s *Session) Registry() *script.Registry {
	return s.reg
}

// Render serializes the page in its current state.
func (s *Session) Render(w io.Writer) error {
	return s.page.Render(w)
}

// RenderString serializes the page in its current state to a string.
func (s *Session) RenderString() (string, error) {
	return s.page.RenderString()
}
