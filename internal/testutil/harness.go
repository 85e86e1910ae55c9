// Package testutil provides the shared harness for page-level tests: it
// runs a full page source through a session with a debug logger and hands
// back the serialized document, the console capture and the log output.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pagehostgo/internal/ctxlog"
	"github.com/vk/pagehostgo/internal/session"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// PageResult holds the outcomes of one harnessed page run.
type PageResult struct {
	// HTML is the serialized document after all blocks executed.
	HTML string
	// Console is the captured console channel, in capture order.
	Console []string
	// LogOutput is the structured log output of the run.
	LogOutput string
	// Session stays live so tests can dispatch events and re-serialize.
	Session *session.Session
	// Ctx carries the harness logger for follow-up calls.
	Ctx context.Context
}

// Refresh re-serializes the document and re-reads the console, for use
// after follow-up dispatches.
func (r *PageResult) Refresh(t *testing.T) {
	t.Helper()
	html, err := r.Session.RenderString()
	require.NoError(t, err)
	r.HTML = html
	r.Console = r.Session.Capture().Lines()
}

// StartPage builds a session for the given page source without running it.
func StartPage(t *testing.T, source string) (*session.Session, context.Context, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	s, err := session.NewFromString(ctx, source)
	require.NoError(t, err)
	return s, ctx, logBuffer
}

// RunPage builds and runs a session for the given page source. Block-level
// script failures surface in the console capture, not as harness failures.
func RunPage(t *testing.T, source string) *PageResult {
	t.Helper()

	s, ctx, logBuffer := StartPage(t, source)
	require.NoError(t, s.Run(ctx))

	html, err := s.RenderString()
	require.NoError(t, err)

	return &PageResult{
		HTML:      html,
		Console:   s.Capture().Lines(),
		LogOutput: logBuffer.String(),
		Session:   s,
		Ctx:       ctx,
	}
}
