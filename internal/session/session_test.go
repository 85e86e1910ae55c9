package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/pagehostgo/internal/session"
)

func TestDispatchClickUnknownElement(t *testing.T) {
	t.Parallel()

	s, err := session.NewFromString(context.Background(), `<html><body>
		<button id="btn" py-onClick="go()">Click me</button>
	</body></html>`)
	require.NoError(t, err)

	err = s.DispatchClick(context.Background(), "missing")
	require.Error(t, err)
	require.Contains(t, err.Error(), `no click handler bound to element "missing"`)
}

func TestDispatchClickFailingHandlerIsReported(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := session.NewFromString(ctx, `<html><body>
		<button id="btn" py-onClick="not_defined()">Click me</button>
	</body></html>`)
	require.NoError(t, err)
	require.NoError(t, s.Run(ctx))

	// The click happened; the handler failure lands on the error channel.
	require.NoError(t, s.DispatchClick(ctx, "btn"))
	errs := s.Capture().Errors()
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "not_defined")
}

func TestBlockErrorDoesNotStopSiblings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, err := session.NewFromString(ctx, `<html><body>
		<py-script id="py1">throw new Error('boom')</py-script>
		<py-script id="py2">display('survived')</py-script>
	</body></html>`)
	require.NoError(t, err)
	require.NoError(t, s.Run(ctx))

	html, err := s.RenderString()
	require.NoError(t, err)
	require.Contains(t, html, "survived")

	errs := s.Capture().Errors()
	require.Len(t, errs, 1)
	require.Contains(t, errs[0], "boom")
}

func TestSessionExposesInlineConfig(t *testing.T) {
	t.Parallel()

	s, err := session.NewFromString(context.Background(), `<html><body>
		<py-config>packages = ["matplotlib"]</py-config>
		<py-script>display('x')</py-script>
	</body></html>`)
	require.NoError(t, err)
	require.Equal(t, []string{"matplotlib"}, s.Config().Packages)
	require.Len(t, s.Registry().Blocks(), 1)
}
