package clipboard_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/puretext/pkg/clipboard"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	cb := clipboard.NewMemory("“copied”")

	text, err := cb.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "“copied”", text)

	require.NoError(t, cb.WriteText(ctx, `"copied"`))
	text, err = cb.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, `"copied"`, text)
	assert.Equal(t, 1, cb.Writes())
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cb := clipboard.NewMemory("x")
	_, err := cb.ReadText(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, cb.WriteText(ctx, "y"), context.Canceled)
	assert.Zero(t, cb.Writes())
}

func TestMemory_Concurrent(t *testing.T) {
	ctx := context.Background()
	cb := clipboard.NewMemory("")

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() { defer wg.Done(); _ = cb.WriteText(ctx, "x") }()
		go func() { defer wg.Done(); _, _ = cb.ReadText(ctx) }()
	}
	wg.Wait()
	assert.Equal(t, 20, cb.Writes())
}

func shell(t *testing.T) string {
	t.Helper()
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	return sh
}

func TestCommand_RoundTrip(t *testing.T) {
	sh := shell(t)
	file := filepath.Join(t.TempDir(), "clip")

	cb := &clipboard.Command{
		ReadArgs:  []string{sh, "-c", `cat "$0"`, file},
		WriteArgs: []string{sh, "-c", `cat > "$0"`, file},
	}
	assert.Equal(t, sh, cb.Name())

	ctx := context.Background()
	require.NoError(t, cb.WriteText(ctx, "line one\r\nçà va"))

	text, err := cb.ReadText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "line one\r\nçà va", text)
}

func TestCommand_Failures(t *testing.T) {
	sh := shell(t)
	cb := &clipboard.Command{
		ReadArgs:  []string{sh, "-c", "echo no display >&2; exit 1"},
		WriteArgs: []string{sh, "-c", "exit 3"},
	}

	_, err := cb.ReadText(context.Background())
	require.ErrorIs(t, err, clipboard.ErrRead)
	assert.Contains(t, err.Error(), "no display")

	assert.ErrorIs(t, cb.WriteText(context.Background(), "x"), clipboard.ErrWrite)
}

func TestCommand_EmptySelection(t *testing.T) {
	sh := shell(t)

	tests := []struct {
		name   string
		script string
	}{
		{"wl-paste", "echo 'Nothing is copied' >&2; exit 1"},
		{"wl-paste primary", "echo 'No selection' >&2; exit 1"},
		{"xclip", "echo 'Error: target STRING not available' >&2; exit 1"},
		{"xclip utf8", "echo 'Error: target UTF8_STRING not available' >&2; exit 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := &clipboard.Command{
				ReadArgs:  []string{sh, "-c", tt.script},
				WriteArgs: []string{sh, "-c", "cat > /dev/null"},
			}
			text, err := cb.ReadText(context.Background())
			require.NoError(t, err)
			assert.Empty(t, text)
		})
	}
}

func TestNewCommand(t *testing.T) {
	cb, err := clipboard.NewCommand("  xclip -selection clipboard -out ", "xclip -selection clipboard -in")
	require.NoError(t, err)
	assert.Equal(t, []string{"xclip", "-selection", "clipboard", "-out"}, cb.ReadArgs)
	assert.Equal(t, []string{"xclip", "-selection", "clipboard", "-in"}, cb.WriteArgs)
	assert.Equal(t, "xclip", cb.Name())

	_, err = clipboard.NewCommand("wl-paste", "  ")
	assert.ErrorIs(t, err, clipboard.ErrNoClipboard)
}

func TestCommand_NotConfigured(t *testing.T) {
	cb := &clipboard.Command{}
	assert.Empty(t, cb.Name())

	_, err := cb.ReadText(context.Background())
	assert.ErrorIs(t, err, clipboard.ErrNoClipboard)
	assert.ErrorIs(t, cb.WriteText(context.Background(), "x"), clipboard.ErrNoClipboard)
}

func TestDetect(t *testing.T) {
	cb, err := clipboard.Detect()
	if err != nil {
		assert.ErrorIs(t, err, clipboard.ErrNoClipboard)
		return
	}
	assert.NotEmpty(t, cb.Name())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cb.ReadText(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, cb.WriteText(ctx, "x"), context.Canceled)
}
