package converter_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/puretext/pkg/cleantext"
	"github.com/dmitrymomot/puretext/pkg/clipboard"
	"github.com/dmitrymomot/puretext/pkg/converter"
	"github.com/dmitrymomot/puretext/pkg/preferences"
)

type failingClipboard struct {
	readErr  error
	writeErr error
	text     string
}

func (f *failingClipboard) ReadText(context.Context) (string, error) { return f.text, f.readErr }

func (f *failingClipboard) WriteText(context.Context, string) error { return f.writeErr }

type failingStore struct{}

func (failingStore) Load(context.Context) (preferences.Preferences, error) {
	return preferences.Preferences{}, errors.New("disk on fire")
}

func (failingStore) Save(context.Context, preferences.Preferences) error { return nil }

func storeWith(t *testing.T, paste, sound bool) *preferences.MemoryStore {
	t.Helper()
	store := preferences.NewMemoryStore()
	p := preferences.Default()
	p.PasteIntoActiveWindow = paste
	p.PlaySound = sound
	require.NoError(t, store.Save(context.Background(), p))
	return store
}

func counter(n *int, err error) func(context.Context) error {
	return func(context.Context) error {
		*n++
		return err
	}
}

func TestConvert_Modes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mode cleantext.Mode
		in   string
		want string
	}{
		{"plain quotes", cleantext.ModePlain, "“Hello”", `"Hello"`},
		{"plain drops emoji", cleantext.ModePlain, "a😀b", "ab"},
		{"html entities", cleantext.ModeHTML, "café & co", "caf&eacute; &amp; co"},
		{"pure keeps text", cleantext.ModePure, "“Hello” 😀", "“Hello” 😀"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cb := clipboard.NewMemory(tt.in)
			conv := converter.New(cb, storeWith(t, false, false))

			res, err := conv.Convert(context.Background(), tt.mode)
			require.NoError(t, err)

			got, err := cb.ReadText(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.mode, res.Mode)
			assert.Equal(t, len(tt.in), res.InputLen)
			assert.Equal(t, len(tt.want), res.OutputLen)
			assert.False(t, res.Skipped)
			assert.Equal(t, 1, cb.Writes())
		})
	}
}

func TestConvert_EmptyClipboard(t *testing.T) {
	t.Parallel()

	cb := clipboard.NewMemory("")
	var pastes, bells int
	conv := converter.New(cb, storeWith(t, true, true),
		converter.WithPaster(converter.PasterFunc(counter(&pastes, nil))),
		converter.WithNotifier(converter.NotifierFunc(counter(&bells, nil))),
	)

	res, err := conv.Convert(context.Background(), cleantext.ModePlain)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Zero(t, cb.Writes())
	assert.Zero(t, pastes)
	assert.Zero(t, bells)
}

func TestConvert_FollowUps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		paste, sound bool
		wantPastes   int
		wantBells    int
	}{
		{"none", false, false, 0, 0},
		{"paste only", true, false, 1, 0},
		{"sound only", false, true, 0, 1},
		{"both", true, true, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var pastes, bells int
			conv := converter.New(clipboard.NewMemory("text"), storeWith(t, tt.paste, tt.sound),
				converter.WithPaster(converter.PasterFunc(counter(&pastes, nil))),
				converter.WithNotifier(converter.NotifierFunc(counter(&bells, nil))),
			)

			res, err := conv.Convert(context.Background(), cleantext.ModeHTML)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPastes, pastes)
			assert.Equal(t, tt.wantBells, bells)
			assert.Equal(t, tt.paste, res.Pasted)
			assert.Equal(t, tt.sound, res.Notified)
			assert.Empty(t, res.Warnings)
		})
	}
}

func TestConvert_FollowUpFailuresAreWarnings(t *testing.T) {
	t.Parallel()

	cb := clipboard.NewMemory("“x”")
	var pastes, bells int
	conv := converter.New(cb, storeWith(t, true, true),
		converter.WithPaster(converter.PasterFunc(counter(&pastes, errors.New("no display")))),
		converter.WithNotifier(converter.NotifierFunc(counter(&bells, errors.New("muted")))),
	)

	res, err := conv.Convert(context.Background(), cleantext.ModePlain)
	require.NoError(t, err)
	assert.False(t, res.Pasted)
	assert.False(t, res.Notified)
	require.Len(t, res.Warnings, 2)
	assert.Contains(t, res.Warnings[0], "no display")
	assert.Contains(t, res.Warnings[1], "muted")

	got, _ := cb.ReadText(context.Background())
	assert.Equal(t, `"x"`, got)
}

func TestConvert_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	t.Run("read", func(t *testing.T) {
		conv := converter.New(&failingClipboard{readErr: boom}, preferences.NewMemoryStore())
		_, err := conv.Convert(context.Background(), cleantext.ModePlain)
		require.ErrorIs(t, err, converter.ErrClipboardRead)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("write", func(t *testing.T) {
		var pastes int
		conv := converter.New(&failingClipboard{text: "abc", writeErr: boom}, preferences.NewMemoryStore(),
			converter.WithPaster(converter.PasterFunc(counter(&pastes, nil))),
		)
		_, err := conv.Convert(context.Background(), cleantext.ModePlain)
		require.ErrorIs(t, err, converter.ErrClipboardWrite)
		assert.ErrorIs(t, err, boom)
		assert.Zero(t, pastes)
	})

	t.Run("preferences", func(t *testing.T) {
		cb := clipboard.NewMemory("abc")
		conv := converter.New(cb, failingStore{})
		_, err := conv.Convert(context.Background(), cleantext.ModePlain)
		require.ErrorIs(t, err, converter.ErrPreferences)
		assert.Zero(t, cb.Writes())
	})

	t.Run("unknown mode", func(t *testing.T) {
		cb := clipboard.NewMemory("abc")
		conv := converter.New(cb, preferences.NewMemoryStore())
		_, err := conv.Convert(context.Background(), cleantext.Mode("rot13"))
		require.ErrorIs(t, err, cleantext.ErrUnknownMode)
		assert.Zero(t, cb.Writes())
	})
}

func TestConvert_WithoutPasterIgnoresPreference(t *testing.T) {
	t.Parallel()

	conv := converter.New(clipboard.NewMemory("abc"), storeWith(t, true, true))
	res, err := conv.Convert(context.Background(), cleantext.ModePlain)
	require.NoError(t, err)
	assert.False(t, res.Pasted)
	assert.False(t, res.Notified)
}

func TestBellNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := converter.NewBellNotifier(&buf)
	require.NoError(t, n.Notify(context.Background()))
	require.NoError(t, n.Notify(context.Background()))
	assert.Equal(t, "\a\a", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Notify(ctx), context.Canceled)

	assert.Error(t, converter.NewBellNotifier(nil).Notify(context.Background()))
}

func TestCommandPaster(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"xdotool", "key", "--clearmodifiers", "ctrl+v"},
		converter.ParseCommand("  xdotool key  --clearmodifiers ctrl+v "))

	p := converter.NewCommandPaster([]string{"puretext-missing-binary-for-tests"})
	err := p.Paste(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "puretext-missing-binary-for-tests")
}
