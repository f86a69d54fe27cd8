package clipboard

import (
	"context"
	"errors"
	"runtime"

	"github.com/atotto/clipboard"
)

// System is the platform clipboard. Windows and macOS are accessed natively;
// other systems go through xclip, xsel or wl-clipboard.
type System struct{}

// Detect returns the platform clipboard, or ErrNoClipboard when no backend
// is available.
func Detect() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrNoClipboard
	}
	return &System{}, nil
}

// Name returns the platform name.
func (*System) Name() string { return runtime.GOOS }

func (*System) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		if isEmptySelection(err, "") {
			return "", nil
		}
		return "", errors.Join(ErrRead, err)
	}
	return text, nil
}

func (*System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Join(ErrWrite, err)
	}
	return nil
}
