package converter

import "errors"

var (
	ErrClipboardRead  = errors.New("failed to read clipboard")
	ErrClipboardWrite = errors.New("failed to write clipboard")
	ErrPreferences    = errors.New("failed to load preferences")
	ErrPaste          = errors.New("failed to send paste keystroke")
	ErrNotify         = errors.New("failed to play notification")
)
