package preferences

import "errors"

var (
	ErrInvalidHotkey   = errors.New("invalid hotkey")
	ErrHotkeyConflict  = errors.New("hotkey bound to more than one mode")
	ErrInvalidField    = errors.New("invalid preferences field")
	ErrLoadPreferences = errors.New("failed to load preferences")
	ErrSavePreferences = errors.New("failed to save preferences")
	// ErrCorruptPreferences marks a stored record that cannot be decoded.
	ErrCorruptPreferences = errors.New("stored preferences are corrupt")
)
