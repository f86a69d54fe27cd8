package cleantext

import (
	"fmt"
	"strings"
)

// Mode selects the conversion applied to a piece of text.
type Mode string

const (
	// ModePure returns the text unchanged. Rewriting the clipboard with it is
	// enough to drop rich formatting.
	ModePure Mode = "pure"
	// ModePlain converts to an ASCII-biased plain-text form.
	ModePlain Mode = "plain"
	// ModeHTML converts to an entity-escaped HTML-safe form.
	ModeHTML Mode = "html"
)

// Modes lists every supported mode.
var Modes = []Mode{ModePure, ModePlain, ModeHTML}

// ParseMode resolves a mode name, ignoring case and surrounding whitespace.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModePure, ModePlain, ModeHTML:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

func (m Mode) String() string { return string(m) }

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	switch m {
	case ModePure, ModePlain, ModeHTML:
		return true
	}
	return false
}
