package cleantext

import (
	"strings"
	"sync"
)

// Sanitizer converts text using the process-wide plain and HTML tables.
// The zero value is not usable; create one with New.
type Sanitizer struct {
	plain *Table
	html  *Table
}

// New returns a Sanitizer. The first call builds both tables; later calls
// share them.
func New() *Sanitizer {
	plain, html := loadTables()
	return &Sanitizer{plain: plain, html: html}
}

// PlainTable returns the plain mode table.
func (s *Sanitizer) PlainTable() *Table { return s.plain }

// HTMLTable returns the HTML mode table.
func (s *Sanitizer) HTMLTable() *Table { return s.html }

// PlainRune converts a single rune for plain-text targets. The boolean is
// false when the rune has no mapping and must be dropped.
func (s *Sanitizer) PlainRune(r rune) (string, bool) {
	return convertRune(s.plain, r)
}

// HTMLRune converts a single rune for HTML targets. The boolean is false when
// the rune has no mapping and must be dropped.
func (s *Sanitizer) HTMLRune(r rune) (string, bool) {
	return convertRune(s.html, r)
}

// ToPlain converts text for plain-text targets, dropping unmapped runes.
func (s *Sanitizer) ToPlain(text string) string {
	return convert(s.plain, text)
}

// ToHTML converts text for HTML targets, dropping unmapped runes.
func (s *Sanitizer) ToHTML(text string) string {
	return convert(s.html, text)
}

// Apply converts text in the given mode.
func (s *Sanitizer) Apply(mode Mode, text string) (string, error) {
	switch mode {
	case ModePure:
		return text, nil
	case ModePlain:
		return s.ToPlain(text), nil
	case ModeHTML:
		return s.ToHTML(text), nil
	default:
		return "", ErrUnknownMode
	}
}

// Table returns the table backing mode. Pure mode has no table.
func (s *Sanitizer) Table(mode Mode) (*Table, error) {
	switch mode {
	case ModePlain:
		return s.plain, nil
	case ModeHTML:
		return s.html, nil
	default:
		return nil, ErrUnknownMode
	}
}

func isIdentity(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func convertRune(t *Table, r rune) (string, bool) {
	if isIdentity(r) {
		return string(r), true
	}
	return t.Lookup(r)
}

func convert(t *Table, text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if isIdentity(r) {
			b.WriteRune(r)
			continue
		}
		if out, ok := t.Lookup(r); ok {
			b.WriteString(out)
		}
	}
	return b.String()
}

var defaultSanitizer = sync.OnceValue(New)

// ToPlain converts text for plain-text targets using the shared tables.
func ToPlain(text string) string { return defaultSanitizer().ToPlain(text) }

// ToHTML converts text for HTML targets using the shared tables.
func ToHTML(text string) string { return defaultSanitizer().ToHTML(text) }

// Apply converts text in the given mode using the shared tables.
func Apply(mode Mode, text string) (string, error) { return defaultSanitizer().Apply(mode, text) }

// PlainRune converts a single rune using the shared tables.
func PlainRune(r rune) (string, bool) { return defaultSanitizer().PlainRune(r) }

// HTMLRune converts a single rune using the shared tables.
func HTMLRune(r rune) (string, bool) { return defaultSanitizer().HTMLRune(r) }
