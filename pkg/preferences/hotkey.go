package preferences

import (
	"fmt"
	"strconv"
	"strings"
)

// Modifier is a set of modifier keys.
type Modifier uint8

const (
	ModControl Modifier = 1 << iota
	ModAlt
	ModShift
	ModWin
)

var modifierNames = []struct {
	mod  Modifier
	name string
}{
	{ModControl, "Ctrl"},
	{ModAlt, "Alt"},
	{ModShift, "Shift"},
	{ModWin, "Win"},
}

var modifierAliases = map[string]Modifier{
	"ctrl":    ModControl,
	"control": ModControl,
	"alt":     ModAlt,
	"shift":   ModShift,
	"win":     ModWin,
	"windows": ModWin,
	"super":   ModWin,
	"meta":    ModWin,
	"cmd":     ModWin,
}

var namedKeys = map[string]string{
	"insert":   "Insert",
	"delete":   "Delete",
	"home":     "Home",
	"end":      "End",
	"pageup":   "PageUp",
	"pagedown": "PageDown",
	"space":    "Space",
	"enter":    "Enter",
	"tab":      "Tab",
}

// Has reports whether m contains every modifier in other.
func (m Modifier) Has(other Modifier) bool { return m&other == other }

// Hotkey is a key combined with one or more modifiers, e.g. Ctrl+Shift+V.
type Hotkey struct {
	Modifiers Modifier
	Key       string
}

// ParseHotkey parses strings such as "Ctrl+Shift+V" or "alt+f9". Modifier
// names are case-insensitive and the key must come last.
func ParseHotkey(s string) (Hotkey, error) {
	parts := strings.Split(strings.TrimSpace(s), "+")
	if len(parts) == 0 || strings.TrimSpace(parts[0]) == "" {
		return Hotkey{}, fmt.Errorf("%w: %q is empty", ErrInvalidHotkey, s)
	}

	var h Hotkey
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierAliases[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return Hotkey{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidHotkey, p, s)
		}
		h.Modifiers |= mod
	}

	key, err := normalizeKey(parts[len(parts)-1])
	if err != nil {
		return Hotkey{}, fmt.Errorf("%w: %q", err, s)
	}
	h.Key = key
	return h, nil
}

// MustParseHotkey is ParseHotkey for static values; it panics on error.
func MustParseHotkey(s string) Hotkey {
	h, err := ParseHotkey(s)
	if err != nil {
		panic(err)
	}
	return h
}

func normalizeKey(k string) (string, error) {
	k = strings.TrimSpace(k)
	switch {
	case len(k) == 1 && ((k[0] >= 'a' && k[0] <= 'z') || (k[0] >= 'A' && k[0] <= 'Z') || (k[0] >= '0' && k[0] <= '9')):
		return strings.ToUpper(k), nil
	case len(k) >= 2 && (k[0] == 'f' || k[0] == 'F'):
		n, err := strconv.Atoi(k[1:])
		if err == nil && n >= 1 && n <= 24 {
			return "F" + strconv.Itoa(n), nil
		}
	}
	if name, ok := namedKeys[strings.ToLower(k)]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: unsupported key %q", ErrInvalidHotkey, k)
}

// String renders the hotkey as Ctrl+Alt+Shift+Win+Key, listing only the
// modifiers that are set.
func (h Hotkey) String() string {
	if h.IsZero() {
		return ""
	}
	var b strings.Builder
	for _, m := range modifierNames {
		if h.Modifiers.Has(m.mod) {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(h.Key)
	return b.String()
}

// IsZero reports whether the hotkey is unset.
func (h Hotkey) IsZero() bool { return h.Key == "" && h.Modifiers == 0 }

// Validate requires a supported key and at least one modifier.
func (h Hotkey) Validate() error {
	if h.Key == "" {
		return fmt.Errorf("%w: missing key", ErrInvalidHotkey)
	}
	if _, err := normalizeKey(h.Key); err != nil {
		return err
	}
	if h.Modifiers == 0 {
		return fmt.Errorf("%w: %s needs at least one modifier", ErrInvalidHotkey, h.Key)
	}
	return nil
}

func (h Hotkey) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hotkey) UnmarshalText(b []byte) error {
	parsed, err := ParseHotkey(string(b))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
