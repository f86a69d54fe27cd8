package preferences

import (
	"fmt"
	"strconv"

	"github.com/dmitrymomot/puretext/pkg/cleantext"
)

// Preferences are the persisted user settings.
type Preferences struct {
	PlaySound             bool   `yaml:"play_sound" json:"play_sound"`
	Startup               bool   `yaml:"startup" json:"startup"`
	TrayIconVisible       bool   `yaml:"tray_icon_visible" json:"tray_icon_visible"`
	PasteIntoActiveWindow bool   `yaml:"paste_into_active_window" json:"paste_into_active_window"`
	PureHotkey            Hotkey `yaml:"pure_hotkey" json:"pure_hotkey"`
	PlainHotkey           Hotkey `yaml:"plain_hotkey" json:"plain_hotkey"`
	HTMLHotkey            Hotkey `yaml:"html_hotkey" json:"html_hotkey"`
}

// Default returns the settings used before anything has been saved.
func Default() Preferences {
	return Preferences{
		PlaySound:             false,
		Startup:               false,
		TrayIconVisible:       true,
		PasteIntoActiveWindow: true,
		PureHotkey:            Hotkey{Modifiers: ModControl | ModShift, Key: "V"},
		PlainHotkey:           Hotkey{Modifiers: ModControl | ModShift, Key: "N"},
		HTMLHotkey:            Hotkey{Modifiers: ModControl | ModShift, Key: "M"},
	}
}

// HotkeyFor returns the binding for mode.
func (p Preferences) HotkeyFor(mode cleantext.Mode) (Hotkey, error) {
	switch mode {
	case cleantext.ModePure:
		return p.PureHotkey, nil
	case cleantext.ModePlain:
		return p.PlainHotkey, nil
	case cleantext.ModeHTML:
		return p.HTMLHotkey, nil
	default:
		return Hotkey{}, cleantext.ErrUnknownMode
	}
}

// Validate checks every hotkey and rejects a combination bound to two modes.
func (p Preferences) Validate() error {
	seen := make(map[Hotkey]cleantext.Mode, len(cleantext.Modes))
	for _, mode := range cleantext.Modes {
		h, _ := p.HotkeyFor(mode)
		if err := h.Validate(); err != nil {
			return fmt.Errorf("%s hotkey: %w", mode, err)
		}
		if other, dup := seen[h]; dup {
			return fmt.Errorf("%w: %s is used by %s and %s", ErrHotkeyConflict, h, other, mode)
		}
		seen[h] = mode
	}
	return nil
}

// Field names shared by the flat key/value representation used in Redis.
const (
	fieldPlaySound             = "play_sound"
	fieldStartup               = "startup"
	fieldTrayIconVisible       = "tray_icon_visible"
	fieldPasteIntoActiveWindow = "paste_into_active_window"
	fieldPureHotkey            = "pure_hotkey"
	fieldPlainHotkey           = "plain_hotkey"
	fieldHTMLHotkey            = "html_hotkey"
)

func (p Preferences) fields() map[string]string {
	return map[string]string{
		fieldPlaySound:             strconv.FormatBool(p.PlaySound),
		fieldStartup:               strconv.FormatBool(p.Startup),
		fieldTrayIconVisible:       strconv.FormatBool(p.TrayIconVisible),
		fieldPasteIntoActiveWindow: strconv.FormatBool(p.PasteIntoActiveWindow),
		fieldPureHotkey:            p.PureHotkey.String(),
		fieldPlainHotkey:           p.PlainHotkey.String(),
		fieldHTMLHotkey:            p.HTMLHotkey.String(),
	}
}

// applyFields overwrites the settings present in values. Unknown keys are
// ignored so older binaries can read data written by newer ones.
func (p *Preferences) applyFields(values map[string]string) error {
	flags := map[string]*bool{
		fieldPlaySound:             &p.PlaySound,
		fieldStartup:               &p.Startup,
		fieldTrayIconVisible:       &p.TrayIconVisible,
		fieldPasteIntoActiveWindow: &p.PasteIntoActiveWindow,
	}
	hotkeys := map[string]*Hotkey{
		fieldPureHotkey:  &p.PureHotkey,
		fieldPlainHotkey: &p.PlainHotkey,
		fieldHTMLHotkey:  &p.HTMLHotkey,
	}

	for key, raw := range values {
		if dst, ok := flags[key]; ok {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%w: %s=%q", ErrInvalidField, key, raw)
			}
			*dst = v
			continue
		}
		if dst, ok := hotkeys[key]; ok {
			h, err := ParseHotkey(raw)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidField, key, err)
			}
			*dst = h
		}
	}
	return nil
}
