package converter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/puretext/pkg/cleantext"
	"github.com/dmitrymomot/puretext/pkg/clipboard"
	"github.com/dmitrymomot/puretext/pkg/logger"
	"github.com/dmitrymomot/puretext/pkg/preferences"
)

// Result describes a finished conversion.
type Result struct {
	Mode      cleantext.Mode `json:"mode"`
	InputLen  int            `json:"input_len"`
	OutputLen int            `json:"output_len"`
	Skipped   bool           `json:"skipped"`
	Pasted    bool           `json:"pasted"`
	Notified  bool           `json:"notified"`
	// Errors from the paste and notify follow-ups.
	Warnings []string `json:"warnings,omitempty"`
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// WithPaster sets the paste keystroke sender.
func WithPaster(p Paster) Option {
	return func(c *Converter) { c.paster = p }
}

// WithNotifier sets the audible feedback.
func WithNotifier(n Notifier) Option {
	return func(c *Converter) { c.notifier = n }
}

// Converter converts the clipboard in place.
type Converter struct {
	clipboard clipboard.Clipboard
	prefs     preferences.Store
	sanitizer *cleantext.Sanitizer
	paster    Paster
	notifier  Notifier
	log       *slog.Logger
}

// New returns a Converter. Without a paster or notifier the matching
// preference is ignored.
func New(cb clipboard.Clipboard, prefs preferences.Store, opts ...Option) *Converter {
	c := &Converter{
		clipboard: cb,
		prefs:     prefs,
		sanitizer: cleantext.New(),
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("converter"))
	return c
}

// Convert runs one clipboard conversion in mode.
func (c *Converter) Convert(ctx context.Context, mode cleantext.Mode) (Result, error) {
	start := time.Now()
	res := Result{Mode: mode}

	if !mode.Valid() {
		return res, fmt.Errorf("%w: %q", cleantext.ErrUnknownMode, mode)
	}

	prefs, err := c.prefs.Load(ctx)
	if err != nil {
		return res, errors.Join(ErrPreferences, err)
	}

	text, err := c.clipboard.ReadText(ctx)
	if err != nil {
		return res, errors.Join(ErrClipboardRead, err)
	}
	if text == "" {
		res.Skipped = true
		c.log.DebugContext(ctx, "clipboard is empty", logger.Mode(mode.String()))
		return res, nil
	}
	res.InputLen = len(text)

	out, err := c.sanitizer.Apply(mode, text)
	if err != nil {
		return res, err
	}
	res.OutputLen = len(out)

	if err := c.clipboard.WriteText(ctx, out); err != nil {
		return res, errors.Join(ErrClipboardWrite, err)
	}

	if prefs.PasteIntoActiveWindow && c.paster != nil {
		if err := c.paster.Paste(ctx); err != nil {
			err = errors.Join(ErrPaste, err)
			res.Warnings = append(res.Warnings, err.Error())
			c.log.WarnContext(ctx, "paste keystroke failed", logger.Error(err))
		} else {
			res.Pasted = true
		}
	}

	if prefs.PlaySound && c.notifier != nil {
		if err := c.notifier.Notify(ctx); err != nil {
			err = errors.Join(ErrNotify, err)
			res.Warnings = append(res.Warnings, err.Error())
			c.log.WarnContext(ctx, "notification failed", logger.Error(err))
		} else {
			res.Notified = true
		}
	}

	c.log.InfoContext(ctx, "clipboard converted",
		logger.Mode(mode.String()),
		logger.InputLen(res.InputLen),
		logger.OutputLen(res.OutputLen),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}
