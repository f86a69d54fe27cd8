package api

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/puretext/pkg/cleantext"
	"github.com/dmitrymomot/puretext/pkg/preferences"
	"github.com/dmitrymomot/puretext/pkg/textenc"
)

var (
	ErrInvalidBody          = errors.New("invalid request body")
	ErrClipboardUnavailable = errors.New("clipboard is not available")
	ErrNilResponse          = errors.New("handler returned nil response")
)

// statusFor maps an error to the HTTP status it is rendered with.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, preferences.ErrLoadPreferences):
		return http.StatusInternalServerError
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, cleantext.ErrUnknownMode),
		errors.Is(err, textenc.ErrUnknownCharset),
		errors.Is(err, textenc.ErrDecode),
		errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest
	case errors.Is(err, preferences.ErrInvalidHotkey),
		errors.Is(err, preferences.ErrHotkeyConflict),
		errors.Is(err, preferences.ErrInvalidField):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrClipboardUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
