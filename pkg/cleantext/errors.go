package cleantext

import "errors"

var (
	// ErrUnknownMode is returned when a mode name is not one of pure, plain or html.
	ErrUnknownMode = errors.New("unknown conversion mode")
)
