package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/puretext/pkg/logger"
)

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type handlerFunc func(r *http.Request) Response

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON renders v with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: v}
}

type textResponse struct {
	body string
}

func (t textResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(t.body))
	return err
}

// Text renders s as UTF-8 plain text.
func Text(s string) Response {
	return textResponse{body: s}
}

type errorBody struct {
	Error string `json:"error"`
}

type errorResponse struct {
	err    error
	status int
}

func (e errorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	msg := e.err.Error()
	if e.status >= http.StatusInternalServerError && e.status != http.StatusServiceUnavailable {
		msg = http.StatusText(e.status)
	}
	return jsonResponse{status: e.status, body: errorBody{Error: msg}}.Render(w, r)
}

// Error renders err with the status statusFor picks.
func Error(err error) Response {
	return errorResponse{err: err, status: statusFor(err)}
}

// wrap adapts h to http.HandlerFunc. Error responses are logged at warn for
// client errors and at error for server errors.
func (a *API) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := h(r)
		if resp == nil {
			resp = Error(ErrNilResponse)
		}
		if e, ok := resp.(errorResponse); ok {
			level := slog.LevelWarn
			if e.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			a.log.Log(r.Context(), level, "request failed",
				slog.Int("status", e.status),
				logger.Error(e.err),
			)
		}
		if err := resp.Render(w, r); err != nil {
			a.log.ErrorContext(r.Context(), "failed to render response", logger.Error(err))
		}
	}
}
