package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/puretext/pkg/cleantext"
	"github.com/dmitrymomot/puretext/pkg/logger"
	"github.com/dmitrymomot/puretext/pkg/preferences"
	"github.com/dmitrymomot/puretext/pkg/textenc"
)

// ConvertRequest is the JSON body of POST /v1/convert/{mode}.
type ConvertRequest struct {
	Text string `json:"text"`
}

// ConvertResponse answers a JSON convert request.
type ConvertResponse struct {
	Mode cleantext.Mode `json:"mode"`
	Text string         `json:"text"`
}

// MappingsResponse lists one table.
type MappingsResponse struct {
	Mode    cleantext.Mode    `json:"mode"`
	Count   int               `json:"count"`
	Entries []cleantext.Entry `json:"entries"`
}

func modeParam(r *http.Request) (cleantext.Mode, error) {
	return cleantext.ParseMode(chi.URLParam(r, "mode"))
}

func readBody(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}

func (a *API) convert(r *http.Request) Response {
	mode, err := modeParam(r)
	if err != nil {
		return Error(err)
	}

	raw, err := readBody(r)
	if err != nil {
		return Error(err)
	}

	contentType := r.Header.Get("Content-Type")
	if isJSON(contentType) {
		var req ConvertRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			return Error(fmt.Errorf("%w: %v", ErrInvalidBody, err))
		}
		out, err := a.sanitizer.Apply(mode, req.Text)
		if err != nil {
			return Error(err)
		}
		return JSON(ConvertResponse{Mode: mode, Text: out})
	}

	text, err := textenc.Decode(raw, textenc.CharsetFromContentType(contentType))
	if err != nil {
		return Error(err)
	}
	out, err := a.sanitizer.Apply(mode, text)
	if err != nil {
		return Error(err)
	}
	return Text(out)
}

func (a *API) clipboard(r *http.Request) Response {
	mode, err := modeParam(r)
	if err != nil {
		return Error(err)
	}
	if a.conv == nil {
		return Error(ErrClipboardUnavailable)
	}
	res, err := a.conv.Convert(r.Context(), mode)
	if err != nil {
		return Error(err)
	}
	return JSON(res)
}

func (a *API) mappings(r *http.Request) Response {
	mode, err := modeParam(r)
	if err != nil {
		return Error(err)
	}
	table, err := a.sanitizer.Table(mode)
	if err != nil {
		return Error(fmt.Errorf("%w: %s has no table", err, mode))
	}
	return JSON(MappingsResponse{Mode: mode, Count: table.Len(), Entries: table.Entries()})
}

func (a *API) getPreferences(r *http.Request) Response {
	p, err := a.prefs.Load(r.Context())
	if err != nil {
		return Error(err)
	}
	return JSON(p)
}

// putPreferences applies the body on top of the stored preferences, so
// omitted fields keep their current values. A corrupt stored record is
// replaced starting from Default.
func (a *API) putPreferences(r *http.Request) Response {
	p, err := a.prefs.Load(r.Context())
	if errors.Is(err, preferences.ErrCorruptPreferences) {
		a.log.WarnContext(r.Context(), "stored preferences are corrupt, starting from defaults", logger.Error(err))
		p, err = preferences.Default(), nil
	}
	if err != nil {
		return Error(err)
	}

	raw, err := readBody(r)
	if err != nil {
		return Error(err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		// Hotkey parse errors come through UnmarshalText and keep their type.
		if statusFor(err) == http.StatusUnprocessableEntity {
			return Error(err)
		}
		return Error(fmt.Errorf("%w: %v", ErrInvalidBody, err))
	}

	if err := p.Validate(); err != nil {
		return Error(err)
	}
	if err := a.prefs.Save(r.Context(), p); err != nil {
		return Error(err)
	}
	return JSON(p)
}
