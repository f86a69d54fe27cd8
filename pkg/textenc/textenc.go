// Package textenc decodes text in legacy character sets to UTF-8 before it is
// sanitised. Windows clipboard dumps are usually windows-1252, where the
// smart quotes live at 0x93 and 0x94.
package textenc

import (
	"errors"
	"fmt"
	"mime"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	ErrUnknownCharset = errors.New("unknown charset")
	ErrDecode         = errors.New("failed to decode text")
)

// Lookup resolves a charset label such as "windows-1252", "latin1" or
// "utf-16le". An empty label means UTF-8.
func Lookup(charset string) (encoding.Encoding, error) {
	label := strings.ToLower(strings.TrimSpace(charset))
	if label == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}
	return enc, nil
}

// Decode converts b from charset to a UTF-8 string. UTF-8 input is returned
// as is, including any invalid sequences.
func Decode(b []byte, charset string) (string, error) {
	enc, err := Lookup(charset)
	if err != nil {
		return "", err
	}
	if enc == unicode.UTF8 {
		return string(b), nil
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", errors.Join(ErrDecode, err)
	}
	return string(out), nil
}

// CharsetFromContentType returns the charset parameter of a Content-Type
// header value, or "" when absent or unparsable.
func CharsetFromContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
