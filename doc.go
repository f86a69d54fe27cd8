// Package puretext turns arbitrary Unicode text into either plain ASCII-ish
// text or HTML-safe text with named entities.
//
// The conversion core lives in pkg/cleantext: two rune tables, plain and
// html, map every supported character to its replacement and any character
// without an entry is dropped. ASCII letters and digits always pass through
// unchanged.
//
//	cleantext.ToPlain("“Hello” — world")  // "\"Hello\" - world"
//	cleantext.ToHTML("café & co")          // "caf&eacute; &amp; co"
//
// Around the core:
//
//	pkg/preferences  hotkeys and behaviour flags (file, redis or memory store)
//	pkg/clipboard    platform clipboard, or configured helper commands
//	pkg/converter    read clipboard, convert, write back, paste, notify
//	pkg/textenc      legacy charset decoding (windows-1252, latin1, utf-16)
//	pkg/api          HTTP routes served by cmd/puretextd
//	pkg/ratelimiter  token bucket throttling for the HTTP routes
//
// cmd/puretext converts files, stdin or the clipboard from the command line.
// cmd/puretextd serves the HTTP API on 127.0.0.1:7878 by default.
package puretext
