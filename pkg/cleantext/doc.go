// Package cleantext converts clipboard text into a form that pastes safely into
// plain-text or HTML targets.
//
// Conversion is a per-rune lookup against one of two fixed tables:
//
//   - Plain: smart quotes, dashes, guillemets and symbols such as ©, ™ or ±
//     become ASCII approximations; accented Latin letters pass through.
//   - HTML: the same characters become named entities or numeric character
//     references; &, < and > are escaped.
//
// ASCII letters and digits always pass through unchanged and never touch the
// tables. A rune that is neither alphanumeric nor present in the active table
// produces no output at all. Line feeds become CR+LF pairs in both modes while
// carriage returns are dropped, so CRLF input stays CRLF.
//
// # Usage
//
//	import "github.com/dmitrymomot/puretext/pkg/cleantext"
//
//	cleantext.ToPlain("“Hello” – World")  // "\"Hello\" - World"
//	cleantext.ToHTML("5 < 10 & 10 > 5")   // "5 &lt; 10 &amp; 10 &gt; 5"
//
//	out, err := cleantext.Apply(cleantext.ModeHTML, "café") // "caf&eacute;"
//
// The conversion is lossy: ToHTML(ToPlain(s)) is generally not s.
//
// # Concurrency
//
// Both tables are built once per process on first use, guarded by sync.Once,
// and are read-only afterwards. Every function in the package is safe for
// concurrent use.
package cleantext
