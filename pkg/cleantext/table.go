package cleantext

import (
	"slices"
	"strings"
	"sync"
)

// Entry is a single table mapping from a source rune to its replacement.
type Entry struct {
	Rune        rune   `json:"rune"`
	Replacement string `json:"replacement"`
}

// Table is an immutable rune-to-string lookup table.
type Table struct {
	name    string
	entries map[rune]string
}

func newTable(name string, capacity int) *Table {
	return &Table{name: name, entries: make(map[rune]string, capacity)}
}

// add panics on duplicate keys: the tables are static data and a duplicate is a
// programming error that must surface on first use.
func (t *Table) add(r rune, replacement string) {
	if _, exists := t.entries[r]; exists {
		panic("cleantext: duplicate " + t.name + " table entry for " + string(r))
	}
	t.entries[r] = replacement
}

func (t *Table) addLiterals(chars string) {
	for _, r := range chars {
		t.add(r, string(r))
	}
}

// Name returns the table name, "plain" or "html".
func (t *Table) Name() string { return t.name }

// Lookup returns the replacement for r. The boolean is false when r has no
// entry, which is distinct from an entry that maps to an empty string.
func (t *Table) Lookup(r rune) (string, bool) {
	s, ok := t.entries[r]
	return s, ok
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the table sorted by code point.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for r, s := range t.entries {
		out = append(out, Entry{Rune: r, Replacement: s})
	}
	slices.SortFunc(out, func(a, b Entry) int { return int(a.Rune - b.Rune) })
	return out
}

var (
	tablesOnce sync.Once
	plainTable *Table
	htmlTable  *Table
)

// loadTables builds both tables exactly once per process.
func loadTables() (*Table, *Table) {
	tablesOnce.Do(func() {
		plainTable = buildPlainTable()
		htmlTable = buildHTMLTable()
	})
	return plainTable, htmlTable
}

// Literal characters that map to themselves. ASCII letters and digits are
// handled by a range check and are deliberately absent.
const (
	plainLiterals = " \t~!@#$%^*()[]{}_-+=;:'\"/?\\|,.<>" +
		"¶€£§¥" +
		"áÁàÀâÂåÅãÃäÄæÆçÇéÉèÈêÊëËíÍìÌîÎïÏñÑóÓòÒôÔøØõÕöÖßúÚùÙûÛüÜÿ" +
		"¡¿"
	htmlLiterals = " \t~!@#$%^*()[]{}_-+=;:'\"/?\\|,."
)

func buildPlainTable() *Table {
	t := newTable("plain", 128)

	t.add('\n', "\r\n")
	t.add('“', `"`) // left double quotation mark
	t.add('”', `"`) // right double quotation mark
	t.add('–', "-") // en dash
	t.add('—', "-") // em dash
	t.add('‘', "'") // left single quotation mark
	t.add('’', "'") // right single quotation mark
	t.add('«', "<<")
	t.add('»', ">>")
	t.add('\u00a0', " ") // no-break space
	t.add('¢', "cents")
	t.add('©', "(C)")
	t.add('®', "(R)")
	t.add('™', "(TM)")
	t.add('÷', "/")
	t.add('µ', "u")
	t.add('·', " ") // middle dot
	t.add('±', "+-")

	// '&' has no plain entry and is dropped in plain mode.
	t.addLiterals(plainLiterals)

	return t
}

func buildHTMLTable() *Table {
	t := newTable("html", 160)

	t.add('\n', "\r\n")
	t.add('–', "&ndash;")
	t.add('—', "&mdash;")
	t.add('¡', "&iexcl;")
	t.add('¿', "&iquest;")
	t.add('“', "&ldquo;")
	t.add('”', "&rdquo;")
	t.add('‘', "&lsquo;")
	t.add('’', "&rsquo;")
	t.add('«', "&laquo;")
	t.add('»', "&raquo;")
	t.add('\u00a0', "&nbsp;")
	t.add('&', "&amp;")
	t.add('¢', "&cent;")
	t.add('©', "&copy;")
	t.add('÷', "&divide;")
	t.add('>', "&gt;")
	t.add('<', "&lt;")
	t.add('µ', "&micro;")
	t.add('·', "&middot;")
	t.add('¶', "&para;")
	t.add('±', "&plusmn;")
	t.add('€', "&euro;")
	t.add('£', "&pound;")
	t.add('®', "&reg;")
	t.add('§', "&sect;")
	t.add('™', "&trade;")
	t.add('¥', "&yen;")
	t.add('´', "&#180;") // acute accent
	t.add('`', "&#96;")
	t.add('ÿ', "&yuml;")
	t.add('ß', "&szlig;")

	for _, l := range latinLetters {
		t.add(l.lower, "&"+l.name+";")
		t.add(l.upper, "&"+capitalize(l.name)+";")
	}

	t.addLiterals(htmlLiterals)

	return t
}

// latinLetters pairs each accented letter with its entity name. The upper case
// entity is the lower case name with its first letter capitalised, except for
// the AElig ligature which capitalize handles.
var latinLetters = []struct {
	lower, upper rune
	name         string
}{
	{'á', 'Á', "aacute"}, {'à', 'À', "agrave"}, {'â', 'Â', "acirc"},
	{'å', 'Å', "aring"}, {'ã', 'Ã', "atilde"}, {'ä', 'Ä', "auml"},
	{'æ', 'Æ', "aelig"}, {'ç', 'Ç', "ccedil"},
	{'é', 'É', "eacute"}, {'è', 'È', "egrave"}, {'ê', 'Ê', "ecirc"}, {'ë', 'Ë', "euml"},
	{'í', 'Í', "iacute"}, {'ì', 'Ì', "igrave"}, {'î', 'Î', "icirc"}, {'ï', 'Ï', "iuml"},
	{'ñ', 'Ñ', "ntilde"},
	{'ó', 'Ó', "oacute"}, {'ò', 'Ò', "ograve"}, {'ô', 'Ô', "ocirc"},
	{'ø', 'Ø', "oslash"}, {'õ', 'Õ', "otilde"}, {'ö', 'Ö', "ouml"},
	{'ú', 'Ú', "uacute"}, {'ù', 'Ù', "ugrave"}, {'û', 'Û', "ucirc"}, {'ü', 'Ü', "uuml"},
}

func capitalize(name string) string {
	if name == "aelig" {
		return "AElig"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
