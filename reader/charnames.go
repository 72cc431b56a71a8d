package reader

import "fmt"

// NamedChars maps a reader-recognized character name (as in `#\newline`) to
// the rune it denotes. Package structural's writer uses the inverse,
// [RuneName], to pick a name back out when it has one.
var NamedChars = map[string]rune{
	"null":      0,
	"nul":       0,
	"alarm":     '\a',
	"backspace": '\b',
	"tab":       '\t',
	"newline":   '\n',
	"linefeed":  '\n',
	"vtab":      '\v',
	"page":      '\f',
	"return":    '\r',
	"escape":    0x1b,
	"space":     ' ',
	"delete":    0x7f,
	"rubout":    0x7f,
}

var runeNames = invertNamedChars()

func invertNamedChars() map[rune]string {
	// Prefer the more common spelling when multiple names map to the same
	// rune (e.g. "newline" over "linefeed", "null" over "nul").
	preferred := []string{"newline", "null", "space", "tab", "backspace", "return", "page", "vtab", "alarm", "escape", "delete"}
	m := make(map[rune]string, len(NamedChars))
	for _, name := range preferred {
		if r, ok := NamedChars[name]; ok {
			if _, taken := m[r]; !taken {
				m[r] = name
			}
		}
	}
	for name, r := range NamedChars {
		if _, taken := m[r]; !taken {
			m[r] = name
		}
	}
	return m
}

// RuneName returns the reader's canonical name for r, and true, if r has
// one (spec.md §4.2's "#\name" character literal form).
func RuneName(r rune) (string, bool) {
	name, ok := runeNames[r]
	return name, ok
}

// HexCharEscape formats r as the colon-terminated hex escape spec.md §6
// specifies: `\xH…:`.
func HexCharEscape(r rune) string {
	return fmt.Sprintf(`\x%x:`, r)
}
