package structural

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/heistscheme/heistcore/reader"
)

var stringEscapes = map[rune]string{
	'\a': `\a`,
	'\b': `\b`,
	'\f': `\f`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	'\v': `\v`,
	'"':  `\"`,
	'\\': `\\`,
}

// escapeStringBody renders runes as write-mode's quoted-string body:
// surrounding quotes are the caller's responsibility.
func escapeStringBody(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		if esc, ok := stringEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		if r < 0x20 || r == 0x7f {
			b.WriteString(reader.HexCharEscape(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// confusingSymbolChars are the characters spec.md §6 says "would confuse
// the reader" when they appear literally in a symbol's text.
var confusingSymbolChars = map[rune]bool{
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	'`': true, '\'': true, '"': true, ',': true, ';': true, '\\': true,
}

// encodeSymbolText renders a symbol's text for write mode, hex-escaping
// whitespace and reader-confusing punctuation (spec.md §6 "Symbol textual
// representation").
func encodeSymbolText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) || confusingSymbolChars[r] {
			b.WriteString(reader.HexCharEscape(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// writeCharLiteral renders r as write-mode's `#\name` (or, lacking a name,
// a literal glyph or hex escape) character literal.
func writeCharLiteral(r rune) string {
	if name, ok := reader.RuneName(r); ok {
		return `#\` + name
	}
	if strconv.IsPrint(r) {
		return `#\` + string(r)
	}
	return `#\` + reader.HexCharEscape(r)
}
