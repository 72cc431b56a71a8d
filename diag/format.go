package diag

import (
	"fmt"
	"strings"

	"github.com/heistscheme/heistcore/structural"
)

// ANSI format codes, named after heist_types_toolkit.hpp's afmts enum.
// Format expands each to "" when cfg.ANSIEnabled is false (spec.md §6
// "ANSI output ... guarded by a runtime flag; when off, format codes
// expand to empty strings").
const (
	ansiClear     = "\x1b[0m"
	ansiBold      = "\x1b[1m"
	ansiRed       = "\x1b[31m"
	ansiClearBold = "\x1b[22m"
)

func ansiCode(code string, enabled bool) string {
	if !enabled {
		return ""
	}
	return code
}

// Format renders e the way the source's ERR_HEADER/PRINT_ERR macros do: a
// header line naming the raising site, a coloured "ERROR:" label, and a
// body with the failing expression and the offending value's write-form
// plus its type name (spec.md §7 "Diagnostic format"). The expression and
// value are rendered with a nil MethodDispatcher, since a diagnostic may
// need formatting outside of any live evaluation.
func Format(e *Error, cfg Config) string {
	if e == nil {
		return ""
	}
	var b strings.Builder

	b.WriteByte('\n')
	b.WriteString(ansiCode(ansiBold, cfg.ANSIEnabled))
	if e.file != "" {
		fmt.Fprintf(&b, "%s:%s:%d", e.file, e.fn, e.line)
	}
	b.WriteString(ansiCode(ansiRed, cfg.ANSIEnabled))
	fmt.Fprintf(&b, " %s ERROR:\n", strings.ToUpper(e.Kind.String()))
	b.WriteString(ansiCode(ansiClearBold, cfg.ANSIEnabled))
	b.WriteString("  => ")
	b.WriteString(e.Message)

	if e.Expr != nil {
		if s, err := structural.Write(*e.Expr, nil); err == nil {
			fmt.Fprintf(&b, "\n  expr:  %s", s)
		}
	}
	if e.Value != nil {
		if s, err := structural.Write(*e.Value, nil); err == nil {
			fmt.Fprintf(&b, "\n  value: %s (%s)", s, e.Value.Tag())
		}
	}
	b.WriteByte('\n')
	b.WriteString(ansiCode(ansiClear, cfg.ANSIEnabled))
	return b.String()
}
