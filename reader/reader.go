// Package reader defines the contract the core consumes from a reader
// (spec.md §4.7, §6) without implementing lexing or parsing itself — §1
// scopes the lexer/parser out. [Source] is the capability a reader
// implementation is handed; [Error] enumerates the distinct failure modes
// the core's evaluator must be able to tell apart; [NamedChars], [RuneName]
// and [HexCharEscape] are the literal-character tables a
// conforming reader and package structural's writer share, so that
// whatever `#\newline` means on the way in means the same thing on the
// way out.
package reader

import (
	"fmt"
	"io"
)

// Source is what a reader consumes characters from: a rune-at-a-time
// cursor that supports pushing one rune back, matching spec.md §4.7's "the
// character after the expression is left in the port buffer."
type Source interface {
	io.RuneScanner
}

// Kind enumerates the reader's distinct lexical/syntactic error
// conditions (spec.md §4.7).
type Kind int

const (
	// ErrIncompleteString is an unterminated string literal.
	ErrIncompleteString Kind = iota
	// ErrIncompleteExpression is an unbalanced open paren at end of input.
	ErrIncompleteExpression
	// ErrIncompleteBlockComment is an unterminated block comment.
	ErrIncompleteBlockComment
	// ErrStrayCloseParen is a close paren with no matching open.
	ErrStrayCloseParen
	// ErrDanglingQuotePrefix is a quote/quasiquote/unquote/
	// unquote-splicing prefix with no following expression.
	ErrDanglingQuotePrefix
)

func (k Kind) String() string {
	switch k {
	case ErrIncompleteString:
		return "incomplete string"
	case ErrIncompleteExpression:
		return "incomplete expression"
	case ErrIncompleteBlockComment:
		return "incomplete block comment"
	case ErrStrayCloseParen:
		return "stray close paren"
	case ErrDanglingQuotePrefix:
		return "dangling quote prefix"
	default:
		return "unknown reader error"
	}
}

// Error is a read-kind diagnostic, positioned by byte offset into the
// source the reader was consuming.
type Error struct {
	Kind   Kind
	Offset int
}

func (e *Error) Error() string {
	return fmt.Sprintf("read error at offset %d: %s", e.Offset, e.Kind)
}
