package diag

import (
	"fmt"
	"runtime"

	"github.com/heistscheme/heistcore/datum"
)

// Error is the single concrete error type carrying one of the four Kinds
// (spec.md §7). The four kinds are mutually exclusive and exhaustive, so no
// errors.Is hierarchy is needed.
type Error struct {
	Kind Kind
	// Message is the human-readable description of what went wrong.
	Message string
	// Expr is the failing expression, if one is available (nil otherwise).
	Expr *datum.Value
	// Value is the offending datum (e.g. the non-procedure that was
	// applied, the value jump! is carrying), if one is available.
	Value *datum.Value
	// ExitCode is meaningful only when Kind == KindExit.
	ExitCode int

	file string
	fn   string
	line int
}

// newError captures the Go call site of the raising primitive, the same
// role heist_types_toolkit.hpp's ERR_HEADER macro gives __FILE__:__func__:
// __LINE__ — here it's the location in this interpreter's own source, not
// user Scheme source, matching the original's header line.
func newError(kind Kind, msg string) *Error {
	e := &Error{Kind: kind, Message: msg}
	if pc, file, line, ok := runtime.Caller(2); ok {
		e.file = file
		e.line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			e.fn = fn.Name()
		}
	}
	return e
}

// NewEvalError builds a KindEval Error, optionally annotated with the
// failing expression and/or the offending value. Either may be nil.
func NewEvalError(msg string, expr, value *datum.Value) *Error {
	e := newError(KindEval, msg)
	e.Expr = expr
	e.Value = value
	return e
}

// NewReadError builds a KindRead Error.
func NewReadError(msg string) *Error {
	return newError(KindRead, msg)
}

// NewExitError builds a KindExit Error carrying the process exit code.
func NewExitError(code int) *Error {
	e := newError(KindExit, fmt.Sprintf("exit %d", code))
	e.ExitCode = code
	return e
}

func (e *Error) Error() string {
	return e.Message
}
