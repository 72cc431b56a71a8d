package diag

import (
	"github.com/joeycumines/logiface"

	"github.com/heistscheme/heistcore/structural"
)

// LogError logs e before it unwinds, at LevelError for eval/read kinds and
// LevelNotice for exit/jump kinds (spec.md §7, SPEC_FULL §2 "Logging"),
// with fields for the offending expression's write-form and type name.
// log may be nil, in which case LogError is a no-op.
func LogError(log *logiface.Logger[*Event], e *Error) {
	if log == nil || e == nil {
		return
	}
	var b *logiface.Builder[*Event]
	switch e.Kind {
	case KindEval, KindRead:
		b = log.Err()
	default:
		b = log.Notice()
	}
	b = b.Str("kind", e.Kind.String())
	if e.file != "" {
		b = b.Str("site", e.file)
	}
	if e.Expr != nil {
		if s, err := structural.Write(*e.Expr, nil); err == nil {
			b = b.Str("expr", s)
		}
	}
	if e.Value != nil {
		if s, err := structural.Write(*e.Value, nil); err == nil {
			b = b.Str("value", s).Str("value_type", e.Value.Tag().String())
		}
	}
	if e.Kind == KindExit {
		b = b.Int("exit_code", e.ExitCode)
	}
	b.Err(e).Log(e.Message)
}
