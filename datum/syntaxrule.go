package datum

// SyntaxRule is a macro definition: a label, literal keywords that must
// match verbatim rather than bind, and parallel pattern/template lists
// (matching expander logic lives with the evaluator, outside this core).
type SyntaxRule struct {
	Label     Symbol
	Literals  []Symbol
	Patterns  []Value
	Templates []Value
}

// NewSyntaxRule wraps a [SyntaxRule] in a [Value].
func NewSyntaxRule(s *SyntaxRule) Value {
	return Value{tag: TagSyntaxRule, payload: s}
}

// SyntaxRule reports v's *[SyntaxRule] payload and whether v was one.
func (v Value) SyntaxRule() (*SyntaxRule, bool) {
	if v.tag != TagSyntaxRule {
		return nil, false
	}
	return v.payload.(*SyntaxRule), true
}
