package datum

// Expression wraps a raw, unevaluated sequence of data: an AST node as
// produced by the (external) reader, or used internally for argument
// passing before evaluation. Unlike a [Pair] chain, an Expression's Data is
// a flat Go slice: it never participates in cons-cell sharing or cycles.
type Expression struct {
	Data []Value
}

// NewExpression wraps data (not copied) in a [Value].
func NewExpression(data []Value) Value {
	return Value{tag: TagExpression, payload: &Expression{Data: data}}
}

// Expression reports v's *[Expression] payload and whether v was one.
func (v Value) Expression() (*Expression, bool) {
	if v.tag != TagExpression {
		return nil, false
	}
	return v.payload.(*Expression), true
}
