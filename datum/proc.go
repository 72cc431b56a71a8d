package datum

// PrimitiveFunc is the opaque native handle behind a [Primitive] procedure.
// It is intentionally minimal (just the evaluated argument vector in, a
// value or error out); anything needing the calling environment or tail
// position is a [Compound] procedure instead.
type PrimitiveFunc func(args []Value) (Value, error)

// Primitive is a native procedure: an opaque handle plus its bound name
// (used for display, e.g. `#<procedure car>`).
type Primitive struct {
	Name string
	Fn   PrimitiveFunc
}

// NewPrimitive wraps a [Primitive] in a [Value].
func NewPrimitive(name string, fn PrimitiveFunc) Value {
	return Value{tag: TagPrimitive, payload: &Primitive{Name: name, Fn: fn}}
}

// Primitive reports v's *[Primitive] payload and whether v was one.
func (v Value) Primitive() (*Primitive, bool) {
	if v.tag != TagPrimitive {
		return nil, false
	}
	return v.payload.(*Primitive), true
}

// Compound is an interpreted procedure: a parameter list, a body
// expression, the environment it closed over, and an optional bound name.
// Rest is the variadic parameter's name, or "" if the procedure has none.
type Compound struct {
	Params []Symbol
	Rest   Symbol
	Body   Value
	Env    *Env
	Name   string
}

// NewCompound wraps a [Compound] in a [Value].
func NewCompound(c *Compound) Value {
	return Value{tag: TagCompound, payload: c}
}

// Compound reports v's *[Compound] payload and whether v was one.
func (v Value) Compound() (*Compound, bool) {
	if v.tag != TagCompound {
		return nil, false
	}
	return v.payload.(*Compound), true
}

// ProcedureName returns the bound name of a primitive or compound
// procedure, and whether v was a procedure at all. An anonymous compound
// procedure reports ("", true).
func ProcedureName(v Value) (string, bool) {
	if p, ok := v.Primitive(); ok {
		return p.Name, true
	}
	if c, ok := v.Compound(); ok {
		return c.Name, true
	}
	return "", false
}

// IsProcedure reports whether v is a primitive or compound procedure.
func IsProcedure(v Value) bool {
	return v.tag == TagPrimitive || v.tag == TagCompound
}
