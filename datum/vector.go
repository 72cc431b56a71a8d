package datum

// Vector is a mutable, shared sequence of data.
type Vector struct {
	Items []Value
}

// NewVector wraps items (not copied) in a [Value].
func NewVector(items []Value) Value {
	return Value{tag: TagVector, payload: &Vector{Items: items}}
}

// Vector reports v's *[Vector] payload and whether v was a vector.
func (v Value) Vector() (*Vector, bool) {
	if v.tag != TagVector {
		return nil, false
	}
	return v.payload.(*Vector), true
}
