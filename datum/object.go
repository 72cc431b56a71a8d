package datum

// Object is a prototype-based instance: a reference to its prototype
// (nil at the root of a prototype chain) and parallel name/value vectors
// for members and methods. The vectors are independent slices per Object —
// deep-copying an Object gives it its own member/method vectors, so
// mutating a copy's vectors never affects the original — but the
// prototype link and any shared procedure/member values are not
// deep-copied (package structural; spec.md §9 Open Question 2).
type Object struct {
	Proto        *Object
	MemberNames  []Symbol
	MemberValues []Value
	MethodNames  []Symbol
	MethodValues []Value
}

// NewObject wraps an [Object] in a [Value].
func NewObject(o *Object) Value {
	return Value{tag: TagObject, payload: o}
}

// Object reports v's *[Object] payload and whether v was one.
func (v Value) Object() (*Object, bool) {
	if v.tag != TagObject {
		return nil, false
	}
	return v.payload.(*Object), true
}

// Member looks up name in o's own member vector only (no prototype walk;
// prototype-chain resolution is an evaluator concern).
func (o *Object) Member(name Symbol) (Value, bool) {
	for i, n := range o.MemberNames {
		if n == name {
			return o.MemberValues[i], true
		}
	}
	return Value{}, false
}

// Method looks up name in o's own method vector only.
func (o *Object) Method(name Symbol) (Value, bool) {
	for i, n := range o.MethodNames {
		if n == name {
			return o.MethodValues[i], true
		}
	}
	return Value{}, false
}
