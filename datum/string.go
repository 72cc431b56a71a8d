package datum

// Str is a mutable, shared character sequence (Scheme "string").
// Runes, not bytes, so that indexing and mutation operate on unicode scalar
// values, matching the [Char] variant's unit.
type Str struct {
	Runes []rune
}

// NewString wraps a Go string's runes in a [Value].
func NewString(s string) Value {
	return Value{tag: TagString, payload: &Str{Runes: []rune(s)}}
}

// NewStringFromRunes wraps runes (not copied) in a [Value].
func NewStringFromRunes(runes []rune) Value {
	return Value{tag: TagString, payload: &Str{Runes: runes}}
}

// Str reports v's *[Str] payload and whether v was a string.
func (v Value) Str() (*Str, bool) {
	if v.tag != TagString {
		return nil, false
	}
	return v.payload.(*Str), true
}

// String renders s's current contents as a Go string.
func (s *Str) String() string {
	return string(s.Runes)
}
