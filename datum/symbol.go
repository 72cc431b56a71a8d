package datum

// Symbol is an interned Scheme identifier. Go's string comparison already
// gives symbols value equality without a separate intern table; "interned"
// here describes the language's semantics, not an implementation
// requirement this package must provide.
type Symbol string

const (
	// EmptyListSymbol is the dedicated symbol representing the empty list
	// `()`. It is a symbol, not a pair: see [EmptyList].
	EmptyListSymbol Symbol = "()"

	// SentinelArgSymbol represents "no argument given" in an argument
	// vector. A vector consisting of exactly this symbol is semantically
	// empty; see [IsSentinelArgs].
	SentinelArgSymbol Symbol = "*sentinel-arg*"

	// QuoteSymbol is the symbol naming the `quote` special form, used to
	// recognize sentinel values of the form `(quote sentinel-arg)`.
	QuoteSymbol Symbol = "quote"
)

// EmptyList is the canonical empty-list value. It is a symbol, never a
// pair; [listops.Classify] treats it as the proper terminator of a list.
var EmptyList = NewSymbol(EmptyListSymbol)

// SentinelArg is the canonical sentinel-argument value.
var SentinelArg = NewSymbol(SentinelArgSymbol)

// NewSymbol wraps a [Symbol] in a [Value].
func NewSymbol(s Symbol) Value {
	return Value{tag: TagSymbol, payload: s}
}

// IsEmptyList reports whether v is the empty-list symbol.
func IsEmptyList(v Value) bool {
	return v.tag == TagSymbol && v.payload.(Symbol) == EmptyListSymbol
}

// IsSentinelArgs reports whether an evaluated argument vector of data is
// semantically empty, i.e. is exactly `(sentinel-arg)`.
func IsSentinelArgs(args []Value) bool {
	if len(args) != 1 {
		return false
	}
	a := args[0]
	return a.tag == TagSymbol && a.payload.(Symbol) == SentinelArgSymbol
}

// IsSentinelValue reports whether v is the sentinel *value*, the two-element
// expression `(quote sentinel-arg)`, represented either as a proper pair
// list or as a raw [Expression] (both shapes occur depending on whether the
// form was read or is being passed around internally as unevaluated data).
func IsSentinelValue(v Value) bool {
	items, ok := twoElementList(v)
	if !ok {
		return false
	}
	head, ok := items[0].Symbol()
	if !ok || head != QuoteSymbol {
		return false
	}
	tail, ok := items[1].Symbol()
	return ok && tail == SentinelArgSymbol
}

func twoElementList(v Value) ([2]Value, bool) {
	switch v.tag {
	case TagExpression:
		e := v.payload.(*Expression)
		if len(e.Data) == 2 {
			return [2]Value{e.Data[0], e.Data[1]}, true
		}
	case TagPair:
		p := v.payload.(*Pair)
		if p.Cdr.tag == TagPair {
			p2 := p.Cdr.payload.(*Pair)
			if IsEmptyList(p2.Cdr) {
				return [2]Value{p.Car, p2.Car}, true
			}
		}
	}
	return [2]Value{}, false
}
