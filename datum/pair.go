package datum

// Pair is a cons cell: two mutable slots. Pairs are shared handles — every
// [Value] wrapping the same *Pair is the same cell, and either's car/cdr may
// reference any datum, including (transitively) itself; cycles are
// tolerated everywhere in this package and must be handled explicitly by
// any code that walks a chain of pairs (see package listops).
type Pair struct {
	Car Value
	Cdr Value
}

// Cons allocates a new pair.
func Cons(car, cdr Value) Value {
	return Value{tag: TagPair, payload: &Pair{Car: car, Cdr: cdr}}
}

// Pair reports v's *[Pair] payload and whether v was a pair.
func (v Value) Pair() (*Pair, bool) {
	if v.tag != TagPair {
		return nil, false
	}
	return v.payload.(*Pair), true
}

// List builds a proper list from items, terminated by [EmptyList].
func List(items ...Value) Value {
	return ListStar(append(append([]Value{}, items...), EmptyList)...)
}

// ListStar builds a list from items where the final element is the tail
// (which need not be the empty list, producing an improper list).
func ListStar(items ...Value) Value {
	if len(items) == 0 {
		return EmptyList
	}
	if len(items) == 1 {
		return items[0]
	}
	tail := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		tail = Cons(items[i], tail)
	}
	return tail
}
