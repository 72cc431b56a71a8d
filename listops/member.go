package listops

import "github.com/heistscheme/heistcore/datum"

// Member returns the first sublist of list whose car is eq-equal to needle,
// and true; or the empty list and false if no such element exists, or the
// chain is exhausted/cyclic without a match. A cyclic chain (detected via
// [Classify]) is walked once over each of its distinct pairs, bounded by
// [Length], rather than looping forever.
func Member(eq func(a, b datum.Value) bool, needle, list datum.Value) (datum.Value, bool) {
	status, _ := Classify(list)
	limit := -1
	if status == Cyclic {
		n, _ := Length(list)
		limit = n
	}
	cur := list
	for i := 0; limit < 0 || i < limit; i++ {
		p, ok := cur.Pair()
		if !ok {
			return datum.EmptyList, false
		}
		if eq(p.Car, needle) {
			return cur, true
		}
		cur = p.Cdr
	}
	return datum.EmptyList, false
}

// Assoc returns the first pair in alist (a list of pairs) whose car is
// eq-equal to key, and true; or false if none matches.
func Assoc(eq func(a, b datum.Value) bool, key, alist datum.Value) (datum.Value, bool) {
	status, _ := Classify(alist)
	limit := -1
	if status == Cyclic {
		n, _ := Length(alist)
		limit = n
	}
	cur := alist
	for i := 0; limit < 0 || i < limit; i++ {
		p, ok := cur.Pair()
		if !ok {
			return datum.Value{}, false
		}
		entry, ok := p.Car.Pair()
		if ok && eq(entry.Car, key) {
			return p.Car, true
		}
		cur = p.Cdr
	}
	return datum.Value{}, false
}
