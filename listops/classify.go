package listops

import "github.com/heistscheme/heistcore/datum"

// Status classifies a chain of pairs rooted at some value.
type Status int

const (
	// Proper means the cdr-chain terminates at the empty list.
	Proper Status = iota
	// Improper means the cdr-chain terminates at a non-pair, non-empty-list
	// value.
	Improper
	// Cyclic means the cdr-chain never terminates: following cdrs
	// eventually revisits an already-seen pair.
	Cyclic
)

func (s Status) String() string {
	switch s {
	case Proper:
		return "proper"
	case Improper:
		return "improper"
	case Cyclic:
		return "cyclic"
	default:
		return "unknown"
	}
}

// Classify walks the cdr-chain starting at head using Floyd's
// tortoise-and-hare algorithm (spec.md §4.1): a slow pointer advances one
// pair at a time, a fast pointer advances two; if they ever point at the
// same pair, the chain is [Cyclic]. Otherwise the chain is finite and
// terminal reports what it ended on: [EmptyList] for [Proper], or the
// offending non-pair value for [Improper]. head itself need not be a pair
// (the empty list classifies as Proper and any other non-pair as Improper,
// each with terminal == head).
func Classify(head datum.Value) (status Status, terminal datum.Value) {
	if datum.IsEmptyList(head) {
		return Proper, head
	}
	if _, ok := head.Pair(); !ok {
		return Improper, head
	}

	slow, fast := head, head
	for {
		fastPair, ok := fast.Pair()
		if !ok {
			if datum.IsEmptyList(fast) {
				return Proper, fast
			}
			return Improper, fast
		}
		fast = fastPair.Cdr

		fastPair2, ok := fast.Pair()
		if !ok {
			if datum.IsEmptyList(fast) {
				return Proper, fast
			}
			return Improper, fast
		}
		fast = fastPair2.Cdr

		slowPair, _ := slow.Pair()
		slow = slowPair.Cdr

		if samePair(slow, fast) {
			return Cyclic, datum.Value{}
		}
	}
}

// CycleEntry locates the pair at which a cyclic chain re-enters itself,
// using the standard second pass: one pointer restarts from head, another
// stays at the tortoise/hare meeting point, both advancing one pair at a
// time; they meet at the entry. CycleEntry panics if head does not in fact
// classify as [Cyclic]; callers are expected to check [Classify] first.
func CycleEntry(head datum.Value) datum.Value {
	meeting := findMeetingPoint(head)
	p1, p2 := head, meeting
	for !samePair(p1, p2) {
		p1Pair, _ := p1.Pair()
		p1 = p1Pair.Cdr
		p2Pair, _ := p2.Pair()
		p2 = p2Pair.Cdr
	}
	return p1
}

func findMeetingPoint(head datum.Value) datum.Value {
	slow, fast := head, head
	for {
		fastPair, _ := fast.Pair()
		fast = fastPair.Cdr
		fastPair2, _ := fast.Pair()
		fast = fastPair2.Cdr
		slowPair, _ := slow.Pair()
		slow = slowPair.Cdr
		if samePair(slow, fast) {
			return slow
		}
	}
}

func samePair(a, b datum.Value) bool {
	pa, aok := a.Pair()
	pb, bok := b.Pair()
	return aok && bok && pa == pb
}

// IsList reports whether v is a proper list (spec.md §8 Testable Property
// 7 / Scenario 5: a cyclic list is not a list).
func IsList(v datum.Value) bool {
	status, _ := Classify(v)
	return status == Proper
}
