package listops

import "github.com/heistscheme/heistcore/datum"

// Length counts the pairs in v's cdr-chain and reports whether it is a
// proper list. For an improper chain, n is the number of pairs before the
// non-list tail; for a cyclic chain, n is the number of distinct pairs (the
// acyclic prefix plus one pass around the cycle). Neither is a list length,
// so callers that need "the" length should check status == Proper.
func Length(v datum.Value) (n int, status Status) {
	status, _ = Classify(v)
	if status == Cyclic {
		// Count distinct pair cells reachable from v: the (possibly empty)
		// acyclic prefix plus one full pass around the cycle.
		entry := CycleEntry(v)
		cur := v
		visitedEntry := false
		for {
			p, _ := cur.Pair()
			if sameAddr(cur, entry) {
				if visitedEntry {
					return n, status
				}
				visitedEntry = true
			}
			n++
			cur = p.Cdr
		}
	}
	cur := v
	for {
		p, ok := cur.Pair()
		if !ok {
			return n, status
		}
		n++
		cur = p.Cdr
	}
}

func sameAddr(a, b datum.Value) bool {
	pa, aok := a.Pair()
	pb, bok := b.Pair()
	return aok && bok && pa == pb
}
