package structural

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/listops"
)

// DeepCopy implements deep-copy (spec.md §4.4): atomic-by-value data is
// returned as-is; vectors, hash-maps, strings, and objects get a fresh
// handle with recursively copied contents (an object's prototype is
// shared, never copied); pairs are copied into a parallel, cycle-free-or-
// closed chain sharing nothing with the input; procedures and delays are
// shared rather than copied, matching the source behaviour the spec
// preserves.
func DeepCopy(v datum.Value) datum.Value {
	switch v.Tag() {
	case datum.TagString:
		s, _ := v.Str()
		return datum.NewStringFromRunes(append([]rune(nil), s.Runes...))
	case datum.TagVector:
		vec, _ := v.Vector()
		items := make([]datum.Value, len(vec.Items))
		for i, it := range vec.Items {
			items[i] = DeepCopy(it)
		}
		return datum.NewVector(items)
	case datum.TagHashMap:
		h, _ := v.HashMap()
		entries := make([]datum.HMEntry, len(h.Entries))
		for i, e := range h.Entries {
			entries[i] = datum.HMEntry{Key: DeepCopy(e.Key), Val: DeepCopy(e.Val)}
		}
		return datum.NewHashMap(entries)
	case datum.TagObject:
		o, _ := v.Object()
		memberValues := make([]datum.Value, len(o.MemberValues))
		for i, mv := range o.MemberValues {
			memberValues[i] = DeepCopy(mv)
		}
		return datum.NewObject(&datum.Object{
			Proto:        o.Proto,
			MemberNames:  append([]datum.Symbol(nil), o.MemberNames...),
			MemberValues: memberValues,
			MethodNames:  append([]datum.Symbol(nil), o.MethodNames...),
			MethodValues: append([]datum.Value(nil), o.MethodValues...),
		})
	case datum.TagPair:
		return deepCopyPair(v)
	default:
		return v
	}
}

func deepCopyPair(v datum.Value) datum.Value {
	status, _ := listops.Classify(v)
	if status != listops.Cyclic {
		return deepCopyAcyclicChain(v)
	}
	return deepCopyCyclicChain(v)
}

// deepCopyAcyclicChain recursively copies a proper or improper pair chain.
func deepCopyAcyclicChain(v datum.Value) datum.Value {
	p, ok := v.Pair()
	if !ok {
		return DeepCopy(v)
	}
	car := DeepCopy(p.Car)
	cdr := deepCopyAcyclicChain(p.Cdr)
	return datum.Cons(car, cdr)
}

// deepCopyCyclicChain implements spec.md §4.4's cyclic case: copy the
// acyclic prefix up to the cycle entry, copy the cycle body once, then
// close the cycle by pointing the last new node's cdr back at the new
// entry node.
func deepCopyCyclicChain(v datum.Value) datum.Value {
	entry := listops.CycleEntry(v)
	entryPair, _ := entry.Pair()

	var orig []*datum.Pair
	entrySeen := false
	enteredAt := -1
	cur := v
	for {
		p, ok := cur.Pair()
		if !ok {
			break
		}
		if p == entryPair {
			if entrySeen {
				break
			}
			entrySeen = true
			enteredAt = len(orig)
		}
		orig = append(orig, p)
		cur = p.Cdr
	}

	newVals := make([]datum.Value, len(orig))
	newPairs := make([]*datum.Pair, len(orig))
	for i, p := range orig {
		newVals[i] = datum.Cons(DeepCopy(p.Car), datum.Undefined)
		newPairs[i], _ = newVals[i].Pair()
	}
	for i := range orig {
		if i == len(orig)-1 {
			newPairs[i].Cdr = newVals[enteredAt]
		} else {
			newPairs[i].Cdr = newVals[i+1]
		}
	}
	return newVals[0]
}
