package structural

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
)

// Equal implements equal?: recursive and type-first (different tags are
// always unequal), comparing atomic tags by value and reference tags
// structurally (spec.md §4.3). Cycles are not special-cased: comparing a
// cyclic pair chain against itself terminates via the pointer-identity
// fast path in equalPair; two independently built cyclic chains are
// outside the defined domain and may not terminate, per spec.
//
// md may be nil, in which case objects always fall back to structural
// member/method comparison.
func Equal(a, b datum.Value, md evalapi.MethodDispatcher) (bool, error) {
	if a.Tag() != b.Tag() {
		return false, nil
	}
	switch a.Tag() {
	case datum.TagUndefined, datum.TagVoid, datum.TagUnspecifiedExecutable:
		return true, nil
	case datum.TagBoolean:
		ab, _ := a.Boolean()
		bb, _ := b.Boolean()
		return ab == bb, nil
	case datum.TagChar:
		ac, _ := a.Char()
		bc, _ := b.Char()
		return ac == bc, nil
	case datum.TagNumber:
		an, _ := a.Number()
		bn, _ := b.Number()
		return an.Equal(bn), nil
	case datum.TagSymbol:
		as, _ := a.Symbol()
		bs, _ := b.Symbol()
		return as == bs, nil
	case datum.TagString:
		as, _ := a.Str()
		bs, _ := b.Str()
		return as.String() == bs.String(), nil
	case datum.TagVector:
		return equalVector(a, b, md)
	case datum.TagHashMap:
		return equalHashMap(a, b, md)
	case datum.TagPair:
		return equalPair(a, b, md)
	case datum.TagSyntaxRule:
		return equalSyntaxRule(a, b, md)
	case datum.TagObject:
		return equalObject(a, b, md)
	case datum.TagPrimitive:
		ap, _ := a.Primitive()
		bp, _ := b.Primitive()
		return ap == bp, nil
	case datum.TagCompound:
		ac, _ := a.Compound()
		bc, _ := b.Compound()
		return ac == bc, nil
	case datum.TagDelay:
		ad, _ := a.Delay()
		bd, _ := b.Delay()
		return ad == bd, nil
	case datum.TagEnvironment:
		ae, _ := a.Env()
		be, _ := b.Env()
		return ae == be, nil
	case datum.TagPort:
		ap, _ := a.Port()
		bp, _ := b.Port()
		return ap == bp, nil
	case datum.TagExpression:
		ae, _ := a.Expression()
		be, _ := b.Expression()
		return ae == be, nil
	default:
		return false, nil
	}
}

func equalPair(a, b datum.Value, md evalapi.MethodDispatcher) (bool, error) {
	ap, _ := a.Pair()
	bp, _ := b.Pair()
	if ap == bp {
		return true, nil
	}
	carEq, err := Equal(ap.Car, bp.Car, md)
	if err != nil || !carEq {
		return false, err
	}
	return Equal(ap.Cdr, bp.Cdr, md)
}

func equalVector(a, b datum.Value, md evalapi.MethodDispatcher) (bool, error) {
	av, _ := a.Vector()
	bv, _ := b.Vector()
	if len(av.Items) != len(bv.Items) {
		return false, nil
	}
	for i := range av.Items {
		eq, err := Equal(av.Items[i], bv.Items[i], md)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func equalHashMap(a, b datum.Value, md evalapi.MethodDispatcher) (bool, error) {
	ah, _ := a.HashMap()
	bh, _ := b.HashMap()
	if len(ah.Entries) != len(bh.Entries) {
		return false, nil
	}
	var innerErr error
	eqFn := func(x, y datum.Value) bool {
		if innerErr != nil {
			return false
		}
		ok, err := Equal(x, y, md)
		if err != nil {
			innerErr = err
			return false
		}
		return ok
	}
	for _, e := range ah.Entries {
		val, found := bh.Get(e.Key, eqFn)
		if innerErr != nil {
			return false, innerErr
		}
		if !found {
			return false, nil
		}
		eq, err := Equal(e.Val, val, md)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func equalSyntaxRule(a, b datum.Value, md evalapi.MethodDispatcher) (bool, error) {
	as, _ := a.SyntaxRule()
	bs, _ := b.SyntaxRule()
	if as.Label != bs.Label {
		return false, nil
	}
	if len(as.Literals) != len(bs.Literals) {
		return false, nil
	}
	for i := range as.Literals {
		if as.Literals[i] != bs.Literals[i] {
			return false, nil
		}
	}
	if len(as.Patterns) != len(bs.Patterns) || len(as.Templates) != len(bs.Templates) {
		return false, nil
	}
	for i := range as.Patterns {
		eq, err := Equal(as.Patterns[i], bs.Patterns[i], md)
		if err != nil || !eq {
			return false, err
		}
	}
	for i := range as.Templates {
		eq, err := Equal(as.Templates[i], bs.Templates[i], md)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func equalObject(a, b datum.Value, md evalapi.MethodDispatcher) (bool, error) {
	if md != nil {
		eq, ok, err := md.Equal(a, b)
		if err != nil {
			return false, err
		}
		if ok {
			return eq, nil
		}
	}
	ao, _ := a.Object()
	bo, _ := b.Object()
	if ao.Proto != bo.Proto {
		return false, nil
	}
	if !equalSymbols(ao.MemberNames, bo.MemberNames) || !equalSymbols(ao.MethodNames, bo.MethodNames) {
		return false, nil
	}
	if len(ao.MemberValues) != len(bo.MemberValues) {
		return false, nil
	}
	for i := range ao.MemberValues {
		eq, err := Equal(ao.MemberValues[i], bo.MemberValues[i], md)
		if err != nil || !eq {
			return false, err
		}
	}
	if len(ao.MethodValues) != len(bo.MethodValues) {
		return false, nil
	}
	for i := range ao.MethodValues {
		eq, err := Equal(ao.MethodValues[i], bo.MethodValues[i], md)
		if err != nil || !eq {
			return false, err
		}
	}
	return true, nil
}

func equalSymbols(a, b []datum.Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
