package datum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heistscheme/heistcore/datum"
)

func TestBooleanTruthy(t *testing.T) {
	b, ok := datum.True.Boolean()
	require.True(t, ok)
	assert.True(t, b)

	b, ok = datum.False.Boolean()
	require.True(t, ok)
	assert.False(t, b)

	assert.True(t, datum.Truthy(datum.NewSymbol("x")))
	assert.True(t, datum.Truthy(datum.NewNumber(datum.NewExactInt(0))))
	assert.False(t, datum.Truthy(datum.False))
	assert.True(t, datum.Truthy(datum.True))
}

func TestSharedPairIdentity(t *testing.T) {
	p := datum.Cons(datum.NewSymbol("a"), datum.EmptyList)
	alias := p
	pair, ok := p.Pair()
	require.True(t, ok)
	pair.Car = datum.NewSymbol("b")

	aliasPair, ok := alias.Pair()
	require.True(t, ok)
	sym, ok := aliasPair.Car.Symbol()
	require.True(t, ok)
	assert.Equal(t, datum.Symbol("b"), sym, "mutation through one holder must be visible through every holder")
}

func TestListConstruction(t *testing.T) {
	l := datum.List(datum.NewNumber(datum.NewExactInt(1)), datum.NewNumber(datum.NewExactInt(2)))
	p1, ok := l.Pair()
	require.True(t, ok)
	n1, _ := p1.Car.Number()
	f1, _ := n1.Float()
	assert.Equal(t, float64(1), f1)

	p2, ok := p1.Cdr.Pair()
	require.True(t, ok)
	n2, _ := p2.Car.Number()
	f2, _ := n2.Float()
	assert.Equal(t, float64(2), f2)
	assert.True(t, datum.IsEmptyList(p2.Cdr))
}

func TestImproperListStar(t *testing.T) {
	l := datum.ListStar(datum.NewSymbol("a"), datum.NewSymbol("b"), datum.NewSymbol("c"))
	p, ok := l.Pair()
	require.True(t, ok)
	sym, _ := p.Car.Symbol()
	assert.Equal(t, datum.Symbol("a"), sym)

	p2, ok := p.Cdr.Pair()
	require.True(t, ok)
	sym2, _ := p2.Car.Symbol()
	assert.Equal(t, datum.Symbol("b"), sym2)

	sym3, ok := p2.Cdr.Symbol()
	require.True(t, ok)
	assert.Equal(t, datum.Symbol("c"), sym3, "the final element is the tail, not a list element")
}

func TestNumberExactnessAffectsEquality(t *testing.T) {
	exact := datum.NewExactInt(1)
	inexact := datum.NewInexact(1)
	assert.False(t, exact.Equal(inexact), "equal numeric value but differing exactness must not be Number-equal")
	assert.True(t, exact.Equal(datum.NewExactInt(1)))
}

func TestIsStreamPair(t *testing.T) {
	env := datum.NewEnv(nil)
	d1 := datum.NewDelay(datum.NewNumber(datum.NewExactInt(1)), env)
	d2 := datum.NewDelay(datum.EmptyList, env)
	sp := datum.Cons(d1, d2)
	assert.True(t, datum.IsStreamPair(sp))

	notStream := datum.Cons(datum.NewNumber(datum.NewExactInt(1)), datum.EmptyList)
	assert.False(t, datum.IsStreamPair(notStream))
}

func TestSentinelValueRecognizedInBothShapes(t *testing.T) {
	pairForm := datum.List(datum.NewSymbol(datum.QuoteSymbol), datum.SentinelArg)
	assert.True(t, datum.IsSentinelValue(pairForm))

	exprForm := datum.NewExpression([]datum.Value{datum.NewSymbol(datum.QuoteSymbol), datum.SentinelArg})
	assert.True(t, datum.IsSentinelValue(exprForm))

	assert.True(t, datum.IsSentinelArgs([]datum.Value{datum.SentinelArg}))
	assert.False(t, datum.IsSentinelArgs([]datum.Value{datum.SentinelArg, datum.SentinelArg}))
}

func TestEnvLookupDefineSet(t *testing.T) {
	root := datum.NewEnv(nil)
	root.Define("x", datum.NewNumber(datum.NewExactInt(1)))
	child := datum.NewEnv(root)

	v, ok := child.Lookup("x")
	require.True(t, ok)
	n, _ := v.Number()
	f, _ := n.Float()
	assert.Equal(t, float64(1), f)

	ok = child.Set("x", datum.NewNumber(datum.NewExactInt(2)))
	require.True(t, ok, "set! must find bindings up the parent chain")

	v2, _ := root.Lookup("x")
	n2, _ := v2.Number()
	f2, _ := n2.Float()
	assert.Equal(t, float64(2), f2, "mutation through set! is visible from the defining frame")

	_, ok = child.Lookup("undefined-var")
	assert.False(t, ok)
}

func TestObjectMemberLookup(t *testing.T) {
	proto := &datum.Object{}
	o := &datum.Object{
		Proto:       proto,
		MemberNames: []datum.Symbol{"x"},
		MemberValues: []datum.Value{
			datum.NewNumber(datum.NewExactInt(1)),
		},
	}
	v, ok := o.Member("x")
	require.True(t, ok)
	n, _ := v.Number()
	f, _ := n.Float()
	assert.Equal(t, float64(1), f)

	_, ok = o.Member("y")
	assert.False(t, ok)
}

func TestHashMapGetSetDelete(t *testing.T) {
	eq := func(a, b datum.Value) bool {
		as, aok := a.Symbol()
		bs, bok := b.Symbol()
		return aok && bok && as == bs
	}
	h := &datum.HashMap{}
	h.Set(datum.NewSymbol("k1"), datum.NewNumber(datum.NewExactInt(1)), eq)
	h.Set(datum.NewSymbol("k2"), datum.NewNumber(datum.NewExactInt(2)), eq)
	h.Set(datum.NewSymbol("k1"), datum.NewNumber(datum.NewExactInt(9)), eq)

	v, ok := h.Get(datum.NewSymbol("k1"), eq)
	require.True(t, ok)
	n, _ := v.Number()
	f, _ := n.Float()
	assert.Equal(t, float64(9), f, "Set on an existing key replaces, rather than appending")
	assert.Len(t, h.Entries, 2)

	assert.True(t, h.Delete(datum.NewSymbol("k2"), eq))
	assert.Len(t, h.Entries, 1)
	assert.False(t, h.Delete(datum.NewSymbol("missing"), eq))
}
