package structural_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/structural"
)

func num(i int64) datum.Value { return datum.NewNumber(datum.NewExactInt(i)) }

// valueCmpOpts delegates datum.Value comparison to structural.Equal rather
// than reflecting its unexported tag/payload fields.
var valueCmpOpts = cmp.Comparer(func(a, b datum.Value) bool {
	eq, err := structural.Equal(a, b, nil)
	return err == nil && eq
})

func TestEqualNestedLists(t *testing.T) {
	a := datum.List(num(1), num(2), datum.List(num(3)))
	b := datum.List(num(1), num(2), datum.List(num(3)))
	eq, err := structural.Equal(a, b, nil)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestEqualDifferentTags(t *testing.T) {
	eq, err := structural.Equal(num(1), datum.NewString("1"), nil)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestEqualExactnessMatters(t *testing.T) {
	exact := datum.NewNumber(datum.NewExactInt(1))
	inexact := datum.NewNumber(datum.NewInexact(1))
	eq, err := structural.Equal(exact, inexact, nil)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestEqualSharedCyclicStructureTerminates(t *testing.T) {
	x := datum.List(num(1), num(2), num(3))
	p1, _ := x.Pair()
	p2, _ := p1.Cdr.Pair()
	p3, _ := p2.Cdr.Pair()
	p3.Cdr = x
	eq, err := structural.Equal(x, x, nil)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestDeepCopyEqualsOriginal(t *testing.T) {
	original := datum.List(num(1), datum.NewString("hi"), datum.List(num(2), num(3)))
	copied := structural.DeepCopy(original)
	eq, err := structural.Equal(original, copied, nil)
	require.NoError(t, err)
	assert.True(t, eq)

	// mutating the copy must not affect the original
	cp, _ := copied.Pair()
	cp.Car = num(999)
	op, _ := original.Pair()
	assert.Equal(t, int64(1), rawInt(op.Car))
}

func rawInt(v datum.Value) int64 {
	n, _ := v.Number()
	f, _ := n.Float()
	return int64(f)
}

func TestDeepCopyCyclicStructureIsIsomorphicButDisjoint(t *testing.T) {
	x := datum.List(num(1), num(2), num(3))
	p1, _ := x.Pair()
	p2, _ := p1.Cdr.Pair()
	p3, _ := p2.Cdr.Pair()
	p3.Cdr = x

	copied := structural.DeepCopy(x)
	cp1, ok := copied.Pair()
	require.True(t, ok)
	assert.NotSame(t, p1, cp1)
	assert.Equal(t, int64(1), rawInt(cp1.Car))

	cp2, _ := cp1.Cdr.Pair()
	cp3, _ := cp2.Cdr.Pair()
	assert.Same(t, cp1, mustPair(t, cp3.Cdr), "the copy's cycle must close back on its own entry node")
}

func mustPair(t *testing.T, v datum.Value) *datum.Pair {
	t.Helper()
	p, ok := v.Pair()
	require.True(t, ok)
	return p
}

func TestDisplayWriteRoundTripOnAtoms(t *testing.T) {
	s := datum.NewString("hello\nworld")
	written, err := structural.Write(s, nil)
	require.NoError(t, err)
	assert.Equal(t, `"hello\nworld"`, written)

	displayed, err := structural.Display(s, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", displayed)
}

func TestWriteCharLiteral(t *testing.T) {
	written, err := structural.Write(datum.NewChar(' '), nil)
	require.NoError(t, err)
	assert.Equal(t, `#\space`, written)

	written, err = structural.Write(datum.NewChar('a'), nil)
	require.NoError(t, err)
	assert.Equal(t, `#\a`, written)
}

func TestWriteList(t *testing.T) {
	l := datum.List(num(1), num(2), datum.List(num(3)))
	written, err := structural.Write(l, nil)
	require.NoError(t, err)
	assert.Equal(t, "(1 2 (3))", written)
}

func TestWriteImproperList(t *testing.T) {
	l := datum.ListStar(num(1), num(2), num(3))
	written, err := structural.Write(l, nil)
	require.NoError(t, err)
	assert.Equal(t, "(1 2 . 3)", written)
}

func TestWriteCyclicListEmitsCycleMarkerOnce(t *testing.T) {
	x := datum.List(num(1), num(2), num(3))
	p1, _ := x.Pair()
	p2, _ := p1.Cdr.Pair()
	p3, _ := p2.Cdr.Pair()
	p3.Cdr = x
	written, err := structural.Write(x, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, countOccurrences(written, "<...cycle>"))
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
			i += len(sub) - 1
		}
	}
	return n
}

func TestWriteStreamPairDoesNotForce(t *testing.T) {
	divergingExpr := datum.NewSymbol("would-diverge-if-evaluated")
	s := datum.Cons(datum.NewDelay(num(1), nil), datum.NewDelay(divergingExpr, nil))
	written, err := structural.Write(s, nil)
	require.NoError(t, err)
	assert.Equal(t, "#<stream>", written)
}

func TestPrettyPrintFitsOnOneLine(t *testing.T) {
	l := datum.List(num(1), num(2))
	out, err := structural.PrettyPrint(l, 40, nil)
	require.NoError(t, err)
	assert.Equal(t, "(1 2)", out)
}

func TestDeepCopyRoundTripMatchesViaCmpDiff(t *testing.T) {
	original := datum.List(num(1), datum.List(num(2), num(3)), datum.NewString("x"))
	copied := structural.DeepCopy(original)

	if diff := cmp.Diff(original, copied, valueCmpOpts); diff != "" {
		t.Errorf("deep copy diverged from original (-want +got):\n%s", diff)
	}
}

func TestCyclicEqualityDumpsOnFailure(t *testing.T) {
	x := datum.List(num(1), num(2), num(3))
	p1, _ := x.Pair()
	p2, _ := p1.Cdr.Pair()
	p3, _ := p2.Cdr.Pair()
	p3.Cdr = x

	eq, err := structural.Equal(x, x, nil)
	require.NoError(t, err)
	if !assert.True(t, eq) {
		t.Logf("cyclic value that failed equal?:\n%s", spew.Sdump(p1))
	}
}

func TestPrettyPrintWrapsLongForm(t *testing.T) {
	l := datum.List(
		datum.NewSymbol("define"),
		datum.List(datum.NewSymbol("f"), datum.NewSymbol("x")),
		datum.List(
			datum.NewSymbol("if"),
			datum.List(datum.NewSymbol("zero?"), datum.NewSymbol("x")),
			num(1),
			datum.List(datum.NewSymbol("*"), datum.NewSymbol("x"), datum.List(datum.NewSymbol("f"), datum.List(datum.NewSymbol("-"), datum.NewSymbol("x"), num(1)))),
		),
	)
	out, err := structural.PrettyPrint(l, 40, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "\n")
	assert.Contains(t, out, "  ")
}
