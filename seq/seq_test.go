package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/seq"
)

// primEvaluator applies [datum.Primitive] values directly, which is all
// these tests need: seq never inspects env or tail itself, only forwards
// them to the evaluator.
type primEvaluator struct{}

func (primEvaluator) Apply(proc datum.Value, args []datum.Value, env *datum.Env, tail bool) (datum.Value, error) {
	p, ok := proc.Primitive()
	if !ok {
		panic("primEvaluator: not a primitive")
	}
	return p.Fn(args)
}

func num(i int64) datum.Value { return datum.NewNumber(datum.NewExactInt(i)) }

func intOf(t *testing.T, v datum.Value) int64 {
	t.Helper()
	n, ok := v.Number()
	require.True(t, ok)
	f, _ := n.Float()
	return int64(f)
}

func rawInt(v datum.Value) int64 {
	n, _ := v.Number()
	f, _ := n.Float()
	return int64(f)
}

func prim(name string, fn datum.PrimitiveFunc) datum.Value {
	return datum.NewPrimitive(name, fn)
}

func addProc() datum.Value {
	return prim("+", func(args []datum.Value) (datum.Value, error) {
		var sum int64
		for _, a := range args {
			sum += rawInt(a)
		}
		return num(sum), nil
	})
}

func lessProc() datum.Value {
	return prim("<", func(args []datum.Value) (datum.Value, error) {
		a, _ := args[0].Number()
		b, _ := args[1].Number()
		af, _ := a.Float()
		bf, _ := b.Float()
		return datum.NewBoolean(af < bf), nil
	})
}

func oddProc() datum.Value {
	return prim("odd?", func(args []datum.Value) (datum.Value, error) {
		a, _ := args[0].Number()
		f, _ := a.Float()
		return datum.NewBoolean(int64(f)%2 != 0), nil
	})
}

func toInts(t *testing.T, l datum.Value) []int64 {
	t.Helper()
	var out []int64
	cur := l
	for {
		p, ok := cur.Pair()
		if !ok {
			break
		}
		out = append(out, intOf(t, p.Car))
		cur = p.Cdr
	}
	return out
}

func TestMapLengthInvariantAndValues(t *testing.T) {
	xs := datum.List(num(1), num(2), num(3))
	ys := datum.List(num(10), num(20), num(30))
	result, err := seq.Map(primEvaluator{}, nil, addProc(), xs, ys)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 22, 33}, toInts(t, result))
}

func TestFoldOrdering(t *testing.T) {
	consProc := prim("cons", func(args []datum.Value) (datum.Value, error) {
		return datum.Cons(args[0], args[1]), nil
	})
	xs := datum.List(num(1), num(2), num(3))
	result, err := seq.Fold(primEvaluator{}, nil, consProc, datum.EmptyList, xs)
	require.NoError(t, err)
	p3, ok := result.Pair()
	require.True(t, ok)
	assert.Equal(t, int64(3), intOf(t, p3.Cdr))
	p2, ok := p3.Car.Pair()
	require.True(t, ok)
	assert.Equal(t, int64(2), intOf(t, p2.Cdr))
}

func TestTakeWhileOdd(t *testing.T) {
	xs := datum.List(num(1), num(3), num(4), num(5))
	result, err := seq.TakeWhile(primEvaluator{}, nil, oddProc(), xs)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, toInts(t, result))
}

func TestTakeDropReconstructOriginal(t *testing.T) {
	xs := datum.List(num(1), num(2), num(3), num(4))
	for n := 0; n <= 4; n++ {
		taken, err := seq.Take(xs, n)
		require.NoError(t, err)
		dropped, err := seq.Drop(xs, n)
		require.NoError(t, err)
		assert.Equal(t, append(toInts(t, taken), toInts(t, dropped)...), toInts(t, xs))
	}
}

func TestIota(t *testing.T) {
	result := seq.Iota(5, datum.NewExactInt(0), datum.NewExactInt(1))
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, toInts(t, result))
}

func TestSort(t *testing.T) {
	xs := datum.List(num(3), num(1), num(4), num(1), num(5), num(9), num(2), num(6))
	result, err := seq.Sort(primEvaluator{}, nil, lessProc(), xs)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 2, 3, 4, 5, 6, 9}, toInts(t, result))
}

func TestAnyShortCircuit(t *testing.T) {
	visited := 0
	countingOdd := prim("odd?", func(args []datum.Value) (datum.Value, error) {
		visited++
		a, _ := args[0].Number()
		f, _ := a.Float()
		return datum.NewBoolean(int64(f)%2 != 0), nil
	})
	xs := datum.List(num(1), num(2), num(3))
	result, err := seq.Any(primEvaluator{}, nil, countingOdd, xs)
	require.NoError(t, err)
	assert.True(t, datum.Truthy(result))
	assert.Equal(t, 1, visited, "Any must stop at the first truthy result")
}

func TestEveryOnAllPassReturnsLastResult(t *testing.T) {
	xs := datum.List(num(1), num(3), num(5))
	result, err := seq.Every(primEvaluator{}, nil, oddProc(), xs)
	require.NoError(t, err)
	assert.True(t, datum.Truthy(result))
}

func TestFilterAndRemove(t *testing.T) {
	xs := datum.List(num(1), num(2), num(3), num(4))
	kept, err := seq.Filter(primEvaluator{}, nil, oddProc(), xs)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, toInts(t, kept))

	removed, err := seq.Remove(primEvaluator{}, nil, oddProc(), xs)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, toInts(t, removed))
}

func TestDeleteNeighborDups(t *testing.T) {
	eqProc := prim("=", func(args []datum.Value) (datum.Value, error) {
		a, _ := args[0].Number()
		b, _ := args[1].Number()
		return datum.NewBoolean(a.Equal(b)), nil
	})
	xs := datum.List(num(1), num(1), num(2), num(2), num(2), num(3))
	result, err := seq.DeleteNeighborDups(primEvaluator{}, nil, eqProc, xs)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, toInts(t, result))
}

func TestMixedShapeIsAnError(t *testing.T) {
	xs := datum.List(num(1))
	vec := datum.NewVector([]datum.Value{num(1)})
	_, err := seq.Map(primEvaluator{}, nil, addProc(), xs, vec)
	assert.Error(t, err)
}
