package seq

import (
	"sort"

	"golang.org/x/exp/slices"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
	"github.com/heistscheme/heistcore/internal/seqview"
)

func materialize(v seqview.View) []datum.Value {
	items := make([]datum.Value, v.Len())
	for i := range items {
		items[i] = v.Get(i)
	}
	return items
}

func repack(v seqview.View, items []datum.Value) datum.Value {
	out := v.New()
	for _, it := range items {
		_ = out.Push(it)
	}
	return out.Value()
}

// Sort returns a new sequence of sq's shape ordered by less. It is
// implemented atop [slices.SortFunc], which does not guarantee stability;
// use [SortStable] when that matters.
func Sort(ev evalapi.Evaluator, env *datum.Env, less, sq datum.Value) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	items := materialize(v)
	var applyErr error
	lessThan := func(a, b datum.Value) (bool, error) {
		res, err := ev.Apply(less, []datum.Value{a, b}, env, false)
		if err != nil {
			return false, err
		}
		return datum.Truthy(res), nil
	}
	slices.SortFunc(items, func(a, b datum.Value) int {
		if applyErr != nil {
			return 0
		}
		lt, err := lessThan(a, b)
		if err != nil {
			applyErr = err
			return 0
		}
		if lt {
			return -1
		}
		gt, err := lessThan(b, a)
		if err != nil {
			applyErr = err
			return 0
		}
		if gt {
			return 1
		}
		return 0
	})
	if applyErr != nil {
		return datum.Value{}, applyErr
	}
	return repack(v, items), nil
}

// SortStable is [Sort], but via [sort.SliceStable]: equal elements (per
// less) keep their original relative order.
func SortStable(ev evalapi.Evaluator, env *datum.Env, less, sq datum.Value) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	items := materialize(v)
	var applyErr error
	sort.SliceStable(items, func(i, j int) bool {
		if applyErr != nil {
			return false
		}
		res, err := ev.Apply(less, []datum.Value{items[i], items[j]}, env, false)
		if err != nil {
			applyErr = err
			return false
		}
		return datum.Truthy(res)
	})
	if applyErr != nil {
		return datum.Value{}, applyErr
	}
	return repack(v, items), nil
}

// Merge merges two already-sorted, same-shape sequences.
func Merge(ev evalapi.Evaluator, env *datum.Env, less, seqA, seqB datum.Value) (datum.Value, error) {
	views, err := openViews([]datum.Value{seqA, seqB})
	if err != nil {
		return datum.Value{}, err
	}
	a, b := views[0], views[1]
	out := a.New()
	i, j := 0, 0
	for i < a.Len() && j < b.Len() {
		bLessA, err := ev.Apply(less, []datum.Value{b.Get(j), a.Get(i)}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if datum.Truthy(bLessA) {
			if err := out.Push(b.Get(j)); err != nil {
				return datum.Value{}, err
			}
			j++
		} else {
			if err := out.Push(a.Get(i)); err != nil {
				return datum.Value{}, err
			}
			i++
		}
	}
	for ; i < a.Len(); i++ {
		if err := out.Push(a.Get(i)); err != nil {
			return datum.Value{}, err
		}
	}
	for ; j < b.Len(); j++ {
		if err := out.Push(b.Get(j)); err != nil {
			return datum.Value{}, err
		}
	}
	return out.Value(), nil
}

// DeleteNeighborDups returns a new sequence with runs of adjacent elements
// equal per eq collapsed to their first member.
func DeleteNeighborDups(ev evalapi.Evaluator, env *datum.Env, eq, sq datum.Value) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	out := v.New()
	if v.Len() == 0 {
		return out.Value(), nil
	}
	prev := v.Get(0)
	if err := out.Push(prev); err != nil {
		return datum.Value{}, err
	}
	for i := 1; i < v.Len(); i++ {
		cur := v.Get(i)
		same, err := ev.Apply(eq, []datum.Value{prev, cur}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if !datum.Truthy(same) {
			if err := out.Push(cur); err != nil {
				return datum.Value{}, err
			}
			prev = cur
		}
	}
	return out.Value(), nil
}

// DeleteNeighborDupsBang is [DeleteNeighborDups], but mutates sq in place
// (shrinking its underlying vector/string, or splicing out collapsed
// pairs) instead of building a fresh sequence.
func DeleteNeighborDupsBang(ev evalapi.Evaluator, env *datum.Env, eq, sq datum.Value) (datum.Value, error) {
	switch sq.Tag() {
	case datum.TagVector:
		vec, _ := sq.Vector()
		write := 0
		for read := 0; read < len(vec.Items); read++ {
			if write == 0 {
				vec.Items[write] = vec.Items[read]
				write++
				continue
			}
			same, err := ev.Apply(eq, []datum.Value{vec.Items[write-1], vec.Items[read]}, env, false)
			if err != nil {
				return datum.Value{}, err
			}
			if !datum.Truthy(same) {
				vec.Items[write] = vec.Items[read]
				write++
			}
		}
		vec.Items = vec.Items[:write]
		return sq, nil
	case datum.TagString:
		str, _ := sq.Str()
		write := 0
		for read := 0; read < len(str.Runes); read++ {
			if write == 0 {
				str.Runes[write] = str.Runes[read]
				write++
				continue
			}
			same, err := ev.Apply(eq, []datum.Value{datum.NewChar(str.Runes[write-1]), datum.NewChar(str.Runes[read])}, env, false)
			if err != nil {
				return datum.Value{}, err
			}
			if !datum.Truthy(same) {
				str.Runes[write] = str.Runes[read]
				write++
			}
		}
		str.Runes = str.Runes[:write]
		return sq, nil
	case datum.TagSymbol, datum.TagPair:
		if datum.IsEmptyList(sq) {
			return sq, nil
		}
		head, ok := sq.Pair()
		if !ok {
			return datum.Value{}, unrecognizedSeq(sq)
		}
		prev := head
		cur := prev.Cdr
		for {
			curPair, ok := cur.Pair()
			if !ok {
				break
			}
			same, err := ev.Apply(eq, []datum.Value{prev.Car, curPair.Car}, env, false)
			if err != nil {
				return datum.Value{}, err
			}
			if datum.Truthy(same) {
				prev.Cdr = curPair.Cdr
				cur = curPair.Cdr
				continue
			}
			prev = curPair
			cur = curPair.Cdr
		}
		return sq, nil
	default:
		return datum.Value{}, unrecognizedSeq(sq)
	}
}
