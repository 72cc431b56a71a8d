package seq

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
	"github.com/heistscheme/heistcore/internal/seqview"
)

// Fold traverses seqs ascending, passing the accumulator first:
// acc = proc(acc, seq1[i], ..., seqn[i]). Visitation stops at the shortest
// sequence's length.
func Fold(ev evalapi.Evaluator, env *datum.Env, proc, init datum.Value, seqs ...datum.Value) (datum.Value, error) {
	views, err := openViews(seqs)
	if err != nil {
		return datum.Value{}, err
	}
	n := minLength(views)
	acc := init
	for i := 0; i < n; i++ {
		args := append([]datum.Value{acc}, gather(views, i)...)
		acc, err = ev.Apply(proc, args, env, false)
		if err != nil {
			return datum.Value{}, err
		}
	}
	return acc, nil
}

// FoldRight traverses seqs descending, passing the accumulator last:
// acc = proc(seq1[i], ..., seqn[i], acc). Only the first n indices are
// visited, n being the shortest sequence's length.
func FoldRight(ev evalapi.Evaluator, env *datum.Env, proc, init datum.Value, seqs ...datum.Value) (datum.Value, error) {
	views, err := openViews(seqs)
	if err != nil {
		return datum.Value{}, err
	}
	n := minLength(views)
	acc := init
	for i := n - 1; i >= 0; i-- {
		args := append(gather(views, i), acc)
		acc, err = ev.Apply(proc, args, env, false)
		if err != nil {
			return datum.Value{}, err
		}
	}
	return acc, nil
}

// Count returns the number of elements of sq for which pred is true.
func Count(ev evalapi.Evaluator, env *datum.Env, pred, sq datum.Value) (int, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return 0, unrecognizedSeq(sq)
	}
	n := 0
	for i := 0; i < v.Len(); i++ {
		res, err := ev.Apply(pred, []datum.Value{v.Get(i)}, env, false)
		if err != nil {
			return 0, err
		}
		if datum.Truthy(res) {
			n++
		}
	}
	return n, nil
}

// Any short-circuits on the first truthy result of pred applied across
// seqs in parallel index order, returning that result; if none is truthy
// (or a sequence is empty) it returns #f. Visitation stops at the shortest
// sequence's length.
func Any(ev evalapi.Evaluator, env *datum.Env, pred datum.Value, seqs ...datum.Value) (datum.Value, error) {
	views, err := openViews(seqs)
	if err != nil {
		return datum.Value{}, err
	}
	n := minLength(views)
	for i := 0; i < n; i++ {
		res, err := ev.Apply(pred, gather(views, i), env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if datum.Truthy(res) {
			return res, nil
		}
	}
	return datum.False, nil
}

// Every short-circuits on the first falsey result of pred applied across
// seqs in parallel index order, returning #f; if every element passes it
// returns the last truthy result (or #t for empty input).
func Every(ev evalapi.Evaluator, env *datum.Env, pred datum.Value, seqs ...datum.Value) (datum.Value, error) {
	views, err := openViews(seqs)
	if err != nil {
		return datum.Value{}, err
	}
	n := minLength(views)
	last := datum.True
	for i := 0; i < n; i++ {
		res, err := ev.Apply(pred, gather(views, i), env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if !datum.Truthy(res) {
			return datum.False, nil
		}
		last = res
	}
	return last, nil
}
