package stream

import (
	"fmt"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
)

func errNotStreamPair(v datum.Value) error {
	return fmt.Errorf("stream: expected a stream pair, got tag %s", v.Tag())
}

// step advances a set of streams in lock-step by one element. atEnd is true
// once every stream in cur has reached the empty list simultaneously. If
// some streams are empty while others are not, step reports the lazy
// length mismatch spec.md §4.6 specifies: "a length mismatch is only
// detected when one runs out before the others."
func step(ev evalapi.Evaluator, cur []datum.Value) (atEnd bool, heads, next []datum.Value, err error) {
	emptyCount := 0
	for _, s := range cur {
		if datum.IsEmptyList(s) {
			emptyCount++
		}
	}
	if emptyCount == len(cur) {
		return true, nil, nil, nil
	}
	if emptyCount > 0 {
		return false, nil, nil, fmt.Errorf("stream: length mismatch across stream arguments")
	}
	heads = make([]datum.Value, len(cur))
	next = make([]datum.Value, len(cur))
	for i, s := range cur {
		h, err := SCar(ev, s)
		if err != nil {
			return false, nil, nil, err
		}
		n, err := SCdr(ev, s)
		if err != nil {
			return false, nil, nil, err
		}
		heads[i] = h
		next[i] = n
	}
	return false, heads, next, nil
}

// Length counts s's elements, forcing only its cdr chain (not its cars).
func Length(ev evalapi.Evaluator, s datum.Value) (int, error) {
	n := 0
	cur := s
	for !datum.IsEmptyList(cur) {
		next, err := SCdr(ev, cur)
		if err != nil {
			return 0, err
		}
		n++
		cur = next
	}
	return n, nil
}

// ForEach applies proc to the heads of streams in lock-step, discarding
// results, until every stream is simultaneously exhausted.
func ForEach(ev evalapi.Evaluator, env *datum.Env, proc datum.Value, streams ...datum.Value) error {
	cur := streams
	for {
		atEnd, heads, next, err := step(ev, cur)
		if err != nil {
			return err
		}
		if atEnd {
			return nil
		}
		if _, err := ev.Apply(proc, heads, env, false); err != nil {
			return err
		}
		cur = next
	}
}

// Fold traverses streams left to right, passing the accumulator first.
func Fold(ev evalapi.Evaluator, env *datum.Env, proc, init datum.Value, streams ...datum.Value) (datum.Value, error) {
	acc := init
	cur := streams
	for {
		atEnd, heads, next, err := step(ev, cur)
		if err != nil {
			return datum.Value{}, err
		}
		if atEnd {
			return acc, nil
		}
		args := append([]datum.Value{acc}, heads...)
		acc, err = ev.Apply(proc, args, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		cur = next
	}
}

// FoldRight traverses streams right to left, passing the accumulator last.
// Since the rightmost element isn't known until the stream ends, FoldRight
// forces every element of streams before folding; it is only sound for
// finite streams.
func FoldRight(ev evalapi.Evaluator, env *datum.Env, proc, init datum.Value, streams ...datum.Value) (datum.Value, error) {
	var collected [][]datum.Value
	cur := streams
	for {
		atEnd, heads, next, err := step(ev, cur)
		if err != nil {
			return datum.Value{}, err
		}
		if atEnd {
			break
		}
		collected = append(collected, heads)
		cur = next
	}
	acc := init
	for i := len(collected) - 1; i >= 0; i-- {
		args := append(append([]datum.Value{}, collected[i]...), acc)
		var err error
		acc, err = ev.Apply(proc, args, env, false)
		if err != nil {
			return datum.Value{}, err
		}
	}
	return acc, nil
}
