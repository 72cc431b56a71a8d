package stream

import (
	"fmt"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
)

// Take returns a new, finite stream of s's first n elements, forcing
// exactly that many cars and cdrs of s.
func Take(ev evalapi.Evaluator, s datum.Value, n int) (datum.Value, error) {
	if n < 0 {
		return datum.Value{}, fmt.Errorf("stream: n=%d must be >= 0", n)
	}
	if n == 0 {
		return datum.EmptyList, nil
	}
	if datum.IsEmptyList(s) {
		return datum.Value{}, fmt.Errorf("stream: cannot take %d elements past the end of the stream", n)
	}
	head, err := SCar(ev, s)
	if err != nil {
		return datum.Value{}, err
	}
	rest, err := SCdr(ev, s)
	if err != nil {
		return datum.Value{}, err
	}
	tail, err := Take(ev, rest, n-1)
	if err != nil {
		return datum.Value{}, err
	}
	return datum.Cons(datum.NewForcedDelay(head), datum.NewForcedDelay(tail)), nil
}

// Drop returns the tail of s with its first n elements removed, forcing
// exactly n cdrs.
func Drop(ev evalapi.Evaluator, s datum.Value, n int) (datum.Value, error) {
	if n < 0 {
		return datum.Value{}, fmt.Errorf("stream: n=%d must be >= 0", n)
	}
	cur := s
	for i := 0; i < n; i++ {
		if datum.IsEmptyList(cur) {
			return datum.Value{}, fmt.Errorf("stream: cannot drop %d elements past the end of the stream", n)
		}
		next, err := SCdr(ev, cur)
		if err != nil {
			return datum.Value{}, err
		}
		cur = next
	}
	return cur, nil
}

// TakeWhile returns a new, finite stream of the longest prefix of s whose
// elements all satisfy pred.
func TakeWhile(ev evalapi.Evaluator, env *datum.Env, pred, s datum.Value) (datum.Value, error) {
	if datum.IsEmptyList(s) {
		return datum.EmptyList, nil
	}
	head, err := SCar(ev, s)
	if err != nil {
		return datum.Value{}, err
	}
	ok, err := ev.Apply(pred, []datum.Value{head}, env, false)
	if err != nil {
		return datum.Value{}, err
	}
	if !datum.Truthy(ok) {
		return datum.EmptyList, nil
	}
	rest, err := SCdr(ev, s)
	if err != nil {
		return datum.Value{}, err
	}
	tail, err := TakeWhile(ev, env, pred, rest)
	if err != nil {
		return datum.Value{}, err
	}
	return datum.Cons(datum.NewForcedDelay(head), datum.NewForcedDelay(tail)), nil
}

// DropWhile returns the tail of s starting at the first element that does
// not satisfy pred.
func DropWhile(ev evalapi.Evaluator, env *datum.Env, pred, s datum.Value) (datum.Value, error) {
	cur := s
	for !datum.IsEmptyList(cur) {
		head, err := SCar(ev, cur)
		if err != nil {
			return datum.Value{}, err
		}
		ok, err := ev.Apply(pred, []datum.Value{head}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if !datum.Truthy(ok) {
			break
		}
		next, err := SCdr(ev, cur)
		if err != nil {
			return datum.Value{}, err
		}
		cur = next
	}
	return cur, nil
}

// Ref returns the element of s at index idx, forcing idx cdrs and one car.
func Ref(ev evalapi.Evaluator, s datum.Value, idx int) (datum.Value, error) {
	tail, err := Drop(ev, s, idx)
	if err != nil {
		return datum.Value{}, err
	}
	return SCar(ev, tail)
}
