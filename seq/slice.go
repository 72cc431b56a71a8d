package seq

import (
	"fmt"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
	"github.com/heistscheme/heistcore/internal/seqview"
)

func checkBound(n, length int) error {
	if n < 0 || n > length {
		return fmt.Errorf("seq: n=%d out of range [0, %d]", n, length)
	}
	return nil
}

func sub(v seqview.View, lo, hi int) datum.Value {
	out := v.New()
	for i := lo; i < hi; i++ {
		_ = out.Push(v.Get(i)) // same shape as v: Push cannot reject an element v itself already holds
	}
	return out.Value()
}

// Take returns the first n elements of sq.
func Take(sq datum.Value, n int) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	if err := checkBound(n, v.Len()); err != nil {
		return datum.Value{}, err
	}
	return sub(v, 0, n), nil
}

// Drop returns sq with its first n elements removed.
func Drop(sq datum.Value, n int) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	if err := checkBound(n, v.Len()); err != nil {
		return datum.Value{}, err
	}
	return sub(v, n, v.Len()), nil
}

// TakeRight returns the last n elements of sq.
func TakeRight(sq datum.Value, n int) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	if err := checkBound(n, v.Len()); err != nil {
		return datum.Value{}, err
	}
	return sub(v, v.Len()-n, v.Len()), nil
}

// DropRight returns sq with its last n elements removed.
func DropRight(sq datum.Value, n int) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	if err := checkBound(n, v.Len()); err != nil {
		return datum.Value{}, err
	}
	return sub(v, 0, v.Len()-n), nil
}

// TakeWhile returns the longest prefix of sq whose elements all satisfy
// pred.
func TakeWhile(ev evalapi.Evaluator, env *datum.Env, pred, sq datum.Value) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	i := 0
	for ; i < v.Len(); i++ {
		res, err := ev.Apply(pred, []datum.Value{v.Get(i)}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if !datum.Truthy(res) {
			break
		}
	}
	return sub(v, 0, i), nil
}

// DropWhile removes the longest prefix of sq whose elements all satisfy
// pred, returning what remains.
func DropWhile(ev evalapi.Evaluator, env *datum.Env, pred, sq datum.Value) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	i := 0
	for ; i < v.Len(); i++ {
		res, err := ev.Apply(pred, []datum.Value{v.Get(i)}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if !datum.Truthy(res) {
			break
		}
	}
	return sub(v, i, v.Len()), nil
}

// TakeRightWhile returns the longest suffix of sq whose elements all
// satisfy pred.
func TakeRightWhile(ev evalapi.Evaluator, env *datum.Env, pred, sq datum.Value) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	i := v.Len()
	for i > 0 {
		res, err := ev.Apply(pred, []datum.Value{v.Get(i - 1)}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if !datum.Truthy(res) {
			break
		}
		i--
	}
	return sub(v, i, v.Len()), nil
}

// DropRightWhile removes the longest suffix of sq whose elements all
// satisfy pred, returning what remains.
func DropRightWhile(ev evalapi.Evaluator, env *datum.Env, pred, sq datum.Value) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	i := v.Len()
	for i > 0 {
		res, err := ev.Apply(pred, []datum.Value{v.Get(i - 1)}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if !datum.Truthy(res) {
			break
		}
		i--
	}
	return sub(v, 0, i), nil
}
