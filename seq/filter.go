package seq

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
	"github.com/heistscheme/heistcore/internal/seqview"
)

func selectBy(ev evalapi.Evaluator, env *datum.Env, pred, sq datum.Value, keep bool) (datum.Value, error) {
	v, ok := seqview.Of(sq)
	if !ok {
		return datum.Value{}, unrecognizedSeq(sq)
	}
	out := v.New()
	for i := 0; i < v.Len(); i++ {
		el := v.Get(i)
		res, err := ev.Apply(pred, []datum.Value{el}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if datum.Truthy(res) == keep {
			if err := out.Push(el); err != nil {
				return datum.Value{}, err
			}
		}
	}
	return out.Value(), nil
}

// Filter retains the elements of sq for which pred returns a truthy value.
func Filter(ev evalapi.Evaluator, env *datum.Env, pred, sq datum.Value) (datum.Value, error) {
	return selectBy(ev, env, pred, sq, true)
}

// Remove retains the elements of sq for which pred returns a falsey value.
func Remove(ev evalapi.Evaluator, env *datum.Env, pred, sq datum.Value) (datum.Value, error) {
	return selectBy(ev, env, pred, sq, false)
}
