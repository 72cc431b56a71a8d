package seq

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
)

// Unfold produces a list by repeatedly applying mapProc to seed until
// stopPred(seed) is true, advancing seed with nextProc at each step.
func Unfold(ev evalapi.Evaluator, env *datum.Env, stopPred, mapProc, nextProc, seed datum.Value) (datum.Value, error) {
	var elements []datum.Value
	cur := seed
	for {
		stop, err := ev.Apply(stopPred, []datum.Value{cur}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if datum.Truthy(stop) {
			break
		}
		mapped, err := ev.Apply(mapProc, []datum.Value{cur}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
		elements = append(elements, mapped)
		cur, err = ev.Apply(nextProc, []datum.Value{cur}, env, false)
		if err != nil {
			return datum.Value{}, err
		}
	}
	return datum.List(elements...), nil
}

// Iota returns the arithmetic sequence of count numbers beginning at start
// with stride step, as a list.
func Iota(count int, start, step datum.Number) datum.Value {
	elements := make([]datum.Value, count)
	cur := start
	for i := 0; i < count; i++ {
		elements[i] = datum.NewNumber(cur)
		cur = cur.Add(step)
	}
	return datum.List(elements...)
}
