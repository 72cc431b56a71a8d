package stream

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
)

// Force returns d's memoized result, evaluating d.Expr in d.Env exactly
// once on the first call (Testable Property 8). Subsequent calls for the
// same d return the stored result without re-evaluating anything.
func Force(ev evalapi.Evaluator, d *datum.Delay) (datum.Value, error) {
	if d.Forced {
		return d.Result, nil
	}
	thunk := datum.NewCompound(&datum.Compound{Body: d.Expr, Env: d.Env})
	result, err := ev.Apply(thunk, nil, d.Env, false)
	if err != nil {
		return datum.Value{}, err
	}
	d.Result = result
	d.Forced = true
	return result, nil
}

// SCons builds a stream pair out of two not-yet-evaluated expressions,
// captured against env: forcing the resulting pair's car evaluates carExpr,
// forcing its cdr evaluates cdrExpr (spec.md §4.6).
func SCons(carExpr, cdrExpr datum.Value, env *datum.Env) datum.Value {
	return datum.Cons(datum.NewDelay(carExpr, env), datum.NewDelay(cdrExpr, env))
}

// SCar forces s's car.
func SCar(ev evalapi.Evaluator, s datum.Value) (datum.Value, error) {
	p, ok := s.Pair()
	if !ok {
		return datum.Value{}, errNotStreamPair(s)
	}
	d, ok := p.Car.Delay()
	if !ok {
		return datum.Value{}, errNotStreamPair(s)
	}
	return Force(ev, d)
}

// SCdr forces s's cdr, yielding the rest-of-stream: either [datum.EmptyList]
// or another stream pair.
func SCdr(ev evalapi.Evaluator, s datum.Value) (datum.Value, error) {
	p, ok := s.Pair()
	if !ok {
		return datum.Value{}, errNotStreamPair(s)
	}
	d, ok := p.Cdr.Delay()
	if !ok {
		return datum.Value{}, errNotStreamPair(s)
	}
	return Force(ev, d)
}
