package datum

// Delay is a suspended computation: a captured expression and environment,
// plus a single-writer memoization slot. Forced is set at most once, by
// whichever package is responsible for forcing (package stream); once true,
// Result is immutable and replaces Expr for all subsequent observers.
//
// A stream pair (spec.md §3.1/§4.6) is simply a [Pair] whose Car and Cdr are
// both Delay values; this type carries no stream-specific state of its own.
type Delay struct {
	Expr    Value
	Env     *Env
	Forced  bool
	Result  Value
}

// NewDelay wraps an unforced [Delay] in a [Value].
func NewDelay(expr Value, env *Env) Value {
	return Value{tag: TagDelay, payload: &Delay{Expr: expr, Env: env}}
}

// NewForcedDelay wraps a [Delay] that is already settled to result, so that
// forcing it is a no-op. Used to build stream pairs out of values already
// in hand (e.g. package stream's Take, which must materialize a finite
// prefix of a possibly-infinite stream).
func NewForcedDelay(result Value) Value {
	return Value{tag: TagDelay, payload: &Delay{Forced: true, Result: result}}
}

// Delay reports v's *[Delay] payload and whether v was one.
func (v Value) Delay() (*Delay, bool) {
	if v.tag != TagDelay {
		return nil, false
	}
	return v.payload.(*Delay), true
}

// IsStreamPair reports whether v is a pair whose car and cdr are both
// delays (spec.md §3.1's definition of a stream pair).
func IsStreamPair(v Value) bool {
	p, ok := v.Pair()
	if !ok {
		return false
	}
	_, carIsDelay := p.Car.Delay()
	_, cdrIsDelay := p.Cdr.Delay()
	return carIsDelay && cdrIsDelay
}
