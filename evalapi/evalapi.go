// Package evalapi defines the two callback boundaries the core crosses
// into the evaluator, per spec.md §6 ("Evaluator contract consumed by the
// core") and Design Notes §9 ("Dynamic dispatch to user methods... wire
// this through a trait or function-pointer table passed to structural
// operations rather than a direct link, to avoid circular module
// dependencies"). Packages seq, stream, and structural depend only on
// these interfaces, never on a concrete evaluator, so the evaluator itself
// can depend on seq/stream/structural without an import cycle.
package evalapi

import "github.com/heistscheme/heistcore/datum"

// Evaluator is the single entry point the core calls back into to apply a
// procedure to arguments: sequence combinators invoke a proc argument
// through this, streams force delays through it, and structural operations
// use it (via [MethodDispatcher]) to reach user-defined methods.
//
// tail reports whether the call occurs in tail position; the core assumes
// proper tail calls are honoured where requested but never relies on it
// for correctness (spec.md §6).
type Evaluator interface {
	Apply(proc datum.Value, args []datum.Value, env *datum.Env, tail bool) (datum.Value, error)
}

// MethodDispatcher reaches a user-defined object method (`this->string`,
// `this=`) without giving package structural a direct dependency on the
// evaluator. Stringify backs display/write of an object that defines
// `this->string`; Equal backs equal? of two objects that define `this=`.
// Both report ok=false when the object has no such method, so the caller
// falls back to the built-in structural behaviour.
type MethodDispatcher interface {
	Stringify(obj datum.Value) (s string, ok bool, err error)
	Equal(a, b datum.Value) (equal bool, ok bool, err error)
}
