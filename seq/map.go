package seq

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
)

// Map produces a new sequence of the same shape as seqs, where element i is
// proc applied to the i-th element of each of seqs (spec.md §4.5). A
// string result requires proc to produce a character at every index.
func Map(ev evalapi.Evaluator, env *datum.Env, proc datum.Value, seqs ...datum.Value) (datum.Value, error) {
	views, err := openViews(seqs)
	if err != nil {
		return datum.Value{}, err
	}
	n, err := requireEqualLength(views)
	if err != nil {
		return datum.Value{}, err
	}
	out := views[0].New()
	for i := 0; i < n; i++ {
		res, err := ev.Apply(proc, gather(views, i), env, false)
		if err != nil {
			return datum.Value{}, err
		}
		if err := out.Push(res); err != nil {
			return datum.Value{}, err
		}
	}
	return out.Value(), nil
}

// ForEach is Map but discards every result; it returns only an error (nil
// on success), leaving the caller to produce [datum.Void].
func ForEach(ev evalapi.Evaluator, env *datum.Env, proc datum.Value, seqs ...datum.Value) error {
	views, err := openViews(seqs)
	if err != nil {
		return err
	}
	n, err := requireEqualLength(views)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := ev.Apply(proc, gather(views, i), env, false); err != nil {
			return err
		}
	}
	return nil
}
