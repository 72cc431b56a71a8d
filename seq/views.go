package seq

import (
	"fmt"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/internal/seqview"
)

// openViews builds a [seqview.View] for each of seqs, requiring they all
// present the same [seqview.Shape] (spec.md §4.5: "all sequence arguments
// must be the same shape... mixing shapes... is an error").
func openViews(seqs []datum.Value) ([]seqview.View, error) {
	views := make([]seqview.View, len(seqs))
	var shape seqview.Shape
	for i, s := range seqs {
		v, ok := seqview.Of(s)
		if !ok {
			return nil, fmt.Errorf("seq: argument %d (tag %s) is not a list, vector, or string", i, s.Tag())
		}
		if i == 0 {
			shape = v.Shape()
		} else if v.Shape() != shape {
			return nil, fmt.Errorf("seq: argument %d has a different shape than argument 0", i)
		}
		views[i] = v
	}
	return views, nil
}

// requireEqualLength enforces spec.md §4.5's "same length" requirement for
// combinators that are not folds or map-to-scalar.
func requireEqualLength(views []seqview.View) (int, error) {
	if len(views) == 0 {
		return 0, nil
	}
	n := views[0].Len()
	for i, v := range views[1:] {
		if v.Len() != n {
			return 0, fmt.Errorf("seq: argument %d has length %d, expected %d", i+1, v.Len(), n)
		}
	}
	return n, nil
}

// minLength returns the shortest view's length, used by any/every and by
// the folds, which stop at the shortest sequence rather than erroring on a
// length mismatch.
func minLength(views []seqview.View) int {
	if len(views) == 0 {
		return 0
	}
	n := views[0].Len()
	for _, v := range views[1:] {
		if v.Len() < n {
			n = v.Len()
		}
	}
	return n
}

func unrecognizedSeq(v datum.Value) error {
	return fmt.Errorf("seq: argument (tag %s) is not a list, vector, or string", v.Tag())
}

func gather(views []seqview.View, i int) []datum.Value {
	args := make([]datum.Value, len(views))
	for j, v := range views {
		args[j] = v.Get(i)
	}
	return args
}
