package diag

import "github.com/heistscheme/heistcore/datum"

// JumpSlot is the process-wide jump!/catch-jump value slot (spec.md §5).
// jump! stores a single value here and raises a KindJump Error; catch-jump
// is the evaluator's job (it owns the catching/unwinding), but the slot and
// the raising half live here, per Design Notes §9's "pass them explicitly"
// redesign.
type JumpSlot struct {
	value    datum.Value
	occupied bool
}

// Take returns the stored value and clears the slot. The bool is false if
// the slot was empty (no pending jump! to catch).
func (s *JumpSlot) Take() (datum.Value, bool) {
	if s == nil || !s.occupied {
		return datum.Value{}, false
	}
	v := s.value
	s.value = datum.Value{}
	s.occupied = false
	return v, true
}

// Jump stores v in slot and returns the KindJump Error that unwinds the
// stack to the nearest catch-jump.
func Jump(slot *JumpSlot, v datum.Value) *Error {
	slot.value = v
	slot.occupied = true
	e := newError(KindJump, "jump!")
	e.Value = &v
	return e
}
