package interp

import (
	"fmt"

	"github.com/heistscheme/heistcore/datum"
)

// PortRegistry is the process-wide, append-only vector of open file handles
// spec.md §5 describes: ports carry stable indices into it, and closing a
// port sets its is-open flag rather than removing the entry, so indices
// already handed out as datum.Port values never dangle. No locking: per
// spec.md §5 execution is single-threaded.
type PortRegistry struct {
	entries []portEntry
}

type portEntry struct {
	open   bool
	output bool
}

// NewPortRegistry preallocates capacity entries (SPEC_FULL §2's
// PortRegistryCapacity config field).
func NewPortRegistry(capacity int) *PortRegistry {
	return &PortRegistry{entries: make([]portEntry, 0, capacity)}
}

// Open appends a new open entry and returns the datum.Port naming it.
func (r *PortRegistry) Open(output bool) datum.Value {
	idx := len(r.entries)
	r.entries = append(r.entries, portEntry{open: true, output: output})
	return datum.NewPort(datum.Port{Index: idx, Output: output})
}

// Close sets the is-open flag of the port at idx to false. It does not
// remove the entry, keeping every other index stable.
func (r *PortRegistry) Close(idx int) error {
	if idx < 0 || idx >= len(r.entries) {
		return fmt.Errorf("interp: port index %d out of range", idx)
	}
	r.entries[idx].open = false
	return nil
}

// IsOpen reports whether the port at idx is currently open.
func (r *PortRegistry) IsOpen(idx int) (bool, error) {
	if idx < 0 || idx >= len(r.entries) {
		return false, fmt.Errorf("interp: port index %d out of range", idx)
	}
	return r.entries[idx].open, nil
}

// Len returns the number of ports ever opened (open or closed).
func (r *PortRegistry) Len() int {
	return len(r.entries)
}
