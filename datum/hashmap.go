package datum

// HMEntry is a single key/value binding in a [HashMap].
type HMEntry struct {
	Key Value
	Val Value
}

// HashMap is a mutable, shared keyed datum-to-datum map. Keys may be any
// datum, so lookup requires a caller-supplied equality predicate (typically
// structural.Equal) rather than Go map key semantics; this package stores
// entries in insertion order, which also gives deterministic serialization.
type HashMap struct {
	Entries []HMEntry
}

// NewHashMap wraps entries (not copied) in a [Value].
func NewHashMap(entries []HMEntry) Value {
	return Value{tag: TagHashMap, payload: &HashMap{Entries: entries}}
}

// HashMap reports v's *[HashMap] payload and whether v was a hash-map.
func (v Value) HashMap() (*HashMap, bool) {
	if v.tag != TagHashMap {
		return nil, false
	}
	return v.payload.(*HashMap), true
}

// Get returns the value bound to key under eq, and whether it was found.
func (h *HashMap) Get(key Value, eq func(a, b Value) bool) (Value, bool) {
	for _, e := range h.Entries {
		if eq(e.Key, key) {
			return e.Val, true
		}
	}
	return Value{}, false
}

// Set binds key to val under eq, replacing any existing binding for an
// eq-equal key, or appending a new entry otherwise.
func (h *HashMap) Set(key, val Value, eq func(a, b Value) bool) {
	for i, e := range h.Entries {
		if eq(e.Key, key) {
			h.Entries[i].Val = val
			return
		}
	}
	h.Entries = append(h.Entries, HMEntry{Key: key, Val: val})
}

// Delete removes the binding for an eq-equal key, if any, and reports
// whether one was removed.
func (h *HashMap) Delete(key Value, eq func(a, b Value) bool) bool {
	for i, e := range h.Entries {
		if eq(e.Key, key) {
			h.Entries = append(h.Entries[:i], h.Entries[i+1:]...)
			return true
		}
	}
	return false
}
