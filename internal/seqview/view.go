package seqview

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/listops"
)

// Shape identifies which of the three sequence shapes a [View] presents.
type Shape int

const (
	ShapeList Shape = iota
	ShapeVector
	ShapeString
)

// View is a capability over one sequence shape: index-addressable read,
// write, construction of a fresh sequence of the same shape, and
// appending. Combinators in package seq are written once against this
// interface; shape-specific semantics (e.g. that a string's elements must
// all be characters) are enforced by the concrete implementation.
type View interface {
	// Shape reports which sequence shape this view presents.
	Shape() Shape
	// Len returns the number of elements.
	Len() int
	// Get returns the element at index i.
	Get(i int) datum.Value
	// Set overwrites the element at index i.
	Set(i int, v datum.Value)
	// New returns a fresh, empty, growable view of this same shape.
	New() View
	// Push appends v, growing the underlying sequence by one. For a
	// ShapeString view, v must be a character; Push returns an error
	// otherwise (spec.md §4.5: "String result requires every produced
	// datum to be a character; otherwise error").
	Push(v datum.Value) error
	// Value materializes the view's current contents back into a
	// [datum.Value] of the appropriate shape (a proper list, a vector, or
	// a string).
	Value() datum.Value
}

// Of inspects v's tag and returns the appropriate [View] wrapping it, or
// (nil, false) if v is not a vector, a string, a pair, or the empty list.
// Any pair chain yields a list view, whether proper, improper, or cyclic:
// an improper chain's non-list tail is not an element, and a cyclic chain
// contributes each distinct pair's car once. Of does not reject improper
// or cyclic chains; [ListStatus] reports how the chain was classified.
func Of(v datum.Value) (View, bool) {
	switch v.Tag() {
	case datum.TagVector:
		vec, _ := v.Vector()
		return &vectorView{vec: vec}, true
	case datum.TagString:
		s, _ := v.Str()
		return &stringView{str: s}, true
	case datum.TagSymbol:
		if datum.IsEmptyList(v) {
			return newListView(v), true
		}
		return nil, false
	case datum.TagPair:
		return newListView(v), true
	default:
		return nil, false
	}
}

// ListStatus reports the [listops.Status] a [View] built over a list chain
// was classified as when it was constructed. It returns (0, false) for
// views over a vector or a string, which have no such notion.
func ListStatus(v View) (listops.Status, bool) {
	lv, ok := v.(*listView)
	if !ok {
		return 0, false
	}
	return lv.status, true
}
