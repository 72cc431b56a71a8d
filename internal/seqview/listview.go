package seqview

import (
	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/listops"
)

// listView materializes a cons-cell chain into an index-addressable slice
// once, up front, rather than re-walking the chain on every Get/Set. This
// keeps a [listView] safe to use even over a cyclic or improper chain: the
// walk is bounded by [listops.Length], which itself detects cycles via
// [listops.Classify] instead of looping forever.
type listView struct {
	elements []datum.Value
	status   listops.Status
}

func newListView(head datum.Value) *listView {
	status, _ := listops.Classify(head)
	n, _ := listops.Length(head)
	elements := make([]datum.Value, 0, n)
	cur := head
	for i := 0; i < n; i++ {
		p, ok := cur.Pair()
		if !ok {
			break
		}
		elements = append(elements, p.Car)
		cur = p.Cdr
	}
	return &listView{elements: elements, status: status}
}

func (v *listView) Shape() Shape { return ShapeList }
func (v *listView) Len() int     { return len(v.elements) }
func (v *listView) Get(i int) datum.Value {
	return v.elements[i]
}
func (v *listView) Set(i int, val datum.Value) {
	v.elements[i] = val
}
func (v *listView) New() View {
	return &listView{elements: nil, status: listops.Proper}
}
func (v *listView) Push(val datum.Value) error {
	v.elements = append(v.elements, val)
	return nil
}
func (v *listView) Value() datum.Value {
	return datum.List(v.elements...)
}

// Status reports the shape of the chain this view was constructed from
// ([listops.Proper], [listops.Improper], or [listops.Cyclic]), so a caller
// can tell whether Len/Get reflect the whole input. The combinators in
// package seq do not consult it.
func (v *listView) Status() listops.Status {
	return v.status
}
