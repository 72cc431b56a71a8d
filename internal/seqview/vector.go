package seqview

import (
	"golang.org/x/exp/slices"

	"github.com/heistscheme/heistcore/datum"
)

type vectorView struct {
	vec *datum.Vector
}

func (v *vectorView) Shape() Shape { return ShapeVector }
func (v *vectorView) Len() int     { return len(v.vec.Items) }
func (v *vectorView) Get(i int) datum.Value {
	return v.vec.Items[i]
}
func (v *vectorView) Set(i int, val datum.Value) {
	v.vec.Items[i] = val
}
func (v *vectorView) New() View {
	return &vectorView{vec: &datum.Vector{Items: nil}}
}
func (v *vectorView) Push(val datum.Value) error {
	v.vec.Items = append(v.vec.Items, val)
	return nil
}
func (v *vectorView) Value() datum.Value {
	return datum.NewVector(slices.Clone(v.vec.Items))
}
