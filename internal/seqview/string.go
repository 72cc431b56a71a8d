package seqview

import (
	"fmt"

	"github.com/heistscheme/heistcore/datum"
)

type stringView struct {
	str *datum.Str
}

func (v *stringView) Shape() Shape { return ShapeString }
func (v *stringView) Len() int     { return len(v.str.Runes) }
func (v *stringView) Get(i int) datum.Value {
	return datum.NewChar(v.str.Runes[i])
}
func (v *stringView) Set(i int, val datum.Value) {
	r, ok := val.Char()
	if !ok {
		panic(fmt.Sprintf("seqview: string view element must be a character, got tag %s", val.Tag()))
	}
	v.str.Runes[i] = r
}
func (v *stringView) New() View {
	return &stringView{str: &datum.Str{Runes: nil}}
}
func (v *stringView) Push(val datum.Value) error {
	r, ok := val.Char()
	if !ok {
		return fmt.Errorf("seqview: cannot build a string from a non-character value (tag %s)", val.Tag())
	}
	v.str.Runes = append(v.str.Runes, r)
	return nil
}
func (v *stringView) Value() datum.Value {
	return datum.NewStringFromRunes(append([]rune(nil), v.str.Runes...))
}
