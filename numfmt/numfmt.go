// Package numfmt formats [datum.Number] values for display/write: exact
// integers and rationals print in Scheme's native notation ("3", "3/4");
// inexact numbers print as decimal floats via
// github.com/joeycumines/floater's [floater.FormatDecimalRat], which formats
// a [math/big.Rat] to exactly as many decimal digits as the value's float
// precision warrants, without the trailing-digit noise plain
// [math/big.Float] formatting can produce.
package numfmt

import (
	"math"
	"math/big"

	"github.com/joeycumines/floater"

	"github.com/heistscheme/heistcore/datum"
)

// floatPrec is float64's mantissa width; used as the accuracy bound when
// rendering an inexact number's underlying *big.Rat.
const floatPrec = 53

// Format renders n the way display/write print a number.
func Format(n datum.Number) string {
	if rat, ok := n.Rat(); ok {
		if rat.IsInt() {
			return rat.Num().String()
		}
		return rat.RatString()
	}
	f, _ := n.Float()
	switch {
	case math.IsNaN(f):
		return "+nan.0"
	case math.IsInf(f, 1):
		return "+inf.0"
	case math.IsInf(f, -1):
		return "-inf.0"
	}
	rat := new(big.Rat).SetFloat64(f)
	return floater.FormatDecimalRat(rat, -1, floatPrec)
}
