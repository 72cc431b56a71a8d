package datum

import "math/big"

// Number is a Scheme number. It carries an exactness flag per spec: exact
// numbers are represented as arbitrary-precision rationals, inexact numbers
// as float64. The numeric tower's arithmetic (promotion, contagion, complex
// and bignum-integer semantics beyond what [big.Rat] already gives) is an
// external collaborator's concern; this type only carries enough to
// satisfy structural equality, deep copy (atomic: a no-op), and display.
type Number struct {
	exact bool
	rat   *big.Rat // non-nil iff exact
	flo   float64  // meaningful iff !exact
}

// NewExactInt builds an exact integer [Number].
func NewExactInt(i int64) Number {
	return Number{exact: true, rat: big.NewRat(i, 1)}
}

// NewExactRat builds an exact rational [Number] from a numerator and
// denominator.
func NewExactRat(num, den int64) Number {
	return Number{exact: true, rat: big.NewRat(num, den)}
}

// NewExactFromRat builds an exact [Number] from an existing [big.Rat]. The
// rat is not copied; callers must not mutate it afterwards.
func NewExactFromRat(r *big.Rat) Number {
	return Number{exact: true, rat: r}
}

// NewInexact builds an inexact (floating) [Number].
func NewInexact(f float64) Number {
	return Number{exact: false, flo: f}
}

// IsExact reports whether n carries the exact flag.
func (n Number) IsExact() bool { return n.exact }

// Rat returns the underlying rational and true, iff n is exact.
func (n Number) Rat() (*big.Rat, bool) {
	if !n.exact {
		return nil, false
	}
	return n.rat, true
}

// Float returns n as a float64 regardless of exactness (exact values are
// converted), and reports whether n was inexact to begin with.
func (n Number) Float() (float64, bool) {
	if n.exact {
		f, _ := new(big.Float).SetRat(n.rat).Float64()
		return f, false
	}
	return n.flo, true
}

// Equal reports whether two numbers are numerically equal AND share the
// same exactness, per spec.md §4.3 ("numbers additionally compare
// exactness flags").
func (n Number) Equal(o Number) bool {
	if n.exact != o.exact {
		return false
	}
	if n.exact {
		return n.rat.Cmp(o.rat) == 0
	}
	return n.flo == o.flo
}

// Add returns n+o. If either operand is inexact the result is inexact
// (contagion); this is the one arithmetic primitive the value layer commits
// to, needed by iota to step its arithmetic sequence without depending on
// an external numeric tower for anything beyond addition.
func (n Number) Add(o Number) Number {
	if n.exact && o.exact {
		return Number{exact: true, rat: new(big.Rat).Add(n.rat, o.rat)}
	}
	nf, _ := n.Float()
	of, _ := o.Float()
	return Number{exact: false, flo: nf + of}
}

// NewNumber wraps a [Number] in a [Value].
func NewNumber(n Number) Value {
	return Value{tag: TagNumber, payload: n}
}

// Number reports v's [Number] payload and whether v was a number.
func (v Value) Number() (Number, bool) {
	if v.tag != TagNumber {
		return Number{}, false
	}
	return v.payload.(Number), true
}
