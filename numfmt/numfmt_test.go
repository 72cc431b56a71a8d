package numfmt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/numfmt"
)

func TestFormatExactInteger(t *testing.T) {
	assert.Equal(t, "3", numfmt.Format(datum.NewExactInt(3)))
	assert.Equal(t, "-7", numfmt.Format(datum.NewExactInt(-7)))
}

func TestFormatExactRational(t *testing.T) {
	assert.Equal(t, "3/4", numfmt.Format(datum.NewExactRat(3, 4)))
}

func TestFormatInexact(t *testing.T) {
	assert.Equal(t, "1.5", numfmt.Format(datum.NewInexact(1.5)))
}

func TestFormatInexactSpecialValues(t *testing.T) {
	assert.Equal(t, "+nan.0", numfmt.Format(datum.NewInexact(math.NaN())))
	assert.Equal(t, "+inf.0", numfmt.Format(datum.NewInexact(math.Inf(1))))
	assert.Equal(t, "-inf.0", numfmt.Format(datum.NewInexact(math.Inf(-1))))
}
