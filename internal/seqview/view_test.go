package seqview_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/internal/seqview"
	"github.com/heistscheme/heistcore/listops"
)

func num(i int64) datum.Value { return datum.NewNumber(datum.NewExactInt(i)) }

func TestOfList(t *testing.T) {
	l := datum.List(num(1), num(2), num(3))
	v, ok := seqview.Of(l)
	require.True(t, ok)
	assert.Equal(t, seqview.ShapeList, v.Shape())
	assert.Equal(t, 3, v.Len())
	n, _ := v.Get(1).Number()
	f, _ := n.Float()
	assert.Equal(t, float64(2), f)

	status, ok := seqview.ListStatus(v)
	require.True(t, ok)
	assert.Equal(t, listops.Proper, status)
}

func TestOfVectorRoundTrip(t *testing.T) {
	vec := datum.NewVector([]datum.Value{num(1), num(2)})
	v, ok := seqview.Of(vec)
	require.True(t, ok)
	assert.Equal(t, seqview.ShapeVector, v.Shape())
	out := v.New()
	require.NoError(t, out.Push(num(9)))
	result, ok := out.Value().Vector()
	require.True(t, ok)
	assert.Len(t, result.Items, 1)
}

func TestOfStringRejectsNonCharOnPush(t *testing.T) {
	s := datum.NewString("ab")
	v, ok := seqview.Of(s)
	require.True(t, ok)
	assert.Equal(t, seqview.ShapeString, v.Shape())
	out := v.New()
	err := out.Push(num(1))
	assert.Error(t, err)
	require.NoError(t, out.Push(datum.NewChar('z')))
	result, ok := out.Value().Str()
	require.True(t, ok)
	assert.Equal(t, "z", result.String())
}

func TestOfRejectsOtherTags(t *testing.T) {
	_, ok := seqview.Of(num(1))
	assert.False(t, ok)
}

func TestOfEmptyList(t *testing.T) {
	v, ok := seqview.Of(datum.EmptyList)
	require.True(t, ok)
	assert.Equal(t, 0, v.Len())
}
