package diag_test

import (
	"bytes"
	"testing"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/diag"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "eval", diag.KindEval.String())
	assert.Equal(t, "read", diag.KindRead.String())
	assert.Equal(t, "exit", diag.KindExit.String())
	assert.Equal(t, "jump", diag.KindJump.String())
}

func TestJumpSlotRoundTrip(t *testing.T) {
	var slot diag.JumpSlot
	v := datum.NewNumber(datum.NewExactInt(42))

	err := diag.Jump(&slot, v)
	assert.Equal(t, diag.KindJump, err.Kind)

	got, ok := slot.Take()
	require.True(t, ok)
	n, _ := got.Number()
	f, _ := n.Float()
	assert.Equal(t, float64(42), f)

	_, ok = slot.Take()
	assert.False(t, ok, "Take must clear the slot")
}

func TestFormatANSIGating(t *testing.T) {
	expr := datum.NewSymbol("car")
	val := datum.NewBoolean(false)
	e := diag.NewEvalError("wrong type argument", &expr, &val)

	plain := diag.Format(e, diag.Config{ANSIEnabled: false})
	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, plain, "wrong type argument")
	assert.Contains(t, plain, "car")
	assert.Contains(t, plain, "#f")
	assert.Contains(t, plain, "boolean")

	coloured := diag.Format(e, diag.Config{ANSIEnabled: true})
	assert.Contains(t, coloured, "\x1b[")
}

func TestFormatHandlesNilError(t *testing.T) {
	assert.Equal(t, "", diag.Format(nil, diag.DefaultConfig()))
}

func TestLogErrorWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	log := logiface.New[*diag.Event](stumpy.WithStumpy(stumpy.WithWriter(&buf)))

	e := diag.NewReadError("unexpected end of input")
	diag.LogError(log, e)

	assert.Contains(t, buf.String(), "unexpected end of input")
	assert.Contains(t, buf.String(), `"kind":"read"`)
}

func TestLogErrorNilLoggerIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		diag.LogError(nil, diag.NewReadError("boom"))
	})
}
