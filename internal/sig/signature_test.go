package sig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValueSignature(t *testing.T) {
	s, err := New("IntInt", "int", "Int", []string{"int", "p1"})
	require.NoError(t, err)

	assert.False(t, s.IsVoid())
	assert.Equal(t, 1, s.Arity())
	assert.Equal(t, "IntIntClosure", s.ClosureType())
	assert.Equal(t, "IntInt_closure_call", s.CallFunc())
	assert.Equal(t, "IntInt_closure_call_with_no_return", s.CallNoReturnFunc())
	assert.Equal(t, "IntInt_closure_release", s.ReleaseFunc())
	assert.Equal(t, "IntInt_closure_new", s.NewFunc())
	assert.Equal(t, "Int_release_rust_return_value", s.ReleaseReturnFunc("_release_rust_return_value"))
	assert.Equal(t, []string{"void *data", "int p1"}, s.Declare())
	assert.Equal(t, []string{"data", "p1"}, s.Forward())
}

func TestNewVoidSignature(t *testing.T) {
	s, err := New("VoidVoid", "", "", []string{"void"})
	require.NoError(t, err)

	assert.True(t, s.IsVoid())
	assert.Equal(t, Void, s.Returns)
	assert.Empty(t, s.CallNoReturnFunc())
	assert.Empty(t, s.ReleaseReturnFunc("_x"))
	assert.Equal(t, []string{Void}, s.Tokens())
}

func TestNewDerivesReturnName(t *testing.T) {
	s, err := New("Sum", "unsigned long", "", []string{"int", "a"})
	require.NoError(t, err)
	assert.Equal(t, "UnsignedLong", s.ReturnName)
}

func TestNewErrors(t *testing.T) {
	_, err := New("1bad", "int", "Int", nil)
	assert.ErrorContains(t, err, "not a C identifier")

	_, err = New("V", "void", "Int", nil)
	assert.ErrorContains(t, err, "void signature")

	_, err = New("X", "int", "bad name", nil)
	assert.ErrorContains(t, err, "return name")

	_, err = New("X", "int", "Int", []string{"int"})
	assert.ErrorContains(t, err, "signature X")
}

func TestDeriveReturnName(t *testing.T) {
	tests := map[string]string{
		"int":            "Int",
		"double":         "Double",
		"unsigned long":  "UnsignedLong",
		"char*":          "CharPtr",
		"void **":        "VoidPtrPtr",
		"uint32_t":       "Uint32T",
		"IntVoidClosure": "IntVoidClosure",
	}
	for in, want := range tests {
		assert.Equal(t, want, DeriveReturnName(in), in)
	}
}
