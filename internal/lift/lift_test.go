package lift

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetIRTypeKnownDescriptors(t *testing.T) {
	l := Lifter{}

	got, err := l.GetIRType("U32")
	require.NoError(t, err)
	require.Equal(t, Type{Name: "U32", Width: 32}, got)

	got, err = l.GetIRType("PRED")
	require.NoError(t, err)
	require.Equal(t, Type{Name: "PRED"}, got)
}

func TestGetIRTypeUnknownDescriptor(t *testing.T) {
	l := Lifter{}

	_, err := l.GetIRType("BOGUS")
	require.Error(t, err)
}
