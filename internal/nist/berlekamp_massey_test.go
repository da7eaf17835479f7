package nist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBerlekampMasseyAllZero(t *testing.T) {
	bits := make([]int8, 32)
	require.Equal(t, 0, berlekampMassey(bits))
}

func TestBerlekampMasseyImpulse(t *testing.T) {
	bits := make([]int8, 32)
	bits[0] = 1
	require.Equal(t, 1, berlekampMassey(bits))
}

func TestBerlekampMasseyAllOnesIsLowComplexity(t *testing.T) {
	bits := make([]int8, 32)
	for i := range bits {
		bits[i] = 1
	}
	// The all-ones sequence is generated by a 1-tap LFSR (constant
	// feedback), so its minimal polynomial has degree 1.
	require.Equal(t, 1, berlekampMassey(bits))
}
