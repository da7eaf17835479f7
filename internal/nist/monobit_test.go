package nist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func allOnes(n int) BitSequence {
	bits := make([]int8, n)
	for i := range bits {
		bits[i] = 1
	}
	s, _ := NewBitSequence(bits)
	return s
}

func alternating(n int) BitSequence {
	bits := make([]int8, n)
	for i := range bits {
		bits[i] = int8(i % 2)
	}
	s, _ := NewBitSequence(bits)
	return s
}

func TestMonobitAllOnesFails(t *testing.T) {
	r := Monobit{}.Execute(allOnes(100))
	require.False(t, r.Passed)
	require.InDelta(t, 1.524e-23, r.Score(), 1e-25)
}

func TestMonobitAlternatingPasses(t *testing.T) {
	r := Monobit{}.Execute(alternating(100))
	require.True(t, r.Passed)
	require.InDelta(t, 1.0, r.Score(), 1e-12)
}

func TestMonobitAlwaysEligible(t *testing.T) {
	require.True(t, Monobit{}.IsEligible(allOnes(1)))
}
