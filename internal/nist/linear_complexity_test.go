package nist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearComplexityEligibility(t *testing.T) {
	require.False(t, LinearComplexity{}.IsEligible(allOnes(1000)))
	require.True(t, LinearComplexity{}.IsEligible(randomBits(1000000, 6)))
}

func TestLinearComplexityBinBoundaries(t *testing.T) {
	require.Equal(t, 0, linearComplexityBin(-3))
	require.Equal(t, 3, linearComplexityBin(0))
	require.Equal(t, 6, linearComplexityBin(3))
}

func TestLinearComplexityScoreInRange(t *testing.T) {
	r := LinearComplexity{}.Execute(randomBits(1000000, 7))
	require.GreaterOrEqual(t, r.Score(), 0.0)
	require.LessOrEqual(t, r.Score(), 1.0)
}
