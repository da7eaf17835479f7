package nist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunsEligibilityRequiresBalancedProportion(t *testing.T) {
	require.True(t, Runs{}.IsEligible(alternating(100)))
	require.False(t, Runs{}.IsEligible(allOnes(100)))
}

func TestRunsAlternatingIsMaximallyIrregular(t *testing.T) {
	// (10)^50 alternates on every adjacent pair: V = 100, the maximum
	// possible run count for N=100. The runs statistic correctly
	// flags this as too regular to be random, despite the balanced
	// 1/0 proportion that makes the sequence IsEligible.
	r := Runs{}.Execute(alternating(100))
	require.False(t, r.Passed)
	require.Less(t, r.Score(), 1e-10)
	require.False(t, math.IsNaN(r.Score()))
}
