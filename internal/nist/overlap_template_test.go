package nist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOverlappingTemplateMatchingEligibility(t *testing.T) {
	require.False(t, OverlappingTemplateMatching{}.IsEligible(allOnes(1000)))
	require.True(t, OverlappingTemplateMatching{}.IsEligible(randomBits(1028016, 3)))
}

func TestOverlappingTemplateMatchingAllOnesMaximizesMatches(t *testing.T) {
	bits := allOnes(overlapBlockLen * overlapBlocks)
	r := OverlappingTemplateMatching{}.Execute(bits)
	// every block is all ones, so every window matches: far from the
	// expected distribution, the test must fail.
	require.False(t, r.Passed)
}

func TestOverlapProbabilitiesSumToOne(t *testing.T) {
	pi := overlapProbabilities(2.315)
	sum := 0.0
	for _, p := range pi {
		sum += p
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}
