package nist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomExcursionVariantCoversEighteenStates(t *testing.T) {
	require.Len(t, randomExcursionVariantStates, 18)
	for _, x := range randomExcursionVariantStates {
		require.NotZero(t, x)
		require.GreaterOrEqual(t, x, -9)
		require.LessOrEqual(t, x, 9)
	}
}

func TestRandomExcursionVariantAlwaysEligible(t *testing.T) {
	require.True(t, RandomExcursionVariant{}.IsEligible(alternating(10)))
}

func TestRandomExcursionVariantScoresAreErfcValues(t *testing.T) {
	r := RandomExcursionVariant{}.Execute(randomBits(10000, 12))
	require.Len(t, r.Scores, 18)
	for _, s := range r.Scores {
		require.GreaterOrEqual(t, s, 0.0)
		require.LessOrEqual(t, s, 1.0)
	}
}
