package nist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBits(n int, seed int64) BitSequence {
	rng := rand.New(rand.NewSource(seed))
	bits := make([]int8, n)
	for i := range bits {
		bits[i] = int8(rng.Intn(2))
	}
	s, _ := NewBitSequence(bits)
	return s
}

func TestNonOverlappingTemplateMatchingDefaultSweepsLength8(t *testing.T) {
	test := NewNonOverlappingTemplateMatching()
	r := test.Execute(randomBits(8000, 1))
	require.Equal(t, len(templatesForLength(8)), len(r.Scores))
	for _, s := range r.Scores {
		require.GreaterOrEqual(t, s, 0.0)
		require.LessOrEqual(t, s, 1.0)
	}
}

func TestNonOverlappingTemplateMatchingSingleTemplate(t *testing.T) {
	test := WithTemplate([]int8{0, 1})
	r := test.Execute(randomBits(8000, 2))
	require.Len(t, r.Scores, 1)
}

func TestNonOverlappingTemplateMatchingAlwaysEligible(t *testing.T) {
	require.True(t, NewNonOverlappingTemplateMatching().IsEligible(alternating(16)))
}
