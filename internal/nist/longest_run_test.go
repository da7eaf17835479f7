package nist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLongestRunParamsSelection(t *testing.T) {
	m, k, nb, _, _ := longestRunParams(1000)
	require.Equal(t, 8, m)
	require.Equal(t, 3, k)
	require.Equal(t, 16, nb)

	m, k, nb, _, _ = longestRunParams(700000)
	require.Equal(t, 128, m)
	require.Equal(t, 5, k)
	require.Equal(t, 49, nb)

	m, k, nb, _, _ = longestRunParams(1000000)
	require.Equal(t, 10000, m)
	require.Equal(t, 6, k)
	require.Equal(t, 75, nb)
}

func TestBucketBoundaries(t *testing.T) {
	bounds := []int{1, 2, 3}
	require.Equal(t, 0, bucket(0, bounds))
	require.Equal(t, 0, bucket(1, bounds))
	require.Equal(t, 3, bucket(100, bounds))
}

func TestLongestRunOnesInBlockEligibility(t *testing.T) {
	require.False(t, LongestRunOnesInBlock{}.IsEligible(allOnes(50)))
	require.True(t, LongestRunOnesInBlock{}.IsEligible(allOnes(128)))
}

func TestLongestRunOnesInBlockAllOnesFails(t *testing.T) {
	r := LongestRunOnesInBlock{}.Execute(allOnes(6272))
	require.False(t, r.Passed)
}
