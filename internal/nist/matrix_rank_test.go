package nist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinaryMatrixRankEligibility(t *testing.T) {
	require.False(t, BinaryMatrixRank{}.IsEligible(allOnes(38*1024-1)))
	require.True(t, BinaryMatrixRank{}.IsEligible(allOnes(38*1024)))
}

func TestBinaryMatrixRankAllOnesBlocksAreRankOne(t *testing.T) {
	// Every 32x32 all-ones block has rank 1, far from the 32/31/<=30
	// distribution expected of random matrices.
	r := BinaryMatrixRank{}.Execute(allOnes(38 * 1024))
	require.False(t, r.Passed)
}

func TestBinaryMatrixRankRandomScoreInRange(t *testing.T) {
	r := BinaryMatrixRank{}.Execute(randomBits(38*1024, 11))
	require.GreaterOrEqual(t, r.Score(), 0.0)
	require.LessOrEqual(t, r.Score(), 1.0)
}
