package nist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGF2MatrixRankIdentityIsFull(t *testing.T) {
	bits := make([]int8, 32*32)
	for i := 0; i < 32; i++ {
		bits[i*32+i] = 1
	}
	m := newGF2Matrix(bits, 32, 32)
	require.Equal(t, 32, m.rank())
}

func TestGF2MatrixRankZeroMatrixIsZero(t *testing.T) {
	m := newGF2Matrix(make([]int8, 32*32), 32, 32)
	require.Equal(t, 0, m.rank())
}

func TestGF2MatrixRankMatchesTranspose(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		bits := make([]int8, 32*32)
		for i := range bits {
			bits[i] = int8(rng.Intn(2))
		}
		m := newGF2Matrix(bits, 32, 32)
		r := m.rank()
		require.GreaterOrEqual(t, r, 0)
		require.LessOrEqual(t, r, 32)
		require.Equal(t, r, m.transpose().rank())
	}
}
