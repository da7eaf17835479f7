package nist

import (
	"math"
	"time"
)

// BinaryMatrixRank is the binary-matrix-rank test (spec §4.5): it
// checks the rank distribution of disjoint 32x32 GF(2) sub-matrices
// carved out of the sequence, using the rank kernel in gf2.go (C4).
type BinaryMatrixRank struct{}

const matrixRankSize = 32

// Name implements Test.
func (BinaryMatrixRank) Name() string { return "binary_matrix_rank" }

// IsEligible implements Test; requires at least 38 disjoint 32x32
// blocks (38*1024 bits).
func (BinaryMatrixRank) IsEligible(bits BitSequence) bool {
	return bits.Len()/(matrixRankSize*matrixRankSize) >= 38
}

// Execute implements Test.
func (BinaryMatrixRank) Execute(bits BitSequence) Result {
	start := time.Now()
	blockSize := matrixRankSize * matrixRankSize
	nb := bits.Len() / blockSize

	var full, minus, rest int
	data := bits.Bits()
	for i := 0; i < nb; i++ {
		block := data[i*blockSize : (i+1)*blockSize]
		m := newGF2Matrix(block, matrixRankSize, matrixRankSize)
		switch r := m.rank(); {
		case r == matrixRankSize:
			full++
		case r == matrixRankSize-1:
			minus++
		default:
			rest++
		}
	}

	// Closed-form probability that a random 32x32 GF(2) matrix has
	// rank r.
	prob := func(r int) float64 {
		q := float64(matrixRankSize)
		p := math.Pow(2, float64(r)*(2*q-float64(r))-q*q)
		for i := 0; i < r; i++ {
			fi := float64(i)
			p *= (1 - math.Pow(2, fi-q)) * (1 - math.Pow(2, fi-q)) / (1 - math.Pow(2, fi-float64(r)))
		}
		return p
	}
	pFull := prob(matrixRankSize)
	pMinus := prob(matrixRankSize - 1)
	pRest := 1 - pFull - pMinus

	n := float64(nb)
	chiSquare := math.Pow(float64(full)-pFull*n, 2)/(pFull*n) +
		math.Pow(float64(minus)-pMinus*n, 2)/(pMinus*n) +
		math.Pow(float64(rest)-pRest*n, 2)/(pRest*n)

	score := math.Exp(-chiSquare / 2)
	return run(BinaryMatrixRank{}.Name(), []float64{score}, start)
}
