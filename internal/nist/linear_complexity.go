package nist

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mathext"
)

// LinearComplexity is the linear complexity test (spec §4.10): it
// checks, via the Berlekamp-Massey kernel (C5), that the shortest
// LFSR generating each block is neither too short nor too long to be
// consistent with randomness.
type LinearComplexity struct{}

const (
	linearComplexityM = 512
	linearComplexityK = 6
)

// Name implements Test.
func (LinearComplexity) Name() string { return "linear_complexity" }

// IsEligible implements Test; requires N >= 1,000,000.
func (LinearComplexity) IsEligible(bits BitSequence) bool {
	return bits.Len() >= 1000000
}

// linearComplexityPi is the reference probability vector for the
// seven T_i bins (spec §4.10).
var linearComplexityPi = []float64{0.010417, 0.03125, 0.125, 0.5, 0.25, 0.0625, 0.020833}

// linearComplexityBin buckets t into one of the seven NIST cut-point
// bins: (-inf,-2.5], (-2.5,-1.5], (-1.5,-0.5], (-0.5,0.5], (0.5,1.5],
// (1.5,2.5], (2.5,inf).
func linearComplexityBin(t float64) int {
	cuts := []float64{-2.5, -1.5, -0.5, 0.5, 1.5, 2.5}
	for i, c := range cuts {
		if t <= c {
			return i
		}
	}
	return len(cuts)
}

// Execute implements Test.
func (LinearComplexity) Execute(bits BitSequence) Result {
	start := time.Now()
	m := float64(linearComplexityM)
	nb := bits.Len() / linearComplexityM

	mu := m/2 + (math.Pow(-1, m+1)+9)/36 - (m/3+2.0/9)/math.Pow(2, m)

	data := bits.Bits()
	counts := make([]int, linearComplexityK+1)
	for b := 0; b < nb; b++ {
		block := data[b*linearComplexityM : (b+1)*linearComplexityM]
		l := berlekampMassey(block)
		t := math.Pow(-1, m)*(float64(l)-mu) + 2.0/9
		counts[linearComplexityBin(t)]++
	}

	chiSquare := 0.0
	for i, c := range counts {
		expected := float64(nb) * linearComplexityPi[i]
		diff := float64(c) - expected
		chiSquare += diff * diff / expected
	}

	score := mathext.GammaIncRegComp(float64(linearComplexityK)/2, chiSquare/2)
	return run(LinearComplexity{}.Name(), []float64{score}, start)
}
