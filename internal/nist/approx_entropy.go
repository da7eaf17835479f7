package nist

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mathext"
)

// ApproximateEntropy is the approximate entropy test (spec §4.12): it
// compares the frequency of overlapping m-bit and (m+1)-bit patterns
// to detect departures from the irregularity expected of a random
// sequence.
//
// This implementation takes both fixes spec.md §9 recommends over the
// reference source: the block-length clamp is max(2,
// min(blockLengthMax, floor(log2 N) - 6)) rather than the reference's
// inverted min/max (which always collapses to the upper bound), and
// Phi_r sums c_i*ln(c_i) with no stray /10 divisor.
type ApproximateEntropy struct{}

const approxEntropyBlockLengthMax = 3

// Name implements Test.
func (ApproximateEntropy) Name() string { return "approximate_entropy" }

// IsEligible implements Test; always eligible.
func (ApproximateEntropy) IsEligible(bits BitSequence) bool {
	return bits.Len() > 0
}

// approxEntropyBlockLength picks m from N using the corrected clamp.
func approxEntropyBlockLength(n int) int {
	m := log2Floor(n) - 6
	if m > approxEntropyBlockLengthMax {
		m = approxEntropyBlockLengthMax
	}
	if m < 2 {
		m = 2
	}
	return m
}

// phi computes Phi_r for pattern length r, padding the sequence by
// wrapping its first r-1 bits onto the end (spec §4.12, corrected).
func phi(bits BitSequence, r int) float64 {
	n := bits.Len()
	data := bits.Bits()
	padded := make([]int8, n+r-1)
	copy(padded, data)
	copy(padded[n:], data[:r-1])

	counts := make(map[int]int)
	for i := 0; i < n; i++ {
		p := 0
		for j := 0; j < r; j++ {
			p = (p << 1) | int(padded[i+j])
		}
		counts[p]++
	}

	sum := 0.0
	for _, c := range counts {
		ci := float64(c) / float64(n)
		sum += ci * math.Log(ci)
	}
	return sum
}

// Execute implements Test.
func (ApproximateEntropy) Execute(bits BitSequence) Result {
	start := time.Now()
	n := bits.Len()
	m := approxEntropyBlockLength(n)

	phiM := phi(bits, m)
	phiM1 := phi(bits, m+1)

	chiSquare := 2 * float64(n) * (math.Ln2 - (phiM - phiM1))
	score := mathext.GammaIncRegComp(pow2(m-1), chiSquare/2)
	return run(ApproximateEntropy{}.Name(), []float64{score}, start)
}
