package nist

import (
	"time"

	"gonum.org/v1/gonum/mathext"
)

// LongestRunOnesInBlock is the longest-run-of-ones-in-a-block test
// (spec §4.4): it checks that the longest run of consecutive ones
// within fixed-size blocks matches the distribution expected of a
// random sequence.
type LongestRunOnesInBlock struct{}

// Name implements Test.
func (LongestRunOnesInBlock) Name() string { return "longest_run_ones_in_a_block" }

// IsEligible implements Test; requires N >= 128.
func (LongestRunOnesInBlock) IsEligible(bits BitSequence) bool {
	return bits.Len() >= 128
}

// longestRunParams picks (M, K, blocks, bucket upper-bounds, reference
// probabilities) from N, per the NIST parameter table.
func longestRunParams(n int) (m, k, nb int, bounds []int, pi []float64) {
	switch {
	case n < 6272:
		return 8, 3, 16,
			[]int{1, 2, 3},
			[]float64{0.2148, 0.3672, 0.2305, 0.1875}
	case n < 750000:
		return 128, 5, 49,
			[]int{4, 5, 6, 7, 8},
			[]float64{0.1174, 0.2430, 0.2493, 0.1752, 0.1027, 0.1124}
	default:
		return 10000, 6, 75,
			[]int{10, 11, 12, 13, 14, 15},
			[]float64{0.0882, 0.2092, 0.2483, 0.1933, 0.1208, 0.0675, 0.0727}
	}
}

// bucket maps a longest-run length to its bin index given the
// ascending upper-bound list: bin i holds longest <= bounds[i], the
// final bin holds everything above bounds[len(bounds)-1].
func bucket(longest int, bounds []int) int {
	for i, b := range bounds {
		if longest <= b {
			return i
		}
	}
	return len(bounds)
}

// Execute implements Test.
func (LongestRunOnesInBlock) Execute(bits BitSequence) Result {
	start := time.Now()
	n := bits.Len()
	m, k, nb, bounds, pi := longestRunParams(n)

	counts := make([]int, k+1)
	data := bits.Bits()
	for b := 0; b < nb; b++ {
		block := data[b*m : (b+1)*m]
		longest, current := 0, 0
		for _, bit := range block {
			if bit == 1 {
				current++
				if current > longest {
					longest = current
				}
			} else {
				current = 0
			}
		}
		counts[bucket(longest, bounds)]++
	}

	chiSquare := 0.0
	for i, c := range counts {
		expected := float64(nb) * pi[i]
		diff := float64(c) - expected
		chiSquare += diff * diff / expected
	}

	score := mathext.GammaIncRegComp(float64(k)/2, chiSquare/2)
	return run(LongestRunOnesInBlock{}.Name(), []float64{score}, start)
}
