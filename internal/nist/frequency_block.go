package nist

import (
	"time"

	"gonum.org/v1/gonum/mathext"
)

// FrequencyWithinBlock is the frequency-within-block test (spec §4.2):
// it checks that the proportion of ones is close to 1/2 within
// non-overlapping blocks, not just over the whole sequence.
type FrequencyWithinBlock struct{}

// Name implements Test.
func (FrequencyWithinBlock) Name() string { return "frequency_within_block" }

// IsEligible implements Test; requires N >= 100.
func (FrequencyWithinBlock) IsEligible(bits BitSequence) bool {
	return bits.Len() >= 100
}

// Execute implements Test.
func (FrequencyWithinBlock) Execute(bits BitSequence) Result {
	start := time.Now()
	n := bits.Len()

	m := 20
	nb := n / m
	if nb >= 100 {
		nb = 99
		m = n / nb
	}

	chiSquare := 0.0
	data := bits.Bits()
	for i := 0; i < nb; i++ {
		ones := 0
		for _, b := range data[i*m : (i+1)*m] {
			ones += int(b)
		}
		pi := float64(ones) / float64(m)
		chiSquare += (pi - 0.5) * (pi - 0.5)
	}
	chiSquare *= 4 * float64(m)

	score := mathext.GammaIncRegComp(float64(nb)/2, chiSquare/2)
	return run(FrequencyWithinBlock{}.Name(), []float64{score}, start)
}
