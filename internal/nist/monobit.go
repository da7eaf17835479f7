package nist

import (
	"math"
	"time"
)

// Monobit is the frequency (monobit) test (spec §4.1): it checks that
// the proportion of ones and zeroes in the sequence is close to 1/2.
type Monobit struct{}

// Name implements Test.
func (Monobit) Name() string { return "monobit" }

// IsEligible implements Test; always eligible.
func (Monobit) IsEligible(bits BitSequence) bool {
	return bits.Len() > 0
}

// Execute implements Test.
func (Monobit) Execute(bits BitSequence) Result {
	start := time.Now()
	n := bits.Len()
	sum := 0
	for _, b := range bits.Signed() {
		sum += int(b)
	}
	sObs := math.Abs(float64(sum)) / math.Sqrt(float64(n))
	score := math.Erfc(sObs / math.Sqrt2)
	return run(Monobit{}.Name(), []float64{score}, start)
}
