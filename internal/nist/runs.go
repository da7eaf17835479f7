package nist

import (
	"math"
	"time"
)

// Runs is the runs test (spec §4.3): it checks that the number of
// runs of identical bits matches what a random sequence would
// produce, catching oscillation that is too fast or too slow.
type Runs struct{}

// Name implements Test.
func (Runs) Name() string { return "runs" }

// IsEligible implements Test; requires the observed proportion of
// ones to be within 2/sqrt(N) of 1/2.
func (Runs) IsEligible(bits BitSequence) bool {
	n := bits.Len()
	if n == 0 {
		return false
	}
	pi := float64(bits.Ones()) / float64(n)
	tau := 2 / math.Sqrt(float64(n))
	return math.Abs(pi-0.5) <= tau
}

// Execute implements Test.
func (Runs) Execute(bits BitSequence) Result {
	start := time.Now()
	n := bits.Len()
	pi := float64(bits.Ones()) / float64(n)

	data := bits.Bits()
	v := 1
	for i := 0; i < n-1; i++ {
		if data[i] != data[i+1] {
			v++
		}
	}

	denom := 2 * math.Sqrt(2*float64(n)) * pi * (1 - pi)
	score := math.Erfc(math.Abs(float64(v)-2*float64(n)*pi*(1-pi)) / denom)
	return run(Runs{}.Name(), []float64{score}, start)
}
