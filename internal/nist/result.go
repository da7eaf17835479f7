package nist

import (
	"math"
	"time"
)

// Result is an immutable record of a single test execution (spec §3, C2).
type Result struct {
	// Name is the test's human-readable name.
	Name string
	// Passed is true iff every entry of Scores is >= the test's alpha.
	Passed bool
	// Scores holds one P-value per sub-statistic the test computes.
	// Never truncated to the aggregate score.
	Scores []float64
	// Elapsed is how long Execute took to run.
	Elapsed time.Duration
}

// Score is the arithmetic mean of the finite entries of Scores; NaN
// entries are ignored, and an all-NaN Scores yields NaN (spec §3).
func (r Result) Score() float64 {
	sum := 0.0
	count := 0
	for _, s := range r.Scores {
		if math.IsNaN(s) {
			continue
		}
		sum += s
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}
