package nist

import "time"

// Alpha is the fixed significance level used by every test in the
// battery (spec §3).
const Alpha = 0.01

// Test is the capability set every kernel implements (spec §4.0, C3):
// a cheap eligibility precondition and the statistic computation itself.
type Test interface {
	// Name is the test's human-readable name.
	Name() string
	// IsEligible reports whether bits satisfies this test's size/shape
	// precondition. Execute must not be called when this returns false.
	IsEligible(bits BitSequence) bool
	// Execute assumes IsEligible(bits) holds and computes the test's
	// P-value(s).
	Execute(bits BitSequence) Result
}

// run wraps scores into a Result timed from start, applying the shared
// pass/fail rule (spec §4.0: passed iff every score >= Alpha).
func run(name string, scores []float64, start time.Time) Result {
	passed := true
	for _, s := range scores {
		if !(s >= Alpha) {
			passed = false
			break
		}
	}
	return Result{
		Name:    name,
		Passed:  passed,
		Scores:  scores,
		Elapsed: time.Since(start),
	}
}
