// Package nist implements the NIST SP 800-22 Rev 1a statistical test suite
// for evaluating whether a finite binary sequence was produced by a random
// source.
//
// Each test computes one or more P-values in [0,1]; a P-value below the
// fixed significance level Alpha (0.01) is evidence against randomness on
// the property that test examines. Tests are pure functions of their input
// BitSequence: no test mutates its input, retains a reference to it, or
// performs I/O.
//
// The fifteen tests are registered, in canonical order, in the
// "SP800-22R1A" Battery (see NewSP800_22R1ABattery). A Driver entry point
// (RunAllBattery, RunInOrderBattery, RunByNameBattery) runs some or all of
// a battery against a sequence, substituting a nil *Result for any test
// whose eligibility precondition the sequence fails.
package nist
