package nist

import "errors"

// Sentinel errors returned across the package's contract-violation
// boundary (spec §7). Numerical degeneracy is never reported this way —
// it surfaces as a failing Result instead.
var (
	// ErrUnknownTest is returned when a battery has no test registered
	// under the requested id.
	ErrUnknownTest = errors.New("nist: unknown test id")

	// ErrEmptyBattery is returned when an operation requires a non-empty
	// battery but was given one with no entries.
	ErrEmptyBattery = errors.New("nist: battery has no tests registered")

	// ErrInvalidBit is returned by BitSequence constructors when an
	// element outside {0,1} is supplied.
	ErrInvalidBit = errors.New("nist: bit value outside {0,1}")

	// ErrNotEligible reports that a test is not eligible for a sequence.
	// No function in this package returns it: RunByNameBattery reports an
	// ineligible test as a nil Result with a nil error.
	ErrNotEligible = errors.New("nist: test is not eligible for this sequence")

	// ErrBadByteLength is returned by UnpackSequence when the input bit
	// count is not a multiple of 8.
	ErrBadByteLength = errors.New("nist: bit sequence length is not a multiple of 8")
)
