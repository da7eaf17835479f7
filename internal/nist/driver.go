package nist

import "fmt"

// RunAllBattery runs every test in battery against bits, in insertion
// order (spec §6). When checkEligibility is true, ineligible tests
// contribute a nil entry instead of being executed; the returned
// slice always has battery.Len() entries, one per registered
// test, null or not (spec §8 invariant 5).
func RunAllBattery(bits BitSequence, battery *Battery, checkEligibility bool) ([]*Result, error) {
	if battery.Len() == 0 {
		return nil, ErrEmptyBattery
	}
	results := make([]*Result, battery.Len())
	for i, e := range battery.entries {
		if checkEligibility && !e.test.IsEligible(bits) {
			continue
		}
		r := e.test.Execute(bits)
		results[i] = &r
	}
	return results, nil
}

// RunInOrderBattery runs battery's tests in insertion order, stopping
// at (and including) the first Result whose Passed is false. Entries
// after the stopping point are left nil; ineligible tests before the
// stop point are also nil when checkEligibility is true (spec §6).
func RunInOrderBattery(bits BitSequence, battery *Battery, checkEligibility bool) ([]*Result, error) {
	if battery.Len() == 0 {
		return nil, ErrEmptyBattery
	}
	results := make([]*Result, battery.Len())
	for i, e := range battery.entries {
		if checkEligibility && !e.test.IsEligible(bits) {
			continue
		}
		r := e.test.Execute(bits)
		results[i] = &r
		if !r.Passed {
			break
		}
	}
	return results, nil
}

// RunByNameBattery runs the single test registered under name. When
// checkEligibility is true and the test is not eligible for bits, it
// returns (nil, nil) rather than executing it. An unregistered name
// returns ErrUnknownTest (spec §6, §7).
func RunByNameBattery(name string, bits BitSequence, battery *Battery, checkEligibility bool) (*Result, error) {
	test, ok := battery.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTest, name)
	}
	if checkEligibility && !test.IsEligible(bits) {
		return nil, nil
	}
	r := test.Execute(bits)
	return &r, nil
}

// CheckEligibilityAllBattery returns a new Battery containing only the
// entries of battery that are eligible for bits, preserving their
// relative order (spec §6).
func CheckEligibilityAllBattery(bits BitSequence, battery *Battery) *Battery {
	filtered := NewBattery()
	for _, e := range battery.entries {
		if e.test.IsEligible(bits) {
			filtered.Register(e.id, e.test)
		}
	}
	return filtered
}

// CheckEligibilityByNameBattery reports whether the test registered
// under name is eligible for bits. An unregistered name returns
// ErrUnknownTest.
func CheckEligibilityByNameBattery(name string, bits BitSequence, battery *Battery) (bool, error) {
	test, ok := battery.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownTest, name)
	}
	return test.IsEligible(bits), nil
}
