package nist

// Battery is an ordered, insertion-preserving registry of named tests
// (spec §3, C8). Go has no built-in ordered map, so Battery keeps an
// explicit slice alongside a name index.
type Battery struct {
	entries []batteryEntry
	index   map[string]int
}

type batteryEntry struct {
	id   string
	test Test
}

// NewBattery returns an empty battery.
func NewBattery() *Battery {
	return &Battery{index: make(map[string]int)}
}

// Register adds test under id, in insertion order. Registering the
// same id twice overwrites the earlier entry in place, preserving its
// original position.
func (b *Battery) Register(id string, test Test) *Battery {
	if i, ok := b.index[id]; ok {
		b.entries[i].test = test
		return b
	}
	b.index[id] = len(b.entries)
	b.entries = append(b.entries, batteryEntry{id: id, test: test})
	return b
}

// Alias registers an additional id pointing at the same entry already
// registered under existing. The alias is a lookup-only name: it adds
// no entry, so Len, Names and the drivers see the test once. It is a
// no-op if existing is not registered.
func (b *Battery) Alias(existing, alias string) *Battery {
	i, ok := b.index[existing]
	if !ok {
		return b
	}
	b.index[alias] = i
	return b
}

// Len returns the number of registered entries.
func (b *Battery) Len() int {
	return len(b.entries)
}

// Names returns the registered ids in insertion order.
func (b *Battery) Names() []string {
	names := make([]string, len(b.entries))
	for i, e := range b.entries {
		names[i] = e.id
	}
	return names
}

// Lookup returns the test registered under id.
func (b *Battery) Lookup(id string) (Test, bool) {
	i, ok := b.index[id]
	if !ok {
		return nil, false
	}
	return b.entries[i].test, true
}

// NewSP800_22R1ABattery returns the canonical fifteen-test battery in
// the order spec §6 names, registered under the fifteen canonical
// keys plus the "cumulative_sums" alias (spec §9).
func NewSP800_22R1ABattery() *Battery {
	b := NewBattery()
	b.Register("monobit", Monobit{})
	b.Register("frequency_within_block", FrequencyWithinBlock{})
	b.Register("runs", Runs{})
	b.Register("longest_run_ones_in_a_block", LongestRunOnesInBlock{})
	b.Register("binary_matrix_rank", BinaryMatrixRank{})
	b.Register("dft", DFT{})
	b.Register("non_overlapping_template_matching", NewNonOverlappingTemplateMatching())
	b.Register("overlapping_template_matching", OverlappingTemplateMatching{})
	b.Register("maurers_universal", MaurersUniversal{})
	b.Register("linear_complexity", LinearComplexity{})
	b.Register("serial", Serial{})
	b.Register("approximate_entropy", ApproximateEntropy{})
	b.Register("cumulative sums", CumulativeSums{})
	b.Register("random_excursion", RandomExcursion{})
	b.Register("random_excursion_variant", RandomExcursionVariant{})
	b.Alias("cumulative sums", "cumulative_sums")
	return b
}
