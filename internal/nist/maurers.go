package nist

import (
	"math"
	"time"
)

// MaurersUniversal is Maurer's universal statistical test (spec
// §4.9): it estimates the compressibility of the sequence by
// measuring the typical distance between repeated L-bit patterns.
type MaurersUniversal struct{}

// Name implements Test.
func (MaurersUniversal) Name() string { return "maurers_universal" }

// IsEligible implements Test; requires N >= 387,840.
func (MaurersUniversal) IsEligible(bits BitSequence) bool {
	return bits.Len() >= 387840
}

// maurerThresholds maps the smallest N a pattern length L applies to,
// in ascending order (spec §4.9).
var maurerThresholds = []struct {
	n int
	l int
}{
	{904960, 7}, {2068480, 8}, {4654080, 9}, {10342400, 10}, {22753280, 11},
	{49643520, 12}, {107560960, 13}, {231669760, 14}, {496435200, 15},
	{1059061760, 16},
}

// maurerExpected holds E[L] and V[L] for L in [6,16], from the
// published reference table.
var maurerExpected = map[int][2]float64{
	6:  {5.2177052, 2.954},
	7:  {6.1962507, 3.125},
	8:  {7.1836656, 3.238},
	9:  {8.1764248, 3.311},
	10: {9.1723243, 3.356},
	11: {10.170032, 3.384},
	12: {11.168765, 3.401},
	13: {12.168070, 3.410},
	14: {13.167693, 3.416},
	15: {14.167488, 3.419},
	16: {15.167379, 3.421},
}

// maurerPatternLength picks L for a given N: the largest L whose
// threshold is <= N, floored at 6.
func maurerPatternLength(n int) int {
	l := 6
	for _, th := range maurerThresholds {
		if n >= th.n {
			l = th.l
		}
	}
	return l
}

// Execute implements Test.
func (MaurersUniversal) Execute(bits BitSequence) Result {
	start := time.Now()
	n := bits.Len()
	l := maurerPatternLength(n)

	q := 10 * (1 << uint(l))
	k := n/l - q
	data := bits.Bits()

	patterns := 1 << uint(l)
	lastSeen := make([]int, patterns)

	for i := 0; i < q; i++ {
		lastSeen[patternAt(data, i, l)] = i
	}

	sum := 0.0
	for i := q; i < q+k; i++ {
		p := patternAt(data, i, l)
		sum += math.Log2(float64(i - lastSeen[p]))
		lastSeen[p] = i
	}

	fn := sum / float64(k)
	ev := maurerExpected[l]
	magnitude := math.Abs(fn-ev[0]) / (math.Sqrt(ev[1]) * math.Sqrt2)
	score := math.Erfc(magnitude)
	return run(MaurersUniversal{}.Name(), []float64{score}, start)
}

// patternAt reads the L-bit pattern starting at block index i (i.e.
// bits [i*l, (i+1)*l)) as an integer.
func patternAt(data []int8, i, l int) int {
	p := 0
	base := i * l
	for j := 0; j < l; j++ {
		p = (p << 1) | int(data[base+j])
	}
	return p
}
