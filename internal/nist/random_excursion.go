package nist

import (
	"time"

	"gonum.org/v1/gonum/mathext"
)

// RandomExcursion is the random excursion test (spec §4.14): it
// splits the +-1 random walk into cycles at each zero crossing and
// checks the distribution of visit counts to each non-zero state
// against the reference probability matrix.
type RandomExcursion struct{}

// Name implements Test.
func (RandomExcursion) Name() string { return "random_excursion" }

// IsEligible implements Test; always eligible.
func (RandomExcursion) IsEligible(bits BitSequence) bool {
	return bits.Len() > 0
}

var randomExcursionStates = []int{-4, -3, -2, -1, 1, 2, 3, 4}

// randomExcursionPi is the reference probability matrix, rows keyed
// by |x| (only |x| in [1,4] are used), columns
// the six visit-count bins {0,1,2,3,4,>=5} (spec §4.14, NIST table).
var randomExcursionPi = map[int][6]float64{
	1: {0.5000, 0.2500, 0.1250, 0.0625, 0.0312, 0.0312},
	2: {0.7500, 0.0625, 0.0469, 0.0352, 0.0264, 0.0791},
	3: {0.8333, 0.0278, 0.0231, 0.0193, 0.0161, 0.0804},
	4: {0.8750, 0.0156, 0.0137, 0.0120, 0.0105, 0.0733},
}

// randomWalkCycles builds S' = [0] ++ cumsum(signed) ++ [0] and
// splits it into cycles at every zero of S (spec §4.14).
func randomWalkCycles(bits BitSequence) [][]int {
	signed := bits.Signed()
	walk := make([]int, 0, len(signed)+2)
	walk = append(walk, 0)
	sum := 0
	for _, b := range signed {
		sum += int(b)
		walk = append(walk, sum)
	}
	walk = append(walk, 0)

	var cycles [][]int
	start := 0
	for i := 1; i < len(walk); i++ {
		if walk[i] == 0 {
			cycles = append(cycles, walk[start:i+1])
			start = i
		}
	}
	return cycles
}

// Execute implements Test.
func (RandomExcursion) Execute(bits BitSequence) Result {
	start := time.Now()
	cycles := randomWalkCycles(bits)
	j := len(cycles)

	if j == 0 {
		scores := make([]float64, len(randomExcursionStates))
		return Result{Name: RandomExcursion{}.Name(), Passed: false, Scores: scores, Elapsed: time.Since(start)}
	}

	scores := make([]float64, len(randomExcursionStates))
	for si, x := range randomExcursionStates {
		var visitCounts [6]int
		for _, cycle := range cycles {
			count := 0
			for _, v := range cycle {
				if v == x {
					count++
				}
			}
			bin := count
			if bin > 5 {
				bin = 5
			}
			visitCounts[bin]++
		}

		absX := x
		if absX < 0 {
			absX = -absX
		}
		pi := randomExcursionPi[absX]

		chiSquare := 0.0
		for k := 0; k < 6; k++ {
			expected := float64(j) * pi[k]
			diff := float64(visitCounts[k]) - expected
			chiSquare += diff * diff / expected
		}
		scores[si] = mathext.GammaIncRegComp(2.5, chiSquare/2)
	}

	return run(RandomExcursion{}.Name(), scores, start)
}
