package nist

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mathext"
)

// OverlappingTemplateMatching is the overlapping template matching
// test (spec §4.8): it counts occurrences of a run of m ones,
// sliding one bit at a time regardless of match, bucketing counts
// per block.
type OverlappingTemplateMatching struct{}

const (
	overlapTemplateLen = 10
	overlapBlockLen    = 1062
	overlapBlocks      = 968
)

// Name implements Test.
func (OverlappingTemplateMatching) Name() string { return "overlapping_template_matching" }

// IsEligible implements Test; requires N >= 1,028,016.
func (OverlappingTemplateMatching) IsEligible(bits BitSequence) bool {
	return bits.Len() >= 1028016
}

// overlapProbabilities returns pi_0..pi_5 (the six occurrence-count
// bins {0,1,2,3,4,>=5}) from the closed-form series parametrised by
// eta (spec §4.8).
func overlapProbabilities(eta float64) [6]float64 {
	var pi [6]float64
	var sum float64
	for i := 0; i < 5; i++ {
		pi[i] = overlapTermProbability(i, eta)
		sum += pi[i]
	}
	pi[5] = 1 - sum
	return pi
}

// overlapTermProbability computes pi_k = exp(-eta) * 2^-k *
// Sum_{l=1..k} (eta^l / l!) * C(k-1, l-1), the standard NIST
// closed-form series for Pr(occurrences = k).
func overlapTermProbability(k int, eta float64) float64 {
	if k == 0 {
		return math.Exp(-eta)
	}
	sum := 0.0
	for l := 1; l <= k; l++ {
		sum += math.Pow(eta, float64(l)) / factorial(l) * binomial(k-1, l-1)
	}
	return math.Exp(-eta) * math.Pow(2, -float64(k)) * sum
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	return math.Round(factorial(n) / (factorial(k) * factorial(n-k)))
}

// Execute implements Test.
func (OverlappingTemplateMatching) Execute(bits BitSequence) Result {
	start := time.Now()
	data := bits.Bits()

	counts := [6]int{}
	for b := 0; b < overlapBlocks; b++ {
		block := data[b*overlapBlockLen : (b+1)*overlapBlockLen]
		w := 0
		for pos := 0; pos <= overlapBlockLen-overlapTemplateLen; pos++ {
			allOnes := true
			for i := 0; i < overlapTemplateLen; i++ {
				if block[pos+i] != 1 {
					allOnes = false
					break
				}
			}
			if allOnes {
				w++
			}
		}
		bin := w
		if bin > 5 {
			bin = 5
		}
		counts[bin]++
	}

	eta := float64(overlapBlockLen-overlapTemplateLen+1) / math.Pow(2, overlapTemplateLen+1)
	pi := overlapProbabilities(eta)

	chiSquare := 0.0
	for i := 0; i < 6; i++ {
		expected := float64(overlapBlocks) * pi[i]
		diff := float64(counts[i]) - expected
		chiSquare += diff * diff / expected
	}

	score := mathext.GammaIncRegComp(2.5, chiSquare/2)
	return run(OverlappingTemplateMatching{}.Name(), []float64{score}, start)
}
