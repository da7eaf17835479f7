package nist

import (
	"time"

	"gonum.org/v1/gonum/mathext"
)

// Serial is the serial test (spec §4.11): it checks that every
// overlapping m-bit pattern occurs with the frequency a random
// sequence would produce, at three nested pattern lengths.
type Serial struct{}

const serialM = 4

// Name implements Test.
func (Serial) Name() string { return "serial" }

// IsEligible implements Test; requires floor(log2 N) - 2 >= m.
func (Serial) IsEligible(bits BitSequence) bool {
	n := bits.Len()
	if n < 2 {
		return false
	}
	return log2Floor(n)-2 >= serialM
}

// psiSquared computes Psi^2_k for pattern length k, padding the
// sequence by wrapping its first k-1 bits onto the end (spec §4.11).
func psiSquared(bits BitSequence, k int) float64 {
	if k <= 0 {
		return 0
	}
	n := bits.Len()
	data := bits.Bits()
	padded := make([]int8, n+k-1)
	copy(padded, data)
	copy(padded[n:], data[:k-1])

	counts := make(map[int]int)
	for i := 0; i < n; i++ {
		p := 0
		for j := 0; j < k; j++ {
			p = (p << 1) | int(padded[i+j])
		}
		counts[p]++
	}

	sum := 0.0
	for _, c := range counts {
		sum += float64(c) * float64(c)
	}
	return (float64(int(1)<<uint(k))/float64(n))*sum - float64(n)
}

// Execute implements Test.
func (Serial) Execute(bits BitSequence) Result {
	start := time.Now()
	m := serialM

	psiM := psiSquared(bits, m)
	psiM1 := psiSquared(bits, m-1)
	psiM2 := psiSquared(bits, m-2)

	deltaPsi := psiM - psiM1
	delta2Psi := psiM - 2*psiM1 + psiM2

	score1 := mathext.GammaIncRegComp(pow2(m-2), deltaPsi/2)
	score2 := mathext.GammaIncRegComp(pow2(m-3), delta2Psi/2)

	return run(Serial{}.Name(), []float64{score1, score2}, start)
}
