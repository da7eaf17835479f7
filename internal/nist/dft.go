package nist

import (
	"math"
	"time"

	"gonum.org/v1/gonum/dsp/fourier"
)

// DFT is the discrete Fourier transform (spectral) test (spec §4.6):
// it looks for periodic features in the sequence by comparing the
// observed count of sub-threshold spectral peaks against what a
// random sequence would produce.
type DFT struct{}

// Name implements Test.
func (DFT) Name() string { return "dft" }

// IsEligible implements Test; always eligible.
func (DFT) IsEligible(bits BitSequence) bool {
	return bits.Len() > 0
}

// Execute implements Test.
func (DFT) Execute(bits BitSequence) Result {
	start := time.Now()

	signed := bits.Signed()
	n := len(signed)
	if n%2 != 0 {
		signed = signed[:n-1]
		n--
	}

	series := make([]float64, n)
	for i, b := range signed {
		series[i] = float64(b)
	}

	fft := fourier.NewFFT(n)
	spectrum := fft.Coefficients(nil, series)

	half := n / 2
	magnitudes := make([]float64, half)
	for i := 0; i < half; i++ {
		magnitudes[i] = cmplxAbs(spectrum[i])
	}

	threshold := math.Sqrt(float64(n) * math.Log(1/0.05))
	n0 := 0.95 * float64(n) / 2

	n1 := 0.0
	for _, mag := range magnitudes {
		if mag < threshold {
			n1++
		}
	}

	d := (n1 - n0) / math.Sqrt(float64(n)*0.95*0.05/4)
	score := math.Erfc(math.Abs(d) / math.Sqrt2)
	return run(DFT{}.Name(), []float64{score}, start)
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
