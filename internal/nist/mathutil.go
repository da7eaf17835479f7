package nist

import "math"

// log2Floor returns floor(log2(n)) for n >= 1.
func log2Floor(n int) int {
	return int(math.Floor(math.Log2(float64(n))))
}

// pow2 returns 2^e as a float64, including negative e.
func pow2(e int) float64 {
	return math.Pow(2, float64(e))
}
