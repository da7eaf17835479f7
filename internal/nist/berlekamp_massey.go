package nist

// berlekampMassey returns the length of the shortest linear feedback
// shift register over GF(2) that generates bits, i.e. its linear
// complexity (spec §4.10, C5). Ported from the reference algorithm in
// nistrng's _berlekamp_massey, working over {0,1} ints rather than a
// polynomial library.
func berlekampMassey(bits []int8) int {
	n := len(bits)
	c := make([]int8, n)
	b := make([]int8, n)
	c[0] = 1
	b[0] = 1

	l := 0
	m := -1

	t := make([]int8, n)
	for i := 0; i < n; i++ {
		discrepancy := bits[i]
		for j := 1; j <= l; j++ {
			discrepancy ^= c[j] & bits[i-j]
		}
		if discrepancy == 0 {
			continue
		}
		copy(t, c)
		shift := i - m
		for j := 0; j+shift < n; j++ {
			c[j+shift] ^= b[j]
		}
		if l <= i/2 {
			l = i + 1 - l
			m = i
			copy(b, t)
		}
	}
	return l
}
