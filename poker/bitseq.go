package poker

import "iter"

// NextBitPattern returns the next larger integer with the same number of
// set bits as v. v must be non-zero.
func NextBitPattern(v uint16) uint16 {
	t := (v | (v - 1)) + 1
	return t | ((((t & -t) / (v & -v)) >> 1) - 1)
}

// BitPatterns yields the n patterns that follow start in increasing order,
// each with the same popcount as start. The sequence can be ranged over
// any number of times.
func BitPatterns(start uint16, n int) iter.Seq[uint16] {
	return func(yield func(uint16) bool) {
		v := start
		for range n {
			v = NextBitPattern(v)
			if !yield(v) {
				return
			}
		}
	}
}
