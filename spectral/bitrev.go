// SPDX-License-Identifier: MIT

package spectral

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool { return n > 0 && n&(n-1) == 0 }

// Log2 returns ⌊log2(n)⌋ for n ≥ 1, and 0 otherwise.
func Log2(n int) int {
	var k int
	for n > 1 {
		n >>= 1
		k++
	}

	return k
}

// BitReversePermute reorders x in place so that x[i] and x[rev(i)] are
// swapped, where rev reverses the low Log2(len(x)) bits of i.
// len(x) must be a power of two; other lengths are left untouched.
//
// The reversed counter j is advanced by toggling bits from the top:
// clear every leading set bit, then set the first clear one.
func BitReversePermute(x []complex128) {
	n := len(x)
	if !IsPowerOfTwo(n) {
		return
	}
	var i, j, bit int // i counts up, j mirrors i bit-reversed
	for i = 1; i < n; i++ {
		bit = n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}
}
