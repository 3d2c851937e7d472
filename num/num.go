// Package num implements various utility functions regarding numeric types.
package num

// NextPowerOfTwo returns the smallest power of two not less than x.
func NextPowerOfTwo(x int) int {
	n := 1
	for n < x {
		n <<= 1
	}
	return n
}
