package utils

// Clamp bounds v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// CeilDiv returns ceil(a / b) for non-negative a and positive b.
func CeilDiv(a, b int) int {
	Assert(b > 0, "CeilDiv: divisor must be positive")
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
