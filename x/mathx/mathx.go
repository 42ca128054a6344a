package mathx

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi]. If lo > hi, the bounds are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap reduces an index that may have stepped past n back into [0, n).
// The caller guarantees v < 2n, so a single conditional subtract suffices
// (cheaper than a modulo on small MCUs).
func Wrap[T constraints.Unsigned](v, n T) T {
	if v >= n {
		return v - n
	}
	return v
}
