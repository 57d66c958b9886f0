// Package buf provides overflow-checked arithmetic and bounds validation for
// element-count and capacity calculations shared by storages and containers.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would
// overflow int. This is essential for count doubling and count * elementSize
// calculations in growth arithmetic.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// Region returns the sub-slice s[off:off+n] if it fits within len(s).
func Region[T any](s []T, off, n int) ([]T, bool) {
	if off < 0 || n < 0 || off > len(s) {
		return nil, false
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok || end > len(s) {
		return nil, false
	}
	return s[off:end], true
}
