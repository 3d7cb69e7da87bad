// Package safe provides helpers for guarded integer arithmetic.
package safe

// SubSaturating returns a-b, clamped at zero when b exceeds a.
func SubSaturating[T ~int | ~int64 | ~uint | ~uint64](a, b T) T {
	if b >= a {
		return 0
	}
	return a - b
}
