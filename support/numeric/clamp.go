// Package numeric holds small generic numeric helpers shared across the
// config and run-control code, instead of duplicating the same "use this
// unless the caller overrode it" pattern once per integer type.
package numeric

import "golang.org/x/exp/constraints"

// OrDefault returns v if it is strictly positive, otherwise def.
func OrDefault[T constraints.Integer](v, def T) T {
	if v > 0 {
		return v
	}
	return def
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
