// Package numeric holds small generic integer helpers.
package numeric

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of all values. It returns 0 for an
// empty list or when any value is 0.
func LCM[T constraints.Integer](values ...T) T {
	if len(values) == 0 {
		return 0
	}
	out := values[0]
	for _, v := range values[1:] {
		if out == 0 || v == 0 {
			return 0
		}
		out = out / GCD(out, v) * v
	}
	if out < 0 {
		return -out
	}
	return out
}

// Sum adds every value.
func Sum[T constraints.Integer](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}
