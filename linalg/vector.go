// Package linalg: small vector kernels shared by the samplers.
// Pure, deterministic, allocation-explicit helpers; vectors are plain
// []float64 and are never mutated unless the function name says so.

package linalg

import "math"

// Dot returns the inner product of two equal-length vectors.
// Length mismatch is a programmer error at this level; callers validate
// once at the API boundary, so Dot panics like a slice index would.
// Complexity: O(n).
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm returns the vector norm of v for ord ∈ {2, +Inf}.
// Any other order yields ErrBadNorm.
// Complexity: O(n).
func Norm(v []float64, ord float64) (float64, error) {
	switch {
	case ord == 2:
		var sum float64
		for _, x := range v {
			sum += x * x
		}
		return math.Sqrt(sum), nil
	case math.IsInf(ord, 1):
		var max float64
		for _, x := range v {
			if a := math.Abs(x); a > max {
				max = a
			}
		}
		return max, nil
	default:
		return 0, ErrBadNorm
	}
}

// Add returns a + b as a fresh vector.
// Complexity: O(n).
func Add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub returns a − b as a fresh vector.
// Complexity: O(n).
func Sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// Scale returns s·a as a fresh vector.
// Complexity: O(n).
func Scale(s float64, a []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = s * a[i]
	}
	return out
}

// AddScaled returns a + s·b as a fresh vector.
// Complexity: O(n).
func AddScaled(a []float64, s float64, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + s*b[i]
	}
	return out
}

// CloneVec returns a deep copy of v.
// Complexity: O(n).
func CloneVec(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// AllFinite reports whether every entry of v is finite (no NaN, no ±Inf).
// Used by safe-mode Jacobian wrappers to promote silent overflow into an
// explicit failure.
// Complexity: O(n).
func AllFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
