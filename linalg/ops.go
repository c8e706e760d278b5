// Package linalg: matrix products.
// Canonical multiplication kernels shared by the projection solver and
// the samplers. All kernels validate fail-fast, allocate a fresh result
// and leave operands untouched.

package linalg

// MatVec computes a·v for an r×c matrix and a length-c vector.
// Stage 1 (Validate): nil matrix, len(v) == a.Cols().
// Stage 2 (Execute): row-wise dot products in a fixed i→j order.
// Complexity: O(r*c) time, O(r) space.
func MatVec(a *Dense, v []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if len(v) != a.c {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, a.r)
	for i := 0; i < a.r; i++ {
		row := a.data[i*a.c : (i+1)*a.c]
		var sum float64
		for j := 0; j < a.c; j++ {
			sum += row[j] * v[j]
		}
		out[i] = sum
	}
	return out, nil
}

// MatTVec computes aᵀ·v for an r×c matrix and a length-r vector,
// without materializing the transpose.
// Complexity: O(r*c) time, O(c) space.
func MatTVec(a *Dense, v []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if len(v) != a.r {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, a.c)
	for i := 0; i < a.r; i++ {
		row := a.data[i*a.c : (i+1)*a.c]
		vi := v[i]
		for j := 0; j < a.c; j++ {
			out[j] += row[j] * vi
		}
	}
	return out, nil
}

// Mul computes a·b where a is r×k and b is k×c.
// Uses the ikj loop order over flat storage for cache friendliness.
// Complexity: O(r*k*c) time, O(r*c) space.
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.r {
		return nil, ErrDimensionMismatch
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	for i := 0; i < a.r; i++ {
		arow := a.data[i*a.c : (i+1)*a.c]
		orow := out.data[i*out.c : (i+1)*out.c]
		for k := 0; k < a.c; k++ {
			aik := arow[k]
			if aik == 0 {
				continue
			}
			brow := b.data[k*b.c : (k+1)*b.c]
			for j := 0; j < b.c; j++ {
				orow[j] += aik * brow[j]
			}
		}
	}
	return out, nil
}

// MulT computes a·bᵀ where a is r×k and b is c×k; the result is r×c.
// The Gram matrix J·Jᵀ used by the Hausdorff correction and the tangent
// projector is MulT(J, J).
// Complexity: O(r*k*c) time, O(r*c) space.
func MulT(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, ErrNilMatrix
	}
	if a.c != b.c {
		return nil, ErrDimensionMismatch
	}

	out := &Dense{r: a.r, c: b.r, data: make([]float64, a.r*b.r)}
	for i := 0; i < a.r; i++ {
		arow := a.data[i*a.c : (i+1)*a.c]
		for j := 0; j < b.r; j++ {
			brow := b.data[j*b.c : (j+1)*b.c]
			var sum float64
			for k := 0; k < a.c; k++ {
				sum += arow[k] * brow[k]
			}
			out.data[i*out.c+j] = sum
		}
	}
	return out, nil
}
