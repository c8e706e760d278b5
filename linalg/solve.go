// Package linalg: LU-based kernels.
// LU factorization with partial pivoting and the solves built on it:
// SolveVec (square systems), Inverse, RCond (reciprocal condition
// estimate in the 1-norm) and LogDet (log absolute determinant).
//
// Determinism:
//   - Pivot selection breaks ties by the lowest row index.
//   - No randomness; identical inputs yield identical factorizations.
//
// AI-Hints:
//   - RCond is the singularity gate for Gram matrices in Newton-type
//     projections: treat rcond < machine epsilon as "numerically singular"
//     instead of waiting for SolveVec to hit an exact zero pivot.
//   - Keep systems small (m×m, m = number of constraints); all kernels
//     here are O(m³) and intended for m ≪ ambient dimension regimes.

package linalg

import "math"

// luFactors holds a packed LU factorization with row-pivot bookkeeping.
// lu stores L (unit lower triangle, implicit diagonal) and U in place;
// piv[i] is the row swapped into position i; sign flips per swap.
type luFactors struct {
	n    int
	lu   []float64
	piv  []int
	sign float64
}

// luFactorize computes PA = LU with partial pivoting for a square n×n matrix.
// Stage 1 (Validate): nil and squareness checks.
// Stage 2 (Execute): Doolittle elimination with row swaps on max |pivot|.
// Returns ErrSingular when a pivot column is exactly zero.
// Complexity: O(n³) time, O(n²) space.
func luFactorize(a *Dense) (*luFactors, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.r != a.c {
		return nil, ErrNonSquare
	}

	n := a.r
	f := &luFactors{n: n, lu: make([]float64, n*n), piv: make([]int, n), sign: 1}
	copy(f.lu, a.data)
	for i := range f.piv {
		f.piv[i] = i
	}

	for k := 0; k < n; k++ {
		// Partial pivot: largest |value| in column k at or below the diagonal.
		p, maxAbs := k, math.Abs(f.lu[k*n+k])
		for i := k + 1; i < n; i++ {
			if abs := math.Abs(f.lu[i*n+k]); abs > maxAbs {
				p, maxAbs = i, abs
			}
		}
		if maxAbs == 0 {
			return nil, ErrSingular
		}
		if p != k {
			rowK, rowP := f.lu[k*n:(k+1)*n], f.lu[p*n:(p+1)*n]
			for j := 0; j < n; j++ {
				rowK[j], rowP[j] = rowP[j], rowK[j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
			f.sign = -f.sign
		}

		pivot := f.lu[k*n+k]
		for i := k + 1; i < n; i++ {
			m := f.lu[i*n+k] / pivot
			f.lu[i*n+k] = m
			if m == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				f.lu[i*n+j] -= m * f.lu[k*n+j]
			}
		}
	}
	return f, nil
}

// solve applies the factorization to a single right-hand side.
// Complexity: O(n²).
func (f *luFactors) solve(b []float64) []float64 {
	n := f.n
	x := make([]float64, n)
	// Apply row permutation, then forward substitution (unit L).
	for i := 0; i < n; i++ {
		x[i] = b[f.piv[i]]
	}
	for i := 1; i < n; i++ {
		var sum float64
		for j := 0; j < i; j++ {
			sum += f.lu[i*n+j] * x[j]
		}
		x[i] -= sum
	}
	// Backward substitution (U).
	for i := n - 1; i >= 0; i-- {
		sum := x[i]
		for j := i + 1; j < n; j++ {
			sum -= f.lu[i*n+j] * x[j]
		}
		x[i] = sum / f.lu[i*n+i]
	}
	return x
}

// SolveVec solves the square system a·x = b via LU with partial pivoting.
// Stage 1 (Validate): shapes (square, len(b) == n).
// Stage 2 (Factorize): luFactorize; ErrSingular on zero pivot.
// Stage 3 (Substitute): permute + forward + backward substitution.
// Complexity: O(n³) time, O(n²) space.
func SolveVec(a *Dense, b []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.r != a.c {
		return nil, ErrNonSquare
	}
	if len(b) != a.r {
		return nil, ErrDimensionMismatch
	}

	f, err := luFactorize(a)
	if err != nil {
		return nil, err
	}
	return f.solve(b), nil
}

// Inverse computes a⁻¹ column by column from a single LU factorization.
// Complexity: O(n³) time, O(n²) space.
func Inverse(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.r != a.c {
		return nil, ErrNonSquare
	}

	f, err := luFactorize(a)
	if err != nil {
		return nil, err
	}

	n := a.r
	inv := &Dense{r: n, c: n, data: make([]float64, n*n)}
	e := make([]float64, n)
	for j := 0; j < n; j++ {
		e[j] = 1
		col := f.solve(e)
		e[j] = 0
		for i := 0; i < n; i++ {
			inv.data[i*n+j] = col[i]
		}
	}
	return inv, nil
}

// norm1 returns the induced 1-norm (maximum absolute column sum) of a square matrix.
// Complexity: O(n²).
func norm1(a *Dense) float64 {
	var max float64
	for j := 0; j < a.c; j++ {
		var sum float64
		for i := 0; i < a.r; i++ {
			sum += math.Abs(a.data[i*a.c+j])
		}
		if sum > max {
			max = sum
		}
	}
	return max
}

// RCond estimates the reciprocal condition number of a in the 1-norm,
// 1/(‖a‖₁·‖a⁻¹‖₁). Returns 0 (and no error) when the factorization hits
// an exact zero pivot: a numerically singular matrix is a legitimate
// answer here, not a failure.
// Complexity: O(n³) time, O(n²) space.
func RCond(a *Dense) (float64, error) {
	if a == nil {
		return 0, ErrNilMatrix
	}
	if a.r != a.c {
		return 0, ErrNonSquare
	}

	inv, err := Inverse(a)
	if err != nil {
		if err == ErrSingular {
			return 0, nil
		}
		return 0, err
	}
	na, ninv := norm1(a), norm1(inv)
	if na == 0 || ninv == 0 {
		return 0, nil
	}
	return 1 / (na * ninv), nil
}

// LogDet returns log|det(a)| from the LU factorization.
// ErrSingular is returned when the determinant is exactly zero.
// Complexity: O(n³).
func LogDet(a *Dense) (float64, error) {
	f, err := luFactorize(a)
	if err != nil {
		return 0, err
	}
	var ld float64
	for i := 0; i < f.n; i++ {
		ld += math.Log(math.Abs(f.lu[i*f.n+i]))
	}
	return ld, nil
}
