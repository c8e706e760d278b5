// Package linalg: Householder QR kernels.
// Economic QR of tall matrices and the least-squares solve built on it.
// Both are consumed by the tangent-space projectors: QREconomic yields an
// orthonormal basis of a Jacobian's row space, LstSqVec solves the
// overdetermined projection system without forming the Gram matrix.

package linalg

import "math"

// qrFactors holds the in-place Householder factorization of an r×c
// matrix (r >= c): the upper triangle of qr is R, the lower trapezoid
// stores the reflector tails, rdiag the diagonal of R.
type qrFactors struct {
	r, c  int
	qr    []float64
	rdiag []float64
}

// qrFactorize computes the Householder factorization of a (r×c, r >= c).
// Stage 1 (Validate): nil, r >= c.
// Stage 2 (Execute): column-wise Householder reflections, fixed order.
// Complexity: O(r*c²) time, O(r*c) space.
func qrFactorize(a *Dense) (*qrFactors, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.r < a.c {
		return nil, ErrTallRequired
	}

	r, c := a.r, a.c
	f := &qrFactors{r: r, c: c, qr: make([]float64, r*c), rdiag: make([]float64, c)}
	copy(f.qr, a.data)

	for k := 0; k < c; k++ {
		// 2-norm of the k-th column below the diagonal, scaled for safety.
		var nrm float64
		for i := k; i < r; i++ {
			nrm = math.Hypot(nrm, f.qr[i*c+k])
		}
		if nrm == 0 {
			f.rdiag[k] = 0
			continue
		}
		if f.qr[k*c+k] < 0 {
			nrm = -nrm
		}
		for i := k; i < r; i++ {
			f.qr[i*c+k] /= nrm
		}
		f.qr[k*c+k] += 1

		// Apply the reflector to the remaining columns.
		for j := k + 1; j < c; j++ {
			var s float64
			for i := k; i < r; i++ {
				s += f.qr[i*c+k] * f.qr[i*c+j]
			}
			s = -s / f.qr[k*c+k]
			for i := k; i < r; i++ {
				f.qr[i*c+j] += s * f.qr[i*c+k]
			}
		}
		f.rdiag[k] = -nrm
	}
	return f, nil
}

// applyQT applies Qᵀ to a length-r vector in place.
// Complexity: O(r*c).
func (f *qrFactors) applyQT(v []float64) {
	for k := 0; k < f.c; k++ {
		if f.rdiag[k] == 0 {
			continue
		}
		var s float64
		for i := k; i < f.r; i++ {
			s += f.qr[i*f.c+k] * v[i]
		}
		s = -s / f.qr[k*f.c+k]
		for i := k; i < f.r; i++ {
			v[i] += s * f.qr[i*f.c+k]
		}
	}
}

// QREconomic returns the orthonormal factor Q (r×c) of the economic QR
// of a tall r×c matrix. Columns of Q span the column space of a.
// Stage 1 (Factorize): qrFactorize.
// Stage 2 (Accumulate): apply reflectors to the first c identity columns
// in reverse order.
// Returns ErrSingular when a is column-rank deficient (zero R diagonal).
// Complexity: O(r*c²) time, O(r*c) space.
func QREconomic(a *Dense) (*Dense, error) {
	f, err := qrFactorize(a)
	if err != nil {
		return nil, err
	}
	for k := 0; k < f.c; k++ {
		if f.rdiag[k] == 0 {
			return nil, ErrSingular
		}
	}

	r, c := f.r, f.c
	q := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for k := c - 1; k >= 0; k-- {
		q.data[k*c+k] = 1
		for j := k; j < c; j++ {
			var s float64
			for i := k; i < r; i++ {
				s += f.qr[i*c+k] * q.data[i*c+j]
			}
			s = -s / f.qr[k*c+k]
			for i := k; i < r; i++ {
				q.data[i*c+j] += s * f.qr[i*c+k]
			}
		}
	}
	return q, nil
}

// LstSqVec solves min_x ‖a·x − b‖₂ for a tall full-rank a (r×c, r >= c)
// via Householder QR: x = R⁻¹·(Qᵀb)[:c].
// Returns ErrSingular when R has a zero diagonal entry.
// Complexity: O(r*c²) time, O(r) space.
func LstSqVec(a *Dense, b []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if len(b) != a.r {
		return nil, ErrDimensionMismatch
	}

	f, err := qrFactorize(a)
	if err != nil {
		return nil, err
	}

	y := make([]float64, len(b))
	copy(y, b)
	f.applyQT(y)

	// Back-substitute against R.
	x := make([]float64, f.c)
	for i := f.c - 1; i >= 0; i-- {
		if f.rdiag[i] == 0 {
			return nil, ErrSingular
		}
		sum := y[i]
		for j := i + 1; j < f.c; j++ {
			sum -= f.qr[i*f.c+j] * x[j]
		}
		x[i] = sum / f.rdiag[i]
	}
	return x, nil
}
