// Package projection: linear subspace projectors.

package projection

import (
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
)

// Method selects how the normal-space projection is computed. All
// methods project onto the same subspace (the Jacobian's row space);
// they differ only in numerical stability and cost.
type Method int

const (
	// MethodLinear solves the Gram system directly:
	// Jᵀ·(J·Jᵀ)⁻¹·J·v. Cheapest for small codimension.
	MethodLinear Method = iota

	// MethodQR builds an orthonormal basis of the row space via economic
	// QR of Jᵀ and projects as Q·(Qᵀv). Most stable.
	MethodQR

	// MethodLstSq solves the overdetermined system Jᵀ·a ≈ v in the
	// least-squares sense and returns Jᵀ·a.
	MethodLstSq

	// MethodGradient is the closed form for a single constraint:
	// ĝ·(ĝ·v) with ĝ the normalized gradient. Requires codimension 1.
	MethodGradient
)

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	return m >= MethodLinear && m <= MethodGradient
}

// String implements fmt.Stringer for diagnostics and logs.
func (m Method) String() string {
	switch m {
	case MethodLinear:
		return "linear"
	case MethodQR:
		return "qr"
	case MethodLstSq:
		return "lstsq"
	case MethodGradient:
		return "gradient"
	default:
		return "unknown"
	}
}

// Project returns the component of v in the row space of the m×n
// Jacobian j, computed with the selected method.
//
// Errors:
//   - ErrBadMethod            — unknown method value.
//   - ErrGradientCodim        — MethodGradient with codimension > 1.
//   - linalg.ErrSingular      — degenerate Jacobian (zero gradient,
//     rank-deficient Gram system).
//   - linalg.ErrDimensionMismatch — len(v) != n.
//
// Complexity: O(n·m²) for Linear/LstSq/QR (m ≪ n), O(n) for Gradient.
func Project(v []float64, j *linalg.Dense, method Method) ([]float64, error) {
	if j == nil {
		return nil, linalg.ErrNilMatrix
	}
	if len(v) != j.Cols() {
		return nil, linalg.ErrDimensionMismatch
	}

	switch method {
	case MethodLinear:
		jv, err := linalg.MatVec(j, v)
		if err != nil {
			return nil, err
		}
		gram, err := linalg.MulT(j, j)
		if err != nil {
			return nil, err
		}
		coef, err := linalg.SolveVec(gram, jv)
		if err != nil {
			return nil, err
		}
		return linalg.MatTVec(j, coef)

	case MethodQR:
		jt, err := linalg.Transpose(j)
		if err != nil {
			return nil, err
		}
		q, err := linalg.QREconomic(jt)
		if err != nil {
			return nil, err
		}
		qtv, err := linalg.MatTVec(q, v)
		if err != nil {
			return nil, err
		}
		return linalg.MatVec(q, qtv)

	case MethodLstSq:
		jt, err := linalg.Transpose(j)
		if err != nil {
			return nil, err
		}
		coef, err := linalg.LstSqVec(jt, v)
		if err != nil {
			return nil, err
		}
		return linalg.MatTVec(j, coef)

	case MethodGradient:
		if j.Rows() != 1 {
			return nil, ErrGradientCodim
		}
		g := j.Row(0)
		nrm := math.Sqrt(linalg.Dot(g, g))
		if nrm == 0 {
			return nil, linalg.ErrSingular
		}
		scale := linalg.Dot(g, v) / (nrm * nrm)
		return linalg.Scale(scale, g), nil

	default:
		return nil, ErrBadMethod
	}
}

// TangentProject returns v minus its normal component, i.e. the
// projection of v onto the tangent space at the point where j was
// evaluated. Uses the direct linear solve, the reference policy of the
// RATTLE integrator.
func TangentProject(v []float64, j *linalg.Dense) ([]float64, error) {
	normal, err := Project(v, j, MethodLinear)
	if err != nil {
		return nil, err
	}
	return linalg.Sub(v, normal), nil
}
