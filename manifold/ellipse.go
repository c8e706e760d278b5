// Package manifold: level set of a multivariate normal density.

package manifold

import (
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
)

// GeneralizedEllipse is the z-level set of a multivariate normal density
// with mean mu and covariance sigma: {x : N(x; mu, sigma) = z}.
// Equivalently the constraint (x−mu)ᵀΣ⁻¹(x−mu) = γ with
// γ = −n·log(2π) − logdet(Σ) − 2·log(z).
type GeneralizedEllipse struct {
	mu       []float64
	sigmaInv *linalg.Dense
	gamma    float64
}

// NewGeneralizedEllipse precomputes Σ⁻¹, logdet(Σ) and γ.
// Returns ErrDimension on shape mismatch, linalg.ErrSingular when the
// covariance is not invertible, and ErrDomain for a non-positive level z.
func NewGeneralizedEllipse(mu []float64, sigma *linalg.Dense, z float64) (*GeneralizedEllipse, error) {
	n := len(mu)
	if n < 2 || sigma == nil || sigma.Rows() != n || sigma.Cols() != n {
		return nil, ErrDimension
	}
	if !(z > 0) {
		return nil, ErrDomain
	}

	sinv, err := linalg.Inverse(sigma)
	if err != nil {
		return nil, err
	}
	logdet, err := linalg.LogDet(sigma)
	if err != nil {
		return nil, err
	}
	gamma := -float64(n)*math.Log(2*math.Pi) - logdet - 2*math.Log(z)
	return &GeneralizedEllipse{mu: linalg.CloneVec(mu), sigmaInv: sinv, gamma: gamma}, nil
}

// Dim returns n−1.
func (e *GeneralizedEllipse) Dim() int { return len(e.mu) - 1 }

// Codim returns 1.
func (e *GeneralizedEllipse) Codim() int { return 1 }

// Constraint evaluates (x−mu)ᵀΣ⁻¹(x−mu) − γ as a length-1 vector.
func (e *GeneralizedEllipse) Constraint(x []float64) ([]float64, error) {
	if err := CheckPoint(e, x); err != nil {
		return nil, err
	}
	diff := linalg.Sub(x, e.mu)
	sd, err := linalg.MatVec(e.sigmaInv, diff)
	if err != nil {
		return nil, err
	}
	return finiteOrDomainErr([]float64{linalg.Dot(diff, sd) - e.gamma})
}

// Jacobian returns the 1×n gradient row 2·Σ⁻¹(x−mu).
func (e *GeneralizedEllipse) Jacobian(x []float64) (*linalg.Dense, error) {
	if err := CheckPoint(e, x); err != nil {
		return nil, err
	}
	diff := linalg.Sub(x, e.mu)
	grad, err := linalg.MatVec(e.sigmaInv, diff)
	if err != nil {
		return nil, err
	}
	row := linalg.Scale(2, grad)
	if !linalg.AllFinite(row) {
		return nil, ErrDomain
	}
	return linalg.FromSlice(1, len(x), row)
}

// LogDensity is the uniform density on the contour with respect to the
// Hausdorff measure (correction term only).
func (e *GeneralizedEllipse) LogDensity(x []float64) float64 {
	j, err := e.Jacobian(x)
	if err != nil {
		return math.Inf(-1)
	}
	return HausdorffCorrection(j)
}
