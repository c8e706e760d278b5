// Package manifold: capability interface and shared helpers.

package manifold

import (
	"errors"
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
)

var (
	// ErrDomain indicates that a constraint or Jacobian evaluation left the
	// numeric domain (overflow, NaN). Samplers convert this into a proposal
	// rejection; it must never terminate a chain.
	ErrDomain = errors.New("manifold: numeric domain error in evaluation")

	// ErrDimension indicates that a point has the wrong ambient dimension.
	// Unlike ErrDomain this is a hard argument error, raised before any
	// sampling starts.
	ErrDimension = errors.New("manifold: point has wrong ambient dimension")
)

// Manifold is the capability contract shared by every problem domain.
// Implementations must be immutable after construction; all methods are
// read-only and safe for concurrent use.
type Manifold interface {
	// Dim returns the manifold dimension d.
	Dim() int

	// Codim returns the number of scalar constraints m.
	Codim() int

	// Constraint evaluates the constraint function at x (length d+m) and
	// returns an m-vector. ErrDomain signals numeric failure, ErrDimension
	// a malformed input.
	Constraint(x []float64) ([]float64, error)

	// Jacobian returns the m×(d+m) matrix of constraint gradients at x.
	// Failure contract as for Constraint.
	Jacobian(x []float64) (*linalg.Dense, error)

	// LogDensity returns the log target density at x with respect to the
	// Hausdorff measure on the manifold, including the correction term
	// −½·logdet(J·Jᵀ). Returns −Inf rather than failing.
	LogDensity(x []float64) float64
}

// Priored is implemented by manifolds that carry an explicit ambient
// prior (G-and-K, Lotka-Volterra). ABCPosterior uses it when available.
type Priored interface {
	LogPrior(x []float64) float64
}

// Ambient returns the ambient-space dimension n = d + m.
func Ambient(m Manifold) int { return m.Dim() + m.Codim() }

// CheckPoint validates that x has the ambient dimension of m.
// Returns ErrDimension otherwise; used by every sampler entry point.
func CheckPoint(m Manifold, x []float64) error {
	if len(x) != Ambient(m) {
		return ErrDimension
	}
	return nil
}

// OnManifold reports whether max_i |f_i(x)| ≤ tol.
// An evaluation failure counts as "not on the manifold".
func OnManifold(m Manifold, x []float64, tol float64) bool {
	q, err := m.Constraint(x)
	if err != nil {
		return false
	}
	nrm, err := linalg.Norm(q, math.Inf(1))
	if err != nil {
		return false
	}
	return nrm <= tol
}

// JacobianT returns the transpose of the Jacobian at x, the n×m matrix
// whose columns span the normal space. This is the Q argument of the
// Newton projection.
func JacobianT(m Manifold, x []float64) (*linalg.Dense, error) {
	j, err := m.Jacobian(x)
	if err != nil {
		return nil, err
	}
	return linalg.Transpose(j)
}

// HausdorffCorrection computes −½·logdet(J·Jᵀ) for a Jacobian J.
// Returns −Inf when the Gram matrix is singular or the product fails;
// LogDensity implementations lean on this for their correction term.
func HausdorffCorrection(j *linalg.Dense) float64 {
	gram, err := linalg.MulT(j, j)
	if err != nil {
		return math.Inf(-1)
	}
	ld, err := linalg.LogDet(gram)
	if err != nil {
		return math.Inf(-1)
	}
	return -ld / 2
}

// finiteOrDomainErr maps a non-finite evaluation to ErrDomain.
// The failure path runs on essentially every iteration in realistic
// problems, so it is a value, not a panic or log line.
func finiteOrDomainErr(v []float64) ([]float64, error) {
	if !linalg.AllFinite(v) {
		return nil, ErrDomain
	}
	return v, nil
}
