// Package manifold: codimension-1 hypersphere.

package manifold

import (
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
)

// Sphere is the hypersphere {x : ‖x−c‖² = r²} in len(c)-dimensional
// ambient space; codimension 1, manifold dimension len(c)−1.
// NewSphere(center=(0,0), radius=1) is the unit circle used by the tests.
type Sphere struct {
	center []float64
	radius float64
}

// NewSphere builds a hypersphere with the given center and radius.
// Returns ErrDimension for an ambient dimension < 2 and ErrDomain for a
// non-positive or non-finite radius.
func NewSphere(center []float64, radius float64) (*Sphere, error) {
	if len(center) < 2 {
		return nil, ErrDimension
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, ErrDomain
	}
	return &Sphere{center: linalg.CloneVec(center), radius: radius}, nil
}

// Dim returns the manifold dimension, one less than the ambient space.
func (s *Sphere) Dim() int { return len(s.center) - 1 }

// Codim returns 1: a single scalar constraint.
func (s *Sphere) Codim() int { return 1 }

// Constraint evaluates ‖x−c‖² − r² as a length-1 vector.
func (s *Sphere) Constraint(x []float64) ([]float64, error) {
	if err := CheckPoint(s, x); err != nil {
		return nil, err
	}
	var sum float64
	for i := range x {
		d := x[i] - s.center[i]
		sum += d * d
	}
	return finiteOrDomainErr([]float64{sum - s.radius*s.radius})
}

// Jacobian returns the 1×n gradient row 2(x−c).
func (s *Sphere) Jacobian(x []float64) (*linalg.Dense, error) {
	if err := CheckPoint(s, x); err != nil {
		return nil, err
	}
	row := make([]float64, len(x))
	for i := range x {
		row[i] = 2 * (x[i] - s.center[i])
	}
	if !linalg.AllFinite(row) {
		return nil, ErrDomain
	}
	return linalg.FromSlice(1, len(x), row)
}

// LogDensity is the uniform density on the sphere with respect to the
// Hausdorff measure: only the correction term −½·logdet(J·Jᵀ), which is
// constant (‖∇f‖ = 2r) for points exactly on the sphere.
func (s *Sphere) LogDensity(x []float64) float64 {
	j, err := s.Jacobian(x)
	if err != nil {
		return math.Inf(-1)
	}
	return HausdorffCorrection(j)
}
