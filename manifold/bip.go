// Package manifold: toy Bayesian inverse problem.

package manifold

import (
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
)

// BIP is the lifted manifold of a 3-D toy Bayesian inverse problem.
// The forward map F(θ) = θ₁² + 3θ₀²(θ₀²−1) is observed with additive
// noise of scale sigma applied to the third ambient coordinate, so the
// constraint reads F(θ₀, θ₁) + sigma·θ₂ − y*.
// One constraint in a 3-D ambient space: d=2, m=1.
type BIP struct {
	sigma float64
	ystar float64
}

// NewBIP builds the toy inverse-problem manifold. sigma is the scalar
// noise scale multiplying the last ambient coordinate; ystar the
// observed datum. A non-positive sigma is rejected with ErrDomain.
func NewBIP(sigma, ystar float64) (*BIP, error) {
	if !(sigma > 0) {
		return nil, ErrDomain
	}
	return &BIP{sigma: sigma, ystar: ystar}, nil
}

// Dim returns 2.
func (b *BIP) Dim() int { return 2 }

// Codim returns 1.
func (b *BIP) Codim() int { return 1 }

// Constraint evaluates θ₁² + 3θ₀²(θ₀²−1) + σ·θ₂ − y*.
func (b *BIP) Constraint(x []float64) ([]float64, error) {
	if err := CheckPoint(b, x); err != nil {
		return nil, err
	}
	v := x[1]*x[1] + 3*x[0]*x[0]*(x[0]*x[0]-1) + b.sigma*x[2] - b.ystar
	return finiteOrDomainErr([]float64{v})
}

// Jacobian returns the 1×3 gradient row [12θ₀³−6θ₀, 2θ₁, σ].
func (b *BIP) Jacobian(x []float64) (*linalg.Dense, error) {
	if err := CheckPoint(b, x); err != nil {
		return nil, err
	}
	row := []float64{12*x[0]*x[0]*x[0] - 6*x[0], 2 * x[1], b.sigma}
	if !linalg.AllFinite(row) {
		return nil, ErrDomain
	}
	return linalg.FromSlice(1, 3, row)
}

// LogDensity is the posterior on the lifted manifold: standard normal
// prior on all three coordinates plus the smoothed correction
// −½·log(‖∇F‖² + σ²).
func (b *BIP) LogDensity(x []float64) float64 {
	j, err := b.Jacobian(x)
	if err != nil {
		return math.Inf(-1)
	}
	row := j.Row(0)
	gramPlus := linalg.Dot(row, row) + b.sigma*b.sigma
	return -(x[0]*x[0]+x[1]*x[1])/2 - x[2]*x[2]/2 - math.Log(gramPlus)/2
}
