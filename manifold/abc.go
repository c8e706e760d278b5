// Package manifold: ABC kernel smoothing.
// The Tangential Hug sampler targets a filamentary distribution: the
// exact manifold posterior smoothed by a Gaussian kernel of bandwidth ε
// applied to the constraint value. These helpers build that target.

package manifold

import (
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
)

// LogNormalKernel evaluates the log Gaussian kernel of bandwidth eps at
// the constraint value: −‖f(x)‖²/(2ε²) − m·log(ε) − (m/2)·log(2π).
// Returns −Inf when the constraint evaluation fails.
func LogNormalKernel(m Manifold, x []float64, eps float64) float64 {
	q, err := m.Constraint(x)
	if err != nil {
		return math.Inf(-1)
	}
	mm := float64(len(q))
	return -linalg.Dot(q, q)/(2*eps*eps) - mm*math.Log(eps) - mm*math.Log(2*math.Pi)/2
}

// ABCPosterior returns the log ABC posterior with bandwidth eps:
// prior plus kernel. Manifolds implementing Priored contribute their own
// prior; otherwise a standard normal ambient prior −‖x‖²/2 is used.
// The returned closure is safe for concurrent use (read-only capture).
func ABCPosterior(m Manifold, eps float64) func(x []float64) float64 {
	prior := func(x []float64) float64 { return -linalg.Dot(x, x) / 2 }
	if p, ok := m.(Priored); ok {
		prior = p.LogPrior
	}
	return func(x []float64) float64 {
		return prior(x) + LogNormalKernel(m, x, eps)
	}
}
