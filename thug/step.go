// Package thug: the bounce trajectory.

package thug

import (
	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
	"github.com/MauroCE/ApproximateManifoldSampling/projection"
)

// bounce integrates B reflection steps from (x0, v0):
//
//	Stage 1: half position step   x ← x + (δ/2)·v
//	Stage 2: specular reflection  v ← v − 2·P(v, J(x))
//	Stage 3: half position step   x ← x + (δ/2)·v
//
// Returns the final point and velocity, ok=false when any Jacobian or
// projection evaluation fails (the proposal is then rejected by the
// caller), and the number of Jacobian evaluations consumed. With the
// finiteness screen enabled, a trajectory that escapes to NaN/Inf is
// aborted before the Jacobian sees it.
//
// Complexity: O(B·(cost(J) + n·m²)) for codimension m in ambient
// dimension n.
func bounce(man manifold.Manifold, x0, v0 []float64, delta float64, steps int, method projection.Method, screen bool) (x, v []float64, ok bool, jacEvals int) {
	x = linalg.CloneVec(x0)
	v = linalg.CloneVec(v0)
	half := delta / 2

	for s := 0; s < steps; s++ {
		for k := range x {
			x[k] += half * v[k]
		}
		if screen && !linalg.AllFinite(x) {
			return x, v, false, jacEvals
		}
		jac, err := man.Jacobian(x)
		if err != nil {
			return x, v, false, jacEvals
		}
		jacEvals++
		normal, err := projection.Project(v, jac, method)
		if err != nil {
			return x, v, false, jacEvals
		}
		for k := range v {
			v[k] -= 2 * normal[k]
			x[k] += half * v[k]
		}
	}
	return x, v, true, jacEvals
}
