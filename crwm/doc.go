// Package crwm implements the Constrained Random-Walk Metropolis sampler
// (C-RWM) with RATTLE integration.
//
// 🚀 How it works:
//
//	Each proposal draws an ambient Gaussian velocity scaled by δ = T/B
//	and integrates it for B constrained leapfrog (RATTLE) steps. A single
//	step projects the velocity onto the tangent space, takes the
//	unconstrained move, pulls the point back onto the manifold with a
//	Newton solve along the starting normal directions, and recomputes the
//	outgoing velocity in the new tangent space. Every forward step is
//	immediately re-integrated backwards; a trajectory survives only if
//	every step converges AND returns to within RevTol of its origin.
//	This reversibility gate roughly doubles per-step cost but makes the
//	integrator a measure-preserving self-inverse map, which the
//	Metropolis correction below relies on for detailed balance.
//
// ✨ Key properties:
//   - All-or-nothing trajectories: any projection failure, domain error
//     or reversibility violation discards the whole B-step trajectory
//     and rejects the proposal; the chain state is never corrupted.
//   - Exactly Samples rows in the output chain, one per iteration,
//     repeats included; Accepted[i] refers to the proposal that produced
//     row i.
//   - Jacobian/density evaluation counters accumulate over the run for
//     cost accounting; acceptance logic never reads them.
//   - Deterministic: the entire run is a function of (manifold, x0,
//     Options) including the seed; chains with different seeds are
//     independent and may run concurrently against one shared manifold.
//
// ⚙️ Usage:
//
//	circle, _ := manifold.NewSphere([]float64{0, 0}, 1)
//	opts := crwm.DefaultOptions()
//	opts.Samples = 1000
//	res, err := crwm.Sample(circle, []float64{1, 0}, opts)
//
// See example_test.go for a complete run on the unit circle.
package crwm
