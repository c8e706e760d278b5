// Package thug implements the Tangential Hug sampler (THUG) for
// filamentary distributions.
//
// 🚀 How it works:
//
//	THUG replaces the Newton projection of constrained samplers with
//	cheap linear reflections. Each proposal draws an ambient Gaussian
//	velocity, "squeezes" it towards the tangent space of the constraint
//	(v₀ = v − α·P(v)), then alternates half-position-steps with specular
//	reflections of the velocity off the local normal space
//	(v ← v − 2·P(v)). After B bounces the velocity is "unsqueezed" and
//	the proposal is accepted or rejected by a Metropolis test on the
//	ABC-smoothed target plus the Gaussian momentum density.
//
// ✨ Key properties:
//   - No nonlinear solve: every bounce costs one Jacobian evaluation and
//     one linear projection.
//   - Pluggable projector policy (projection.Method): QR, direct linear
//     solve, least squares, or the codimension-1 gradient closed form.
//     All equivalent in exact arithmetic; pick for stability or speed.
//   - α ∈ [0,1) controls the tangential squeeze; α = 0 reduces the
//     squeeze/unsqueeze to an exact no-op.
//   - Safety mode (default on) screens trajectory points before each
//     Jacobian evaluation so numeric escapes reject the proposal early
//     instead of surfacing later as domain errors.
//
// ⚙️ Usage:
//
//	gk, _ := manifold.NewGKManifold(ystar)
//	logpi := manifold.ABCPosterior(gk, 1e-3)
//	opts := thug.DefaultOptions()
//	opts.Alpha = 0.9
//	res, err := thug.Sample(gk, x0, logpi, opts)
package thug
