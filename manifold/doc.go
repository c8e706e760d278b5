// Package manifold defines the capability contract consumed by the
// constrained samplers, plus the concrete problem manifolds.
//
// 🚀 What is a manifold here?
//
//	An implicitly-defined surface: given a smooth constraint function
//	f: Rⁿ → Rᵐ with n > m, the manifold is the zero-level set of f.
//	There is nothing special about the value 0 - for a level set
//	{x : g(x) = y} simply define f(x) = g(x) − y. Posteriors of exactly
//	constrained (deterministic-simulator) inference problems concentrate
//	on such sets, which is what makes these samplers necessary.
//
// ✨ Contract (consumed by the crwm and thug packages):
//   - Dim / Codim: manifold dimension d and number of constraints m;
//     the ambient dimension is n = d + m.
//   - Constraint: evaluates f at an ambient point; numeric overflow is
//     reported as ErrDomain, never as a silent NaN.
//   - Jacobian: the m×n matrix of constraint gradients; same failure
//     contract as Constraint.
//   - LogDensity: log target density on the manifold including the
//     Hausdorff-measure correction −½·logdet(J·Jᵀ); returns −Inf
//     instead of failing when the correction is undefined.
//
// Concrete implementations:
//   - Sphere: codimension-1 hypersphere; the 2-D case is the unit
//     circle used throughout the test suite.
//   - GeneralizedEllipse: a level set of a multivariate normal density.
//   - BIP: a 3-D toy Bayesian inverse problem.
//   - GKManifold: the G-and-K quantile-distribution inference problem.
//   - LVManifold: the latent manifold of a Lotka-Volterra SDE simulator
//     discretized with Euler-Maruyama.
//
// Instances are logically immutable after construction and safe for
// concurrent read-only evaluation, so independent chains may share one
// manifold value.
package manifold
