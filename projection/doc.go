// Package projection implements the two projection primitives of the
// constrained samplers:
//
//  1. Newton: an iterative Newton solve that pulls an ambient point
//     displaced off the manifold back onto it, searching only along a
//     fixed set of normal directions Q (the Jacobian transpose of the
//     originating point). This is NOT a general nonlinear solver - the
//     search directions never change, only the coefficients along them.
//  2. Project: linear projection of a velocity onto the row space of a
//     Jacobian, with four interchangeable policies (QR, direct linear
//     solve, least squares, closed-form gradient for codimension 1).
//     All four compute the same subspace projection; the choice affects
//     numerical stability and cost, never semantics.
//
// Failure philosophy: a projection that cannot converge (domain error in
// the constraint, singular Gram matrix, iteration cap) is an ordinary
// outcome reported through Result.Converged, because the calling sampler
// turns it into a proposal rejection. Errors are reserved for malformed
// arguments (nil manifold, wrong shapes, nonsensical options).
package projection
