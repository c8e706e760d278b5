// Package linalg provides the dense linear-algebra kernels used by the
// manifold samplers: row-major matrix storage, matrix-vector products,
// LU solves with partial pivoting, reciprocal-condition estimates,
// economic Householder QR, least-squares solves, and vector helpers.
//
// ✨ Key features:
//   - Dense: flat row-major float64 storage, cache friendly.
//   - SolveVec: LU with partial pivoting; ErrSingular on zero pivot.
//   - RCond: reciprocal condition number in the 1-norm (singularity gate
//     for Newton-type projections).
//   - QREconomic / LstSqVec: Householder QR of tall matrices and the
//     least-squares solve built on it.
//   - Norm / Dot / AddScaled / Sub / Scale: small vector kernels with
//     2-norm and ∞-norm support.
//
// Design principles:
//   - Deterministic: fixed loop orders, no randomness, no global state.
//   - Strict sentinels: all user-triggered failures return errors from
//     errors.go, matched via errors.Is; no panics on user input.
//   - Operands are never mutated; every kernel allocates its result.
//
// Complexity is documented per function; nothing here exceeds O(n³).
package linalg
