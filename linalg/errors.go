// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// linalg package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions.

package linalg

import "errors"

var (
	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("linalg: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0),
	// or when a backing slice length does not match rows*cols.
	ErrBadShape = errors.New("linalg: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec where len(v) != a.Cols(), or Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSingular is returned when a zero (or numerically zero) pivot is
	// encountered during LU factorization or back-substitution.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrTallRequired signals that QREconomic/LstSqVec need rows >= cols.
	ErrTallRequired = errors.New("linalg: rows < cols for QR-based kernel")

	// ErrBadNorm indicates an unsupported vector norm order; only 2 and +Inf
	// are part of the package contract.
	ErrBadNorm = errors.New("linalg: unsupported norm order")
)
