// Package projection: solver configuration.

package projection

import (
	"errors"
	"math"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultTol is the convergence tolerance on the constraint norm,
	// matching the classical xtol of Powell-hybrid solvers.
	DefaultTol = 1.48e-8

	// DefaultMaxIter caps the Newton iteration count.
	DefaultMaxIter = 50

	// DefaultNormOrd selects the Euclidean norm for convergence checks.
	DefaultNormOrd = 2.0
)

var (
	// ErrBadOptions indicates a nonsensical solver configuration
	// (non-positive tolerance, iteration cap < 1, unsupported norm).
	ErrBadOptions = errors.New("projection: invalid solver options")

	// ErrBadMethod indicates an unknown projector Method value.
	ErrBadMethod = errors.New("projection: unknown projector method")

	// ErrGradientCodim indicates that MethodGradient was requested for a
	// Jacobian with more than one row.
	ErrGradientCodim = errors.New("projection: gradient projector requires codimension 1")
)

// Options configures the Newton projection solve.
//
// Fields:
//   - Tol     — convergence tolerance: iteration stops once the norm of
//     the constraint value drops below it.
//   - MaxIter — maximum number of Newton iterations before the solve is
//     declared non-convergent.
//   - NormOrd — norm order used for the convergence check; 2 or +Inf.
type Options struct {
	Tol     float64
	MaxIter int
	NormOrd float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Tol: DefaultTol, MaxIter: DefaultMaxIter, NormOrd: DefaultNormOrd}
}

// Validate checks the configuration; returns ErrBadOptions on violation.
func (o Options) Validate() error {
	if !(o.Tol > 0) || o.MaxIter < 1 {
		return ErrBadOptions
	}
	if o.NormOrd != 2 && !math.IsInf(o.NormOrd, 1) {
		return ErrBadOptions
	}
	return nil
}
