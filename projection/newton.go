// Package projection: Newton projection onto the manifold.

package projection

import (
	"errors"
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
)

// machEps is the float64 machine epsilon used as the singularity gate on
// the Gram matrix: rcond below it means "numerically singular, fail".
var machEps = math.Nextafter(1, 2) - 1

// Result reports the outcome of a Newton projection.
//
// Coeffs are the coefficients a along the columns of Q such that
// z − Q·a lies on the manifold when Converged is true. JacobianEvals is
// the number of Jacobian evaluations consumed, counted on failure too so
// callers can account for cost.
type Result struct {
	Coeffs        []float64
	Converged     bool
	JacobianEvals int
}

// Newton finds coefficients a with ‖f(z − Q·a)‖ < opts.Tol, searching
// only along the columns of Q (the normal directions of the originating
// point). Algorithm, starting from a = 0:
//
//	Stage 1: evaluate f at the trial point; a domain error fails
//	         immediately with zero iterations.
//	Stage 2: while the constraint norm exceeds Tol:
//	         recompute the Jacobian at the trial point, form the Gram
//	         matrix G = J·Q, fail when rcond(G) < machine epsilon,
//	         otherwise solve G·Δa = f(trial) and update a. Fail when the
//	         iteration count exceeds MaxIter or a re-evaluation leaves
//	         the numeric domain.
//
// Degradable failures (domain, singular, non-convergence) come back as
// Converged=false with zeroed coefficients and a nil error; only
// malformed arguments produce a non-nil error.
//
// Complexity per iteration: one Jacobian evaluation plus O(n·m²) for the
// Gram product and O(m³) for the solve.
func Newton(man manifold.Manifold, z []float64, q *linalg.Dense, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	if man == nil || q == nil {
		return Result{}, linalg.ErrNilMatrix
	}
	n := manifold.Ambient(man)
	m := man.Codim()
	if len(z) != n || q.Rows() != n || q.Cols() != m {
		return Result{}, manifold.ErrDimension
	}

	a := make([]float64, m)
	res := Result{Coeffs: a}

	val, err := constraintAtTrial(man, z, q, a)
	if err != nil {
		if errors.Is(err, manifold.ErrDomain) {
			return res, nil // immediate rejection, zero iterations
		}
		return Result{}, err
	}

	iters := 0
	for {
		nrm, err := linalg.Norm(val, opts.NormOrd)
		if err != nil {
			return Result{}, err
		}
		if nrm < opts.Tol {
			res.Converged = true
			return res, nil
		}

		jac, err := man.Jacobian(trialPoint(z, q, a))
		res.JacobianEvals++
		if err != nil {
			if errors.Is(err, manifold.ErrDomain) {
				return failed(res, m), nil
			}
			return Result{}, err
		}

		gram, err := linalg.Mul(jac, q)
		if err != nil {
			return Result{}, err
		}
		rcond, err := linalg.RCond(gram)
		if err != nil {
			return Result{}, err
		}
		if rcond < machEps {
			return failed(res, m), nil
		}

		delta, err := linalg.SolveVec(gram, val)
		if err != nil {
			// RCond passed but the factorization still hit a zero pivot;
			// treat exactly like the singular gate.
			if errors.Is(err, linalg.ErrSingular) {
				return failed(res, m), nil
			}
			return Result{}, err
		}
		for i := range a {
			a[i] += delta[i]
		}
		iters++
		if iters > opts.MaxIter {
			return failed(res, m), nil
		}

		val, err = constraintAtTrial(man, z, q, a)
		if err != nil {
			if errors.Is(err, manifold.ErrDomain) {
				return failed(res, m), nil
			}
			return Result{}, err
		}
	}
}

// trialPoint computes z − Q·a.
func trialPoint(z []float64, q *linalg.Dense, a []float64) []float64 {
	qa, _ := linalg.MatVec(q, a) // shapes validated by Newton
	return linalg.Sub(z, qa)
}

// constraintAtTrial evaluates the constraint at z − Q·a.
func constraintAtTrial(man manifold.Manifold, z []float64, q *linalg.Dense, a []float64) ([]float64, error) {
	return man.Constraint(trialPoint(z, q, a))
}

// failed zeroes the coefficients and clears the convergence flag,
// mirroring the reference behavior of discarding partial progress.
func failed(res Result, m int) Result {
	res.Coeffs = make([]float64, m)
	res.Converged = false
	return res
}
