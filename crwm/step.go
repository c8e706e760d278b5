// Package crwm: single RATTLE step and the B-step trajectory.

package crwm

import (
	"errors"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
	"github.com/MauroCE/ApproximateManifoldSampling/projection"
)

// state bundles the trajectory tuple threaded through integrator steps.
// jac is always the Jacobian evaluated at x; it is recomputed after
// every position change, never mutated in place.
type state struct {
	x, v []float64
	jac  *linalg.Dense
}

// stepResult reports one RATTLE step: the (possibly unchanged) state,
// whether the step converged, and the Jacobian evaluations consumed.
type stepResult struct {
	state
	ok       bool
	jacEvals int
}

// degradable reports whether err is one of the numeric failures that
// turn into a step failure instead of aborting the run: domain errors
// from the manifold and singular linear systems.
func degradable(err error) bool {
	return errors.Is(err, manifold.ErrDomain) || errors.Is(err, linalg.ErrSingular)
}

// rattleStep advances (x, v) by one constrained leapfrog step.
//
// Stage 1: project v onto the tangent space at x (row space of jac
// removed via the direct linear solve).
// Stage 2: take the unconstrained move x + v_tangent.
// Stage 3: Newton-project back onto the manifold along Q = jacᵀ.
// Stage 4: recompute the Jacobian at the landing point y.
// Stage 5: the outgoing velocity is the tangent projection of y − x at y.
//
// On any degradable failure the ORIGINAL state is returned with ok=false;
// the Jacobian-evaluation count is reported either way. A non-nil error
// means a programming/argument fault, never a numeric one.
func rattleStep(man manifold.Manifold, cur state, opts projection.Options) (stepResult, error) {
	fail := stepResult{state: cur, ok: false}

	vTan, err := projection.TangentProject(cur.v, cur.jac)
	if err != nil {
		if degradable(err) {
			return fail, nil
		}
		return fail, err
	}

	xUnc := linalg.Add(cur.x, vTan)

	q, err := linalg.Transpose(cur.jac)
	if err != nil {
		return fail, err
	}
	res, err := projection.Newton(man, xUnc, q, opts)
	fail.jacEvals = res.JacobianEvals
	if err != nil {
		return fail, err
	}
	if !res.Converged {
		return fail, nil
	}

	qa, err := linalg.MatVec(q, res.Coeffs)
	if err != nil {
		return fail, err
	}
	y := linalg.Sub(xUnc, qa)

	jy, err := man.Jacobian(y)
	fail.jacEvals++
	if err != nil {
		if degradable(err) {
			return fail, nil
		}
		return fail, err
	}

	vOut, err := projection.TangentProject(linalg.Sub(y, cur.x), jy)
	if err != nil {
		if degradable(err) {
			return fail, nil
		}
		return fail, err
	}

	return stepResult{
		state:    state{x: y, v: vOut, jac: jy},
		ok:       true,
		jacEvals: fail.jacEvals,
	}, nil
}

// leapfrog integrates B RATTLE steps with the reversibility gate.
//
// Every forward step is immediately re-run backwards from (xf, −vf); the
// step is kept only when both sub-steps converge and the backward landing
// point returns within revTol of the pre-step position. Any violation
// aborts the WHOLE trajectory: all progress is discarded and the original
// state comes back with ok=false. Trajectories are all-or-nothing so a
// partially integrated state can never leak into the chain.
func leapfrog(man manifold.Manifold, start state, steps int, revTol, normOrd float64, opts projection.Options) (state, bool, int, error) {
	cur := start
	jacEvals := 0
	for b := 0; b < steps; b++ {
		fw, err := rattleStep(man, cur, opts)
		jacEvals += fw.jacEvals
		if err != nil {
			return start, false, jacEvals, err
		}

		bw, err := rattleStep(man, state{x: fw.x, v: linalg.Scale(-1, fw.v), jac: fw.jac}, opts)
		jacEvals += bw.jacEvals
		if err != nil {
			return start, false, jacEvals, err
		}

		if !fw.ok || !bw.ok {
			return start, false, jacEvals, nil
		}
		dist, err := linalg.Norm(linalg.Sub(bw.x, cur.x), normOrd)
		if err != nil {
			return start, false, jacEvals, err
		}
		if dist >= revTol {
			return start, false, jacEvals, nil
		}

		cur = fw.state
	}
	return cur, true, jacEvals, nil
}
