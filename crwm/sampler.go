// Package crwm: the sampler loop.

package crwm

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
)

// Counters accumulates evaluation counts over an entire run. Diagnostic
// only: acceptance logic never reads them.
type Counters struct {
	// Jacobian is the number of constraint-Jacobian evaluations.
	Jacobian int

	// Density is the number of target log-density evaluations.
	Density int
}

// Result is the output of a C-RWM run.
type Result struct {
	// Chain holds one ambient point per iteration (Samples × n), with
	// repeats on rejection; row i is the state after iteration i.
	Chain *linalg.Dense

	// Accepted holds one 0/1 flag per iteration, aligned with Chain:
	// Accepted[i] == 1 iff the proposal of iteration i was accepted.
	Accepted []int

	// Evals reports the accumulated evaluation counts.
	Evals Counters
}

// AcceptanceRate returns the fraction of accepted proposals.
func (r *Result) AcceptanceRate() float64 {
	if len(r.Accepted) == 0 {
		return 0
	}
	total := 0
	for _, a := range r.Accepted {
		total += a
	}
	return float64(total) / float64(len(r.Accepted))
}

// Sample runs the C-RWM chain from x0 for opts.Samples iterations.
//
// Per iteration, starting from the current (x, logη(x), Jx):
//
//	Stage 1: draw v = δ·N(0, Iₙ) with δ = T/Steps.
//	Stage 2: integrate the B-step reversibility-gated trajectory.
//	Stage 3: a failed trajectory rejects outright; otherwise accept when
//	         log u ≤ logη(y) − logη(x) − ½‖v_end‖² + ½‖v_start‖².
//	Stage 4: append the resulting state (new or repeated) to the chain.
//
// Any numeric failure inside a trajectory degrades to a rejection; only
// malformed arguments (wrong x0 length, bad options) error, and they do
// so before the first iteration.
func Sample(man manifold.Manifold, x0 []float64, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := manifold.CheckPoint(man, x0); err != nil {
		return nil, err
	}

	n := manifold.Ambient(man)
	delta := opts.T / float64(opts.Steps)
	projOpts := opts.projectionOptions()

	rnd := rand.New(rand.NewSource(opts.seedOrDefault()))
	nrm := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}

	chain, err := linalg.NewDense(opts.Samples, n)
	if err != nil {
		return nil, err
	}
	out := &Result{Chain: chain, Accepted: make([]int, opts.Samples)}

	// Current chain state: position, log-density, Jacobian.
	x := linalg.CloneVec(x0)
	jx, err := man.Jacobian(x)
	if err != nil {
		// The initial point must be evaluable; anything else is an
		// argument error, not a rejection.
		return nil, err
	}
	logEtaX := man.LogDensity(x)
	out.Evals.Jacobian++
	out.Evals.Density++

	v := make([]float64, n)
	for i := 0; i < opts.Samples; i++ {
		for k := range v {
			v[k] = delta * nrm.Rand()
		}

		end, ok, jacEvals, err := leapfrog(man, state{x: x, v: v, jac: jx}, opts.Steps, opts.RevTol, opts.NormOrd, projOpts)
		out.Evals.Jacobian += jacEvals
		if err != nil {
			return nil, err
		}

		accepted := false
		if ok {
			logEtaY := man.LogDensity(end.x)
			out.Evals.Density++
			logRatio := logEtaY - logEtaX -
				linalg.Dot(end.v, end.v)/2 + linalg.Dot(v, v)/2
			if math.Log(rnd.Float64()) <= logRatio {
				x, logEtaX, jx = end.x, logEtaY, end.jac
				accepted = true
			}
		}

		copy(chain.Row(i), x)
		if accepted {
			out.Accepted[i] = 1
		}
	}
	return out, nil
}
