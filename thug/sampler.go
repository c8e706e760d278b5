// Package thug: the sampler loop.

package thug

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
	"github.com/MauroCE/ApproximateManifoldSampling/projection"
)

// Counters accumulates evaluation counts over an entire run. Diagnostic
// only: acceptance logic never reads them.
type Counters struct {
	// Jacobian is the number of constraint-Jacobian evaluations.
	Jacobian int

	// Density is the number of target log-density evaluations.
	Density int
}

// Result is the output of a THUG run.
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

// Sample runs the THUG chain from x0 for opts.Samples iterations,
// targeting the log-density logPi (typically manifold.ABCPosterior).
//
// Per iteration, starting from the current (x, logπ(x)):
//
//	Stage 1: draw v₀ = N(0, Iₙ) and squeeze: v ← v₀ − α·P(v₀, J(x)).
//	Stage 2: integrate B bounces of length δ = T/Steps.
//	Stage 3: unsqueeze at the endpoint: v ← v + α/(1−α)·P(v, J(y)).
//	Stage 4: accept when log u ≤ logπ(y) − logπ(x) − ½‖v‖² + ½‖v₀‖²,
//	         then append the resulting state (new or repeated).
//
// The squeeze and unsqueeze are exact no-ops when α = 0 and cost no
// Jacobian evaluations. Any numeric failure inside a proposal degrades
// to a rejection; only malformed arguments (wrong x0 length, nil logPi,
// bad options) error, and they do so before the first iteration.
func Sample(man manifold.Manifold, x0 []float64, logPi func([]float64) float64, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logPi == nil {
		return nil, ErrNilTarget
	}
	if err := manifold.CheckPoint(man, x0); err != nil {
		return nil, err
	}

	n := manifold.Ambient(man)
	delta := opts.T / float64(opts.Steps)
	squeeze := opts.Alpha > 0
	screen := !opts.Unsafe

	rnd := rand.New(rand.NewSource(opts.seedOrDefault()))
	nrm := distuv.Normal{Mu: 0, Sigma: 1, Src: rnd}

	chain, err := linalg.NewDense(opts.Samples, n)
	if err != nil {
		return nil, err
	}
	out := &Result{Chain: chain, Accepted: make([]int, opts.Samples)}

	// Current chain state. The Jacobian is carried only when squeezing;
	// on acceptance it is refreshed from the unsqueeze evaluation.
	x := linalg.CloneVec(x0)
	logPiX := logPi(x)
	out.Evals.Density++
	var jx *linalg.Dense
	if squeeze {
		jx, err = man.Jacobian(x)
		if err != nil {
			// The initial point must be evaluable; anything else is
			// an argument error, not a rejection.
			return nil, err
		}
		out.Evals.Jacobian++
	}

	v0 := make([]float64, n)
	for i := 0; i < opts.Samples; i++ {
		for k := range v0 {
			v0[k] = nrm.Rand()
		}

		v := v0
		ok := true
		if squeeze {
			v, ok = squeezeVelocity(v0, jx, opts.Alpha, opts.Method)
		}

		var y, vEnd []float64
		var jy *linalg.Dense
		if ok {
			var jacEvals int
			y, vEnd, ok, jacEvals = bounce(man, x, v, delta, opts.Steps, opts.Method, screen)
			out.Evals.Jacobian += jacEvals
			if ok && squeeze {
				jy, vEnd, ok = unsqueezeVelocity(man, y, vEnd, opts.Alpha, opts.Method, screen)
				if jy != nil {
					out.Evals.Jacobian++
				}
			}
		}

		accepted := false
		if ok {
			logPiY := logPi(y)
			out.Evals.Density++
			logRatio := logPiY - logPiX -
				linalg.Dot(vEnd, vEnd)/2 + linalg.Dot(v0, v0)/2
			if math.Log(rnd.Float64()) <= logRatio {
				x, logPiX = y, logPiY
				if squeeze {
					jx = jy
				}
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

// squeezeVelocity shrinks the normal component: v₀ − α·P(v₀, jac).
func squeezeVelocity(v0 []float64, jac *linalg.Dense, alpha float64, method projection.Method) ([]float64, bool) {
	normal, err := projection.Project(v0, jac, method)
	if err != nil {
		return nil, false
	}
	return linalg.AddScaled(v0, -alpha, normal), true
}

// unsqueezeVelocity restores the normal component at the trajectory
// endpoint: v + α/(1−α)·P(v, J(y)). Returns the endpoint Jacobian so an
// accepted proposal can reuse it for the next squeeze.
func unsqueezeVelocity(man manifold.Manifold, y, v []float64, alpha float64, method projection.Method, screen bool) (*linalg.Dense, []float64, bool) {
	if screen && !linalg.AllFinite(y) {
		return nil, v, false
	}
	jac, err := man.Jacobian(y)
	if err != nil {
		return nil, v, false
	}
	normal, err := projection.Project(v, jac, method)
	if err != nil {
		return jac, v, false
	}
	return jac, linalg.AddScaled(v, alpha/(1-alpha), normal), true
}
