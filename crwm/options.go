// Package crwm: sampler configuration.

package crwm

import (
	"errors"
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/projection"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultT is the total integration horizon per proposal.
	DefaultT = 1.0

	// DefaultSteps is the number of RATTLE steps per proposal (B).
	DefaultSteps = 1

	// DefaultSamples is the chain length (N).
	DefaultSamples = 1000

	// DefaultTol is the Newton projection tolerance.
	DefaultTol = 1e-10

	// DefaultRevTol is the reversibility tolerance: the forward-backward
	// round trip must return within this distance of the starting point.
	DefaultRevTol = 1e-8

	// DefaultMaxIter caps the Newton iterations per projection.
	DefaultMaxIter = 50

	// DefaultNormOrd selects the Euclidean norm for all checks.
	DefaultNormOrd = 2.0

	// defaultSeed is the fixed seed used when callers pass Seed==0.
	// Arbitrary but stable so default runs are reproducible.
	defaultSeed uint64 = 1
)

// ErrBadOptions indicates a nonsensical sampler configuration.
var ErrBadOptions = errors.New("crwm: invalid sampler options")

// Options configures a C-RWM run.
//
// Fields:
//   - T       — total integration horizon; the per-step size is δ = T/Steps.
//   - Steps   — RATTLE steps per proposal (B ≥ 1).
//   - Samples — number of chain iterations (N ≥ 1).
//   - Tol     — Newton projection tolerance.
//   - RevTol  — reversibility tolerance of the backward check.
//   - MaxIter — Newton iteration cap.
//   - NormOrd — norm order for convergence and reversibility checks; 2 or +Inf.
//   - Seed    — random seed; 0 selects a fixed default. Chains run in
//     parallel must use distinct seeds (each run owns its source).
type Options struct {
	T       float64
	Steps   int
	Samples int
	Tol     float64
	RevTol  float64
	MaxIter int
	NormOrd float64
	Seed    uint64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		T:       DefaultT,
		Steps:   DefaultSteps,
		Samples: DefaultSamples,
		Tol:     DefaultTol,
		RevTol:  DefaultRevTol,
		MaxIter: DefaultMaxIter,
		NormOrd: DefaultNormOrd,
	}
}

// Validate checks the configuration; returns ErrBadOptions on violation.
// These are hard argument errors raised before any iteration begins.
func (o Options) Validate() error {
	if !(o.T > 0) || o.Steps < 1 || o.Samples < 1 {
		return ErrBadOptions
	}
	if !(o.Tol > 0) || !(o.RevTol > 0) || o.MaxIter < 1 {
		return ErrBadOptions
	}
	if o.NormOrd != 2 && !math.IsInf(o.NormOrd, 1) {
		return ErrBadOptions
	}
	return nil
}

// projectionOptions maps the sampler settings onto the Newton solver.
func (o Options) projectionOptions() projection.Options {
	return projection.Options{Tol: o.Tol, MaxIter: o.MaxIter, NormOrd: o.NormOrd}
}

// seedOrDefault applies the seed==0 policy.
func (o Options) seedOrDefault() uint64 {
	if o.Seed == 0 {
		return defaultSeed
	}
	return o.Seed
}
