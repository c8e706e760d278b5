// Package thug: sampler configuration.

package thug

import (
	"errors"

	"github.com/MauroCE/ApproximateManifoldSampling/projection"
)

// Defaults - single source of truth for zero-value behavior.
const (
	// DefaultT is the total trajectory length per proposal.
	DefaultT = 1.0

	// DefaultSteps is the number of bounces per proposal (B).
	DefaultSteps = 10

	// DefaultSamples is the chain length (N).
	DefaultSamples = 1000

	// DefaultAlpha is the tangential squeeze; 0 disables squeezing.
	DefaultAlpha = 0.0

	// DefaultMethod is the projector policy used for reflections.
	DefaultMethod = projection.MethodQR

	// defaultSeed is the fixed seed used when callers pass Seed==0.
	// Arbitrary but stable so default runs are reproducible.
	defaultSeed uint64 = 1
)

// Errors returned before any iteration begins.
var (
	// ErrBadOptions indicates a nonsensical sampler configuration.
	ErrBadOptions = errors.New("thug: invalid sampler options")

	// ErrNilTarget indicates a nil log-density closure.
	ErrNilTarget = errors.New("thug: nil target log-density")
)

// Options configures a THUG run.
//
// Fields:
//   - T       — total trajectory length; the per-bounce step is δ = T/Steps.
//   - Steps   — bounces per proposal (B ≥ 1).
//   - Samples — number of chain iterations (N ≥ 1).
//   - Alpha   — squeeze parameter in [0,1). 0 leaves velocities untouched;
//     values near 1 pin proposals to the tangent space.
//   - Method  — projector policy for the reflections (projection.Method).
//   - Unsafe  — disables the pre-evaluation finiteness screen on trajectory
//     points. The screen is on by default: a point that escapes to NaN/Inf
//     mid-trajectory rejects the proposal before the Jacobian is evaluated.
//   - Seed    — random seed; 0 selects a fixed default. Chains run in
//     parallel must use distinct seeds (each run owns its source).
type Options struct {
	T       float64
	Steps   int
	Samples int
	Alpha   float64
	Method  projection.Method
	Unsafe  bool
	Seed    uint64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		T:       DefaultT,
		Steps:   DefaultSteps,
		Samples: DefaultSamples,
		Alpha:   DefaultAlpha,
		Method:  DefaultMethod,
	}
}

// Validate checks the configuration; returns ErrBadOptions on violation.
// These are hard argument errors raised before any iteration begins.
func (o Options) Validate() error {
	if !(o.T > 0) || o.Steps < 1 || o.Samples < 1 {
		return ErrBadOptions
	}
	if o.Alpha < 0 || o.Alpha >= 1 {
		return ErrBadOptions
	}
	if !o.Method.Valid() {
		return ErrBadOptions
	}
	return nil
}

// seedOrDefault applies the seed==0 policy.
func (o Options) seedOrDefault() uint64 {
	if o.Seed == 0 {
		return defaultSeed
	}
	return o.Seed
}
