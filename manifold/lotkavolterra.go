// Package manifold: Lotka-Volterra SDE latent manifold.
//
// The simulator is an Euler-Maruyama discretization of the
// Lotka-Volterra SDE over Ns steps. The ambient point is u = (u1, u2)
// with u1 ∈ R⁴ the log-scale parameters (z = exp(u1 − 2)) and
// u2 ∈ R^{2·Ns} the standard-normal noise increments; the constraint
// compares the simulated trajectory with the observed one. Both prey and
// predator values interleave in the data vector: (r₁, f₁, r₂, f₂, ...).

package manifold

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
)

// lvParamDim is the number of Lotka-Volterra rate parameters.
const lvParamDim = 4

// lvLogShift is the location of the log-normal parameter prior:
// u1 = log(z) + 2, i.e. z = exp(u1 − 2).
const lvLogShift = 2.0

// LVConfig collects the simulator settings of the Lotka-Volterra problem.
// The zero value is not usable; DefaultLVConfig gives the reference setup.
type LVConfig struct {
	// Steps is the number of Euler-Maruyama steps Ns; the data has 2·Ns
	// coordinates.
	Steps int

	// StepSize is the discretization step of the forward simulator
	// (not a sampler step size).
	StepSize float64

	// SigmaR and SigmaF scale the noise on the prey and predator steps.
	SigmaR, SigmaF float64

	// R0 and F0 are the prey/predator populations at time zero.
	R0, F0 float64

	// ZTrue is the true rate parameter used to generate the data.
	ZTrue [4]float64

	// Seed drives the latent draws that generate the observed data.
	Seed uint64
}

// DefaultLVConfig returns the reference experiment configuration.
func DefaultLVConfig() LVConfig {
	return LVConfig{
		Steps:    50,
		StepSize: 1.0,
		SigmaR:   1.0,
		SigmaF:   1.0,
		R0:       100,
		F0:       100,
		ZTrue:    [4]float64{0.4, 0.005, 0.05, 0.001},
		Seed:     1111,
	}
}

// LVManifold is the data manifold of the Lotka-Volterra ABC problem:
// m = 2·Ns constraints over n = 4 + 2·Ns ambient coordinates.
type LVManifold struct {
	cfg   LVConfig
	ystar []float64
	uTrue []float64
}

// NewLVManifold generates the observed data from cfg (true parameter +
// seeded latent draws) and returns the manifold it identifies.
// Returns ErrDimension for Steps < 1 and ErrDomain for a non-positive
// step size or noise scale.
func NewLVManifold(cfg LVConfig) (*LVManifold, error) {
	if cfg.Steps < 1 {
		return nil, ErrDimension
	}
	if !(cfg.StepSize > 0) || !(cfg.SigmaR > 0) || !(cfg.SigmaF > 0) {
		return nil, ErrDomain
	}

	m := 2 * cfg.Steps
	lv := &LVManifold{cfg: cfg}

	// u1 on the unconstrained scale, u2 from the seeded source.
	uTrue := make([]float64, lvParamDim+m)
	for j := 0; j < lvParamDim; j++ {
		uTrue[j] = math.Log(cfg.ZTrue[j]) + lvLogShift
	}
	nrm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(cfg.Seed)}
	for j := 0; j < m; j++ {
		uTrue[lvParamDim+j] = nrm.Rand()
	}
	lv.uTrue = uTrue

	ystar, err := lv.simulate(uTrue)
	if err != nil {
		return nil, err
	}
	lv.ystar = ystar
	return lv, nil
}

// Dim returns 4, the rate-parameter dimension.
func (lv *LVManifold) Dim() int { return lvParamDim }

// Codim returns 2·Ns, the data dimension.
func (lv *LVManifold) Codim() int { return 2 * lv.cfg.Steps }

// StartPoint returns the generating ambient point u* = (u1*, u2*),
// which lies exactly on the manifold by construction. Chains start here
// instead of running a root-finding search.
func (lv *LVManifold) StartPoint() []float64 { return linalg.CloneVec(lv.uTrue) }

// Observed returns a copy of the observed trajectory y*.
func (lv *LVManifold) Observed() []float64 { return linalg.CloneVec(lv.ystar) }

// simulate runs the Euler-Maruyama forward map u ↦ x.
// u2 entries alternate prey/predator noise: u2[2s] drives r, u2[2s+1]
// drives f. The output interleaves (r₁, f₁, r₂, f₂, ...).
func (lv *LVManifold) simulate(u []float64) ([]float64, error) {
	cfg := lv.cfg
	z := lv.paramFromU1(u[:lvParamDim])
	u2 := u[lvParamDim:]

	r, f := cfg.R0, cfg.F0
	sq := math.Sqrt(cfg.StepSize)
	out := make([]float64, 2*cfg.Steps)
	for s := 0; s < cfg.Steps; s++ {
		rNext := r + cfg.StepSize*(z[0]*r-z[1]*r*f) + sq*cfg.SigmaR*u2[2*s]
		fNext := f + cfg.StepSize*(z[3]*r*f-z[2]*f) + sq*cfg.SigmaF*u2[2*s+1]
		r, f = rNext, fNext
		out[2*s] = r
		out[2*s+1] = f
	}
	return finiteOrDomainErr(out)
}

// paramFromU1 maps the unconstrained parameters to rates: z = exp(u1−2).
func (lv *LVManifold) paramFromU1(u1 []float64) []float64 {
	z := make([]float64, lvParamDim)
	for j := range z {
		z[j] = math.Exp(u1[j] - lvLogShift)
	}
	return z
}

// Constraint evaluates simulate(u) − y*.
func (lv *LVManifold) Constraint(x []float64) ([]float64, error) {
	if err := CheckPoint(lv, x); err != nil {
		return nil, err
	}
	sim, err := lv.simulate(x)
	if err != nil {
		return nil, err
	}
	for i := range sim {
		sim[i] -= lv.ystar[i]
	}
	return sim, nil
}

// Jacobian assembles J = J_f(g(u))·J_g(u) where g maps (u1, u2) to
// (z, u2) and J_f follows the Markovian recursion of the simulator:
// each row pair (2s, 2s+1) is built from the previous pair plus the
// direct dependence on z and the step-s noise coordinate.
func (lv *LVManifold) Jacobian(x []float64) (*linalg.Dense, error) {
	if err := CheckPoint(lv, x); err != nil {
		return nil, err
	}

	cfg := lv.cfg
	m, n := lv.Codim(), Ambient(lv)
	z := lv.paramFromU1(x[:lvParamDim])
	dt, sq := cfg.StepSize, math.Sqrt(cfg.StepSize)

	// Trajectory values r[s], f[s] with the initial condition prepended.
	sim, err := lv.simulate(x)
	if err != nil {
		return nil, err
	}
	r := make([]float64, cfg.Steps+1)
	f := make([]float64, cfg.Steps+1)
	r[0], f[0] = cfg.R0, cfg.F0
	for s := 0; s < cfg.Steps; s++ {
		r[s+1] = sim[2*s]
		f[s+1] = sim[2*s+1]
	}

	// J_f with respect to (z, u2): filled row by row via the recursion.
	jf, err := linalg.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	row0, row1 := jf.Row(0), jf.Row(1)
	row0[0], row0[1] = dt*r[0], -dt*r[0]*f[0]
	row0[lvParamDim] = sq * cfg.SigmaR
	row1[2], row1[3] = -dt*f[0], dt*r[0]*f[0]
	row1[lvParamDim+1] = sq * cfg.SigmaF

	for s := 1; s < cfg.Steps; s++ {
		prevR := jf.Row(2*s - 2)
		prevF := jf.Row(2*s - 1)
		curR := jf.Row(2 * s)
		curF := jf.Row(2*s + 1)
		for j := 0; j < n; j++ {
			curR[j] = prevR[j] + dt*(z[0]*prevR[j]-z[1]*(prevR[j]*f[s]+r[s]*prevF[j]))
			curF[j] = prevF[j] + dt*(z[3]*(prevR[j]*f[s]+r[s]*prevF[j])-z[2]*prevF[j])
		}
		// Direct dependence on the rates and the step-s noise.
		curR[0] += dt * r[s]
		curR[1] += -dt * r[s] * f[s]
		curF[2] += -dt * f[s]
		curF[3] += dt * r[s] * f[s]
		curR[lvParamDim+2*s] += sq * cfg.SigmaR
		curF[lvParamDim+2*s+1] += sq * cfg.SigmaF
	}

	// Chain rule through g: scale the four parameter columns by
	// dz/du1 = exp(u1−2); the u2 block is the identity.
	for i := 0; i < m; i++ {
		row := jf.Row(i)
		for j := 0; j < lvParamDim; j++ {
			row[j] *= z[j]
		}
		if !linalg.AllFinite(row) {
			return nil, ErrDomain
		}
	}
	return jf, nil
}

// LogPrior is the standard normal prior on the full ambient point.
func (lv *LVManifold) LogPrior(x []float64) float64 {
	return -linalg.Dot(x, x) / 2
}

// LogDensity is −‖u‖²/2 − ½·logdet(J·Jᵀ), −Inf on evaluation failure.
func (lv *LVManifold) LogDensity(x []float64) float64 {
	if len(x) != Ambient(lv) {
		return math.Inf(-1)
	}
	j, err := lv.Jacobian(x)
	if err != nil {
		return math.Inf(-1)
	}
	corr := HausdorffCorrection(j)
	if math.IsInf(corr, -1) {
		return math.Inf(-1)
	}
	return lv.LogPrior(x) + corr
}
