// Package manifold: G-and-K quantile-distribution inference problem.
//
// The G-and-K distribution is defined through its quantile function; its
// simulator is deterministic given the parameter θ and the latent normal
// draws z, which makes the posterior concentrate on the data manifold
// {(θ, z) : f(θ, z) = y*}. The parameter is reparametrized from its
// U(0,10) prior scale to an unconstrained N(0,1) scale via θ ↦ 10·Φ(θ),
// so the Jacobian carries the extra chain-rule block 10·diag(φ(θ)).

package manifold

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
)

// gkParamDim is the number of G-and-K parameters (a, b, g, k).
const gkParamDim = 4

// stdNormal is the shared unit normal used for the CDF/quantile/pdf of
// the reparametrization. Stateless (no Src), safe for concurrent use.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// GKManifold is the data manifold of the G-and-K problem: m = len(y*)
// constraints over the n = 4+m ambient coordinates ξ = (θ, z) with
// θ ∈ R⁴ on the N(0,1) scale and z the latent simulator draws.
type GKManifold struct {
	ystar []float64
}

// NewGKManifold builds the manifold identified by the observed data.
// Returns ErrDimension for empty data.
func NewGKManifold(ystar []float64) (*GKManifold, error) {
	if len(ystar) == 0 {
		return nil, ErrDimension
	}
	return &GKManifold{ystar: linalg.CloneVec(ystar)}, nil
}

// Dim returns 4, the parameter dimension.
func (g *GKManifold) Dim() int { return gkParamDim }

// Codim returns len(y*), the data dimension.
func (g *GKManifold) Codim() int { return len(g.ystar) }

// toUniformScale maps the first four coordinates from N(0,1) scale to
// the U(0,10) parameter scale via 10·Φ(·).
func toUniformScale(theta []float64) []float64 {
	out := make([]float64, len(theta))
	for i, t := range theta {
		out[i] = 10 * stdNormal.CDF(t)
	}
	return out
}

// gkForward evaluates the G-and-K quantile simulator for parameters on
// the U(0,10) scale and latent draws z.
func gkForward(theta []float64, z []float64) []float64 {
	a, b, g, k := theta[0], theta[1], theta[2], theta[3]
	out := make([]float64, len(z))
	for i, zi := range z {
		e := math.Exp(-g * zi)
		out[i] = a + b*(1+0.8*(1-e)/(1+e))*math.Pow(1+zi*zi, k)*zi
	}
	return out
}

// Constraint evaluates f(10·Φ(ξ[:4]), ξ[4:]) − y*.
func (g *GKManifold) Constraint(x []float64) ([]float64, error) {
	if err := CheckPoint(g, x); err != nil {
		return nil, err
	}
	sim := gkForward(toUniformScale(x[:gkParamDim]), x[gkParamDim:])
	for i := range sim {
		sim[i] -= g.ystar[i]
	}
	return finiteOrDomainErr(sim)
}

// Jacobian returns the m×n Jacobian of the reparametrized constraint,
// assembled by the chain rule: the four parameter columns of ∂f/∂θ are
// scaled by 10·φ(ξ_j), and the latent block is diagonal because each
// data coordinate depends on exactly one z_i.
// Non-finite entries (overflow for large g·z) yield ErrDomain.
func (g *GKManifold) Jacobian(x []float64) (*linalg.Dense, error) {
	if err := CheckPoint(g, x); err != nil {
		return nil, err
	}

	theta := toUniformScale(x[:gkParamDim])
	b, gg, k := theta[1], theta[2], theta[3]
	z := x[gkParamDim:]
	m, n := g.Codim(), Ambient(g)

	// Chain-rule scale for the parameter columns: d(10Φ)/dξ = 10·φ(ξ).
	repar := make([]float64, gkParamDim)
	for j := 0; j < gkParamDim; j++ {
		repar[j] = 10 * stdNormal.Prob(x[j])
	}

	jac, err := linalg.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	for i, zi := range z {
		e := math.Exp(gg * zi)
		em := math.Exp(-gg * zi)
		pw := math.Pow(1+zi*zi, k)
		onePlusE := 1 + e

		row := jac.Row(i)
		// ∂f/∂a, ∂f/∂b, ∂f/∂g, ∂f/∂k on the uniform scale.
		row[0] = repar[0]
		row[1] = (1 + 0.8*(1-em)/(1+em)) * pw * zi * repar[1]
		row[2] = 8 * b * zi * zi * pw * e / (5 * onePlusE * onePlusE) * repar[2]
		row[3] = b * zi * pw * (1 + 9*e) * math.Log(1+zi*zi) / (5 * onePlusE) * repar[3]
		// ∂f_i/∂z_i: the only non-zero latent entry of this row.
		row[gkParamDim+i] = b * math.Pow(1+zi*zi, k-1) *
			(((18*k+9)*zi*zi+9)*e*e +
				(8*gg*zi*zi*zi+(20*k+10)*zi*zi+8*gg*zi+10)*e +
				(2*k+1)*zi*zi + 1) / (5 * onePlusE * onePlusE)
		if !linalg.AllFinite(row) {
			return nil, ErrDomain
		}
	}
	return jac, nil
}

// LogPrior is the reparametrized prior: U(0,10) on each parameter pulled
// back to the N(0,1) scale (a constant −log 10 plus the normal log-pdf),
// plus a standard normal prior on the latent draws.
func (g *GKManifold) LogPrior(x []float64) float64 {
	lp := 0.0
	for j := 0; j < gkParamDim; j++ {
		lp += -math.Log(10) + stdNormal.LogProb(x[j])
	}
	z := x[gkParamDim:]
	return lp - linalg.Dot(z, z)/2
}

// LogDensity is the posterior on the manifold: LogPrior plus the
// Hausdorff correction −½·logdet(J·Jᵀ), −Inf on any evaluation failure.
func (g *GKManifold) LogDensity(x []float64) float64 {
	if len(x) != Ambient(g) {
		return math.Inf(-1)
	}
	j, err := g.Jacobian(x)
	if err != nil {
		return math.Inf(-1)
	}
	corr := HausdorffCorrection(j)
	if math.IsInf(corr, -1) {
		return math.Inf(-1)
	}
	return g.LogPrior(x) + corr
}

// GenerateGKData runs the simulator once: it draws m latent normals with
// the given seed, evaluates the quantile function at theta (U(0,10)
// scale) and returns both the observed data y* and the ambient point
// ξ₀ = (Φ⁻¹(θ/10), z), which lies exactly on the resulting manifold.
// This replaces the reference implementation's root-finding start-point
// search: the generating latents are a manifold point by construction.
func GenerateGKData(theta []float64, m int, seed uint64) (ystar, x0 []float64) {
	src := rand.NewSource(seed)
	nrm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}

	z := make([]float64, m)
	for i := range z {
		z[i] = nrm.Rand()
	}
	ystar = gkForward(theta, z)

	x0 = make([]float64, gkParamDim+m)
	for j := 0; j < gkParamDim; j++ {
		x0[j] = stdNormal.Quantile(theta[j] / 10)
	}
	copy(x0[gkParamDim:], z)
	return ystar, x0
}
