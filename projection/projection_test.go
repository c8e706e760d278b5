package projection_test

import (
	"math"
	"testing"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
	"github.com/MauroCE/ApproximateManifoldSampling/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// domainFail is a 2-D manifold whose evaluations always leave the
// numeric domain; used to exercise the immediate-failure path.
type domainFail struct{}

func (domainFail) Dim() int   { return 1 }
func (domainFail) Codim() int { return 1 }
func (domainFail) Constraint(x []float64) ([]float64, error) {
	return nil, manifold.ErrDomain
}
func (domainFail) Jacobian(x []float64) (*linalg.Dense, error) {
	return nil, manifold.ErrDomain
}
func (domainFail) LogDensity(x []float64) float64 { return math.Inf(-1) }

func unitCircle(t *testing.T) *manifold.Sphere {
	t.Helper()
	s, err := manifold.NewSphere([]float64{0, 0}, 1)
	require.NoError(t, err)
	return s
}

// TestNewton_IdempotentOnManifold: projecting a point already on the
// manifold with zero displacement must return a ≈ 0 after 0 iterations.
func TestNewton_IdempotentOnManifold(t *testing.T) {
	circle := unitCircle(t)
	q, err := manifold.JacobianT(circle, []float64{1, 0})
	require.NoError(t, err)

	res, err := projection.Newton(circle, []float64{1, 0}, q, projection.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 0, res.JacobianEvals, "no refinement iterations expected")
	assert.InDelta(t, 0.0, res.Coeffs[0], 1e-15)
}

// TestNewton_RecoversDisplacedPoint pushes a circle point off the
// manifold along the normal and checks that the solve lands back on it.
func TestNewton_RecoversDisplacedPoint(t *testing.T) {
	circle := unitCircle(t)
	x := []float64{1, 0}
	q, err := manifold.JacobianT(circle, x)
	require.NoError(t, err)

	opts := projection.DefaultOptions()
	opts.Tol = 1e-12
	z := []float64{1.3, 0.2}
	res, err := projection.Newton(circle, z, q, opts)
	require.NoError(t, err)
	require.True(t, res.Converged)
	assert.Greater(t, res.JacobianEvals, 0)

	// Landing point z − Q·a must satisfy the constraint.
	qa, err := linalg.MatVec(q, res.Coeffs)
	require.NoError(t, err)
	y := linalg.Sub(z, qa)
	cv, err := circle.Constraint(y)
	require.NoError(t, err)
	assert.Less(t, math.Abs(cv[0]), 1e-12)
}

// TestNewton_MaxIterFailure forces non-convergence via a one-iteration
// cap on a far displacement; coefficients must be zeroed and the
// Jacobian evaluations still counted.
func TestNewton_MaxIterFailure(t *testing.T) {
	circle := unitCircle(t)
	q, err := manifold.JacobianT(circle, []float64{1, 0})
	require.NoError(t, err)

	opts := projection.Options{Tol: 1e-14, MaxIter: 1, NormOrd: 2}
	res, err := projection.Newton(circle, []float64{2, 0}, q, opts)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, []float64{0}, res.Coeffs, "failed solve must discard partial progress")
	assert.GreaterOrEqual(t, res.JacobianEvals, 1, "cost is accounted even on failure")
}

// TestNewton_SingularGram starts at the circle center, where the Gram
// matrix J·Q vanishes; the solve must fail, not blow up.
func TestNewton_SingularGram(t *testing.T) {
	circle := unitCircle(t)
	q, err := manifold.JacobianT(circle, []float64{1, 0})
	require.NoError(t, err)

	res, err := projection.Newton(circle, []float64{0, 0}, q, projection.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.JacobianEvals)
}

// TestNewton_DomainErrorImmediate verifies the degrade-to-failure path
// when the very first constraint evaluation leaves the numeric domain.
func TestNewton_DomainErrorImmediate(t *testing.T) {
	q, err := linalg.FromSlice(2, 1, []float64{1, 0})
	require.NoError(t, err)

	res, err := projection.Newton(domainFail{}, []float64{1, 0}, q, projection.DefaultOptions())
	require.NoError(t, err, "domain error degrades to failure, not error")
	assert.False(t, res.Converged)
	assert.Equal(t, 0, res.JacobianEvals)
}

// TestNewton_BadArguments checks the hard-error surface: option
// validation and dimension mismatches fail before any iteration.
func TestNewton_BadArguments(t *testing.T) {
	circle := unitCircle(t)
	q, err := manifold.JacobianT(circle, []float64{1, 0})
	require.NoError(t, err)

	_, err = projection.Newton(circle, []float64{1, 0}, q, projection.Options{Tol: -1, MaxIter: 5, NormOrd: 2})
	assert.ErrorIs(t, err, projection.ErrBadOptions)

	_, err = projection.Newton(circle, []float64{1, 0, 0}, q, projection.DefaultOptions())
	assert.ErrorIs(t, err, manifold.ErrDimension)
}

// TestProject_MethodsAgree verifies that all applicable projector
// policies produce the same normal component, for codimension 1 and 2.
func TestProject_MethodsAgree(t *testing.T) {
	v := []float64{1.0, -2.0, 0.5, 3.0}

	// Codimension 2 in ambient dimension 4.
	j, err := linalg.FromSlice(2, 4, []float64{
		1, 0.5, -1, 2,
		0, 1, 1, -0.5,
	})
	require.NoError(t, err)

	ref, err := projection.Project(v, j, projection.MethodLinear)
	require.NoError(t, err)
	for _, method := range []projection.Method{projection.MethodQR, projection.MethodLstSq} {
		got, err := projection.Project(v, j, method)
		require.NoError(t, err, method.String())
		assert.InDeltaSlice(t, ref, got, 1e-10, method.String())
	}

	// Gradient closed form only exists for a single constraint.
	_, err = projection.Project(v, j, projection.MethodGradient)
	assert.ErrorIs(t, err, projection.ErrGradientCodim)

	g, err := linalg.FromSlice(1, 4, []float64{2, -1, 0, 1})
	require.NoError(t, err)
	ref, err = projection.Project(v, g, projection.MethodLinear)
	require.NoError(t, err)
	got, err := projection.Project(v, g, projection.MethodGradient)
	require.NoError(t, err)
	assert.InDeltaSlice(t, ref, got, 1e-12)
}

// TestProject_IsProjection checks the algebraic projector laws:
// P(P(v)) = P(v) and v − P(v) orthogonal to every Jacobian row.
func TestProject_IsProjection(t *testing.T) {
	j, err := linalg.FromSlice(2, 4, []float64{
		1, 2, 0, -1,
		0, 1, -1, 1,
	})
	require.NoError(t, err)
	v := []float64{0.3, -1, 2, 0.7}

	p, err := projection.Project(v, j, projection.MethodQR)
	require.NoError(t, err)
	pp, err := projection.Project(p, j, projection.MethodQR)
	require.NoError(t, err)
	assert.InDeltaSlice(t, p, pp, 1e-12, "projector must be idempotent")

	tangent, err := projection.TangentProject(v, j)
	require.NoError(t, err)
	jt, err := linalg.MatVec(j, tangent)
	require.NoError(t, err)
	for i, r := range jt {
		assert.InDelta(t, 0.0, r, 1e-12, "row %d not orthogonal", i)
	}
}

// TestProject_BadMethod covers the unknown-method sentinel.
func TestProject_BadMethod(t *testing.T) {
	j, err := linalg.FromSlice(1, 2, []float64{1, 0})
	require.NoError(t, err)
	_, err = projection.Project([]float64{1, 1}, j, projection.Method(42))
	assert.ErrorIs(t, err, projection.ErrBadMethod)
}
