package diagnostics_test

import (
	"math"
	"testing"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/MauroCE/ApproximateManifoldSampling/diagnostics"
	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iidNormal(n int, seed uint64) []float64 {
	nrm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.New(rand.NewSource(seed))}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = nrm.Rand()
	}
	return xs
}

func TestAcceptanceRate(t *testing.T) {
	assert.Equal(t, 0.0, diagnostics.AcceptanceRate(nil))
	assert.Equal(t, 0.0, diagnostics.AcceptanceRate([]int{0, 0, 0}))
	assert.Equal(t, 1.0, diagnostics.AcceptanceRate([]int{1, 1}))
	assert.Equal(t, 0.25, diagnostics.AcceptanceRate([]int{1, 0, 0, 0}))
}

// TestESS_IID: independent draws should report an ESS close to the
// sample size.
func TestESS_IID(t *testing.T) {
	xs := iidNormal(4000, 1)
	ess, err := diagnostics.ESS(xs)
	require.NoError(t, err)
	assert.Greater(t, ess, 2000.0, "iid draws are nearly fully effective")
	assert.LessOrEqual(t, ess, 4000.0)
}

// TestESS_Correlated: a strongly autocorrelated AR(1) series must
// report far fewer effective samples than its length.
func TestESS_Correlated(t *testing.T) {
	nrm := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.New(rand.NewSource(2))}
	const n, phi = 4000, 0.95
	xs := make([]float64, n)
	for i := 1; i < n; i++ {
		xs[i] = phi*xs[i-1] + nrm.Rand()
	}

	ess, err := diagnostics.ESS(xs)
	require.NoError(t, err)

	iid, err := diagnostics.ESS(iidNormal(n, 3))
	require.NoError(t, err)
	assert.Less(t, ess, iid/4, "autocorrelation must shrink the ESS")
}

func TestESS_Degenerate(t *testing.T) {
	_, err := diagnostics.ESS(nil)
	assert.ErrorIs(t, err, diagnostics.ErrEmptyChain)

	ess, err := diagnostics.ESS([]float64{1.5})
	require.NoError(t, err)
	assert.Equal(t, 1.0, ess)

	// Constant series: zero variance, full length by convention.
	ess, err = diagnostics.ESS([]float64{2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 4.0, ess)
}

func TestMinESS(t *testing.T) {
	// Column 0 iid, column 1 constant-plus-trend (highly correlated).
	n := 2000
	chain, err := linalg.NewDense(n, 2)
	require.NoError(t, err)
	xs := iidNormal(n, 4)
	for i := 0; i < n; i++ {
		row := chain.Row(i)
		row[0] = xs[i]
		row[1] = float64(i) / float64(n)
	}

	min, err := diagnostics.MinESS(chain)
	require.NoError(t, err)

	essIID, err := diagnostics.ESS(xs)
	require.NoError(t, err)
	assert.Less(t, min, essIID, "the trending column is the bottleneck")

	_, err = diagnostics.MinESS(nil)
	assert.ErrorIs(t, err, diagnostics.ErrEmptyChain)
}

func TestMinESSPerSecond(t *testing.T) {
	n := 1000
	mk := func(seed uint64) *linalg.Dense {
		c, err := linalg.NewDense(n, 1)
		require.NoError(t, err)
		xs := iidNormal(n, seed)
		for i := 0; i < n; i++ {
			c.Row(i)[0] = xs[i]
		}
		return c
	}
	chains := []*linalg.Dense{mk(5), mk(6)}
	runtimes := []time.Duration{time.Second, time.Second}

	score, err := diagnostics.MinESSPerSecond(chains, runtimes)
	require.NoError(t, err)
	assert.Greater(t, score, 0.0)

	// Doubling the runtime halves the score.
	slow, err := diagnostics.MinESSPerSecond(chains, []time.Duration{2 * time.Second, 2 * time.Second})
	require.NoError(t, err)
	assert.InDelta(t, score/2, slow, 1e-9)

	_, err = diagnostics.MinESSPerSecond(chains, runtimes[:1])
	assert.ErrorIs(t, err, diagnostics.ErrLengthMismatch)
	_, err = diagnostics.MinESSPerSecond(nil, nil)
	assert.ErrorIs(t, err, diagnostics.ErrEmptyChain)
}

func TestMaxConstraintViolation(t *testing.T) {
	circle, err := manifold.NewSphere([]float64{0, 0}, 1)
	require.NoError(t, err)

	chain, err := linalg.NewDense(3, 2)
	require.NoError(t, err)
	// Two exact states and one off the circle by |1.21 - 1| = 0.21.
	copy(chain.Row(0), []float64{1, 0})
	copy(chain.Row(1), []float64{0, 1})
	copy(chain.Row(2), []float64{1.1, 0})
	v, err := diagnostics.MaxConstraintViolation(circle, chain)
	require.NoError(t, err)
	assert.InDelta(t, 0.21, v, 1e-12)

	bad, err := linalg.NewDense(1, 2)
	require.NoError(t, err)
	copy(bad.Row(0), []float64{math.NaN(), 0})
	v, err = diagnostics.MaxConstraintViolation(circle, bad)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1), "unevaluable states count as infinite violation")

	_, err = diagnostics.MaxConstraintViolation(circle, nil)
	assert.ErrorIs(t, err, diagnostics.ErrEmptyChain)
}
