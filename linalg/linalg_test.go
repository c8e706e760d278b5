package linalg_test

import (
	"math"
	"testing"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDense_BadShape verifies that non-positive dimensions error.
func TestNewDense_BadShape(t *testing.T) {
	_, err := linalg.NewDense(0, 3)
	assert.ErrorIs(t, err, linalg.ErrBadShape, "zero rows must error")

	_, err = linalg.NewDense(2, -1)
	assert.ErrorIs(t, err, linalg.ErrBadShape, "negative cols must error")
}

// TestFromSlice_LengthMismatch verifies that data length must equal rows*cols.
func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := linalg.FromSlice(2, 2, []float64{1, 2, 3})
	assert.ErrorIs(t, err, linalg.ErrBadShape)
}

// TestDense_AtSetRow exercises element access and the Row view.
func TestDense_AtSetRow(t *testing.T) {
	m, err := linalg.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, linalg.ErrOutOfRange)

	// Row returns a live view into the backing storage.
	row := m.Row(1)
	require.Len(t, row, 3)
	row[0] = -1
	v, _ = m.At(1, 0)
	assert.Equal(t, -1.0, v)

	assert.Nil(t, m.Row(5), "out-of-range row yields nil view")
}

// TestMatVec_KnownProduct checks a hand-computed matrix-vector product
// and the dimension-mismatch sentinel.
func TestMatVec_KnownProduct(t *testing.T) {
	a, err := linalg.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	out, err := linalg.MatVec(a, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, out)

	_, err = linalg.MatVec(a, []float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

// TestMatTVec_MatchesExplicitTranspose cross-checks MatTVec against
// Transpose+MatVec on a small rectangular matrix.
func TestMatTVec_MatchesExplicitTranspose(t *testing.T) {
	a, err := linalg.FromSlice(2, 3, []float64{1, -2, 0.5, 3, 4, -1})
	require.NoError(t, err)
	v := []float64{2, -1}

	got, err := linalg.MatTVec(a, v)
	require.NoError(t, err)

	at, err := linalg.Transpose(a)
	require.NoError(t, err)
	want, err := linalg.MatVec(at, v)
	require.NoError(t, err)

	assert.InDeltaSlice(t, want, got, 1e-15)
}

// TestMulT_GramMatrix verifies that MulT(J, J) is the Gram matrix J·Jᵀ.
func TestMulT_GramMatrix(t *testing.T) {
	j, err := linalg.FromSlice(2, 3, []float64{1, 0, 2, 0, 1, -1})
	require.NoError(t, err)

	g, err := linalg.MulT(j, j)
	require.NoError(t, err)
	require.Equal(t, 2, g.Rows())
	require.Equal(t, 2, g.Cols())

	want := [][]float64{{5, -2}, {-2, 2}}
	for i := 0; i < 2; i++ {
		for jj := 0; jj < 2; jj++ {
			v, err := g.At(i, jj)
			require.NoError(t, err)
			assert.InDelta(t, want[i][jj], v, 1e-15)
		}
	}
}

// TestSolveVec_KnownSystem solves a 3×3 system with a known solution
// and verifies the singular sentinel on a rank-deficient matrix.
func TestSolveVec_KnownSystem(t *testing.T) {
	a, err := linalg.FromSlice(3, 3, []float64{
		2, 1, -1,
		-3, -1, 2,
		-2, 1, 2,
	})
	require.NoError(t, err)

	x, err := linalg.SolveVec(a, []float64{8, -11, -3})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3, -1}, x, 1e-12)

	sing, err := linalg.FromSlice(2, 2, []float64{1, 2, 2, 4})
	require.NoError(t, err)
	_, err = linalg.SolveVec(sing, []float64{1, 1})
	assert.ErrorIs(t, err, linalg.ErrSingular)
}

// TestInverse_RoundTrip checks A·A⁻¹ ≈ I.
func TestInverse_RoundTrip(t *testing.T) {
	a, err := linalg.FromSlice(3, 3, []float64{
		4, 7, 2,
		3, 6, 1,
		2, 5, 3,
	})
	require.NoError(t, err)

	inv, err := linalg.Inverse(a)
	require.NoError(t, err)
	prod, err := linalg.Mul(a, inv)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := prod.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, v, 1e-12)
		}
	}
}

// TestRCond_WellVsIllConditioned verifies that RCond is ~1 for the
// identity, near 0 for a nearly singular matrix, and exactly 0 for a
// singular one (without error).
func TestRCond_WellVsIllConditioned(t *testing.T) {
	eye, err := linalg.FromSlice(2, 2, []float64{1, 0, 0, 1})
	require.NoError(t, err)
	rc, err := linalg.RCond(eye)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rc, 1e-15)

	ill, err := linalg.FromSlice(2, 2, []float64{1, 1, 1, 1 + 1e-12})
	require.NoError(t, err)
	rc, err = linalg.RCond(ill)
	require.NoError(t, err)
	assert.Less(t, rc, 1e-10)

	sing, err := linalg.FromSlice(2, 2, []float64{1, 2, 2, 4})
	require.NoError(t, err)
	rc, err = linalg.RCond(sing)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rc, "singular matrix reports rcond 0, not an error")
}

// TestLogDet_DiagonalMatrix checks LogDet against a closed-form value.
func TestLogDet_DiagonalMatrix(t *testing.T) {
	a, err := linalg.FromSlice(3, 3, []float64{
		2, 0, 0,
		0, 3, 0,
		0, 0, 4,
	})
	require.NoError(t, err)

	ld, err := linalg.LogDet(a)
	require.NoError(t, err)
	assert.InDelta(t, math.Log(24), ld, 1e-12)
}

// TestQREconomic_Orthonormal verifies QᵀQ = I and that Q spans the
// input's column space.
func TestQREconomic_Orthonormal(t *testing.T) {
	a, err := linalg.FromSlice(4, 2, []float64{
		1, 0,
		1, 1,
		0, 1,
		2, -1,
	})
	require.NoError(t, err)

	q, err := linalg.QREconomic(a)
	require.NoError(t, err)
	require.Equal(t, 4, q.Rows())
	require.Equal(t, 2, q.Cols())

	// QᵀQ must be the 2×2 identity.
	qt, err := linalg.Transpose(q)
	require.NoError(t, err)
	g, err := linalg.Mul(qt, q)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, _ := g.At(i, j)
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, v, 1e-12)
		}
	}

	// Q·Qᵀ applied to a column of a must reproduce that column.
	col := []float64{1, 1, 0, 2}
	qtcol, err := linalg.MatTVec(q, col)
	require.NoError(t, err)
	back, err := linalg.MatVec(q, qtcol)
	require.NoError(t, err)
	assert.InDeltaSlice(t, col, back, 1e-12)
}

// TestLstSqVec_ExactAndOverdetermined checks the least-squares solve on
// a consistent system and on a classic regression fit.
func TestLstSqVec_ExactAndOverdetermined(t *testing.T) {
	// Consistent tall system: the residual is exactly zero.
	a, err := linalg.FromSlice(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})
	require.NoError(t, err)
	x, err := linalg.LstSqVec(a, []float64{2, 3, 5})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2, 3}, x, 1e-12)

	// Overdetermined line fit y = 1 + 2t through noisy-free points.
	b, err := linalg.FromSlice(4, 2, []float64{
		1, 0,
		1, 1,
		1, 2,
		1, 3,
	})
	require.NoError(t, err)
	x, err = linalg.LstSqVec(b, []float64{1, 3, 5, 7})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2}, x, 1e-12)
}

// TestNorm_Orders exercises the 2-norm, ∞-norm and the ErrBadNorm sentinel.
func TestNorm_Orders(t *testing.T) {
	v := []float64{3, -4}

	n2, err := linalg.Norm(v, 2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, n2, 1e-15)

	ninf, err := linalg.Norm(v, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, 4.0, ninf)

	_, err = linalg.Norm(v, 1)
	assert.ErrorIs(t, err, linalg.ErrBadNorm)
}

// TestVectorHelpers covers Add/Sub/Scale/AddScaled/AllFinite.
func TestVectorHelpers(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{3, -1}

	assert.Equal(t, []float64{4, 1}, linalg.Add(a, b))
	assert.Equal(t, []float64{-2, 3}, linalg.Sub(a, b))
	assert.Equal(t, []float64{2, 4}, linalg.Scale(2, a))
	assert.Equal(t, []float64{7, 0}, linalg.AddScaled(a, 2, b))
	assert.Equal(t, 1.0, linalg.Dot(a, b))

	assert.True(t, linalg.AllFinite(a))
	assert.False(t, linalg.AllFinite([]float64{1, math.NaN()}))
	assert.False(t, linalg.AllFinite([]float64{math.Inf(1)}))
}
