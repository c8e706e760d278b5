package diagnostics

import (
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
)

// Errors returned on malformed input.
var (
	// ErrEmptyChain indicates a chain with no rows or an empty series.
	ErrEmptyChain = errors.New("diagnostics: empty chain")

	// ErrLengthMismatch indicates chains/runtimes of different lengths.
	ErrLengthMismatch = errors.New("diagnostics: chains and runtimes length mismatch")
)

// AcceptanceRate returns the fraction of ones in a 0/1 acceptance
// vector; 0 for an empty vector.
func AcceptanceRate(accepted []int) float64 {
	if len(accepted) == 0 {
		return 0
	}
	total := 0
	for _, a := range accepted {
		total += a
	}
	return float64(total) / float64(len(accepted))
}

// ESS estimates the effective sample size of a scalar series with
// Geyer's initial monotone sequence: autocovariances are summed in
// adjacent pairs Γₜ = γ₂ₜ + γ₂ₜ₊₁, truncated at the first negative
// pair, and forced non-increasing. A constant series has zero variance
// and reports an ESS equal to its length.
//
// Complexity: O(n²) worst case, O(n·τ) for mixing chains with
// integrated autocorrelation time τ.
func ESS(xs []float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrEmptyChain
	}
	if n == 1 {
		return 1, nil
	}

	mean := stat.Mean(xs, nil)
	gamma0 := autocov(xs, mean, 0)
	if gamma0 == 0 {
		return float64(n), nil
	}

	// Sum of pairwise autocovariances, truncated and monotonized.
	tau := gamma0
	prev := math.Inf(1)
	for t := 1; t+1 < n; t += 2 {
		pair := autocov(xs, mean, t) + autocov(xs, mean, t+1)
		if pair < 0 {
			break
		}
		if pair > prev {
			pair = prev
		}
		tau += 2 * pair
		prev = pair
	}
	ess := float64(n) * gamma0 / tau
	if ess > float64(n) {
		ess = float64(n)
	}
	return ess, nil
}

// autocov is the biased lag-k autocovariance (1/n normalization), the
// convention under which Geyer's truncation is valid.
func autocov(xs []float64, mean float64, k int) float64 {
	n := len(xs)
	s := 0.0
	for i := 0; i+k < n; i++ {
		s += (xs[i] - mean) * (xs[i+k] - mean)
	}
	return s / float64(n)
}

// MinESS returns the smallest per-column ESS of a chain, the bottleneck
// coordinate that limits how much independent information the run
// carries.
func MinESS(chain *linalg.Dense) (float64, error) {
	if chain == nil || chain.Rows() == 0 {
		return 0, ErrEmptyChain
	}
	min := math.Inf(1)
	col := make([]float64, chain.Rows())
	for j := 0; j < chain.Cols(); j++ {
		for i := range col {
			col[i] = chain.Row(i)[j]
		}
		e, err := ESS(col)
		if err != nil {
			return 0, err
		}
		if e < min {
			min = e
		}
	}
	return min, nil
}

// MinESSPerSecond scores a sampler configuration: per-column ESS summed
// across independent chains, minimized over columns, divided by the
// total runtime in seconds. Chains must share their shape.
func MinESSPerSecond(chains []*linalg.Dense, runtimes []time.Duration) (float64, error) {
	if len(chains) == 0 {
		return 0, ErrEmptyChain
	}
	if len(chains) != len(runtimes) {
		return 0, ErrLengthMismatch
	}
	for _, c := range chains {
		if c == nil || c.Rows() == 0 {
			return 0, ErrEmptyChain
		}
		if c.Cols() != chains[0].Cols() {
			return 0, ErrLengthMismatch
		}
	}

	cols := chains[0].Cols()
	min := math.Inf(1)
	for j := 0; j < cols; j++ {
		sum := 0.0
		for _, c := range chains {
			col := make([]float64, c.Rows())
			for i := range col {
				col[i] = c.Row(i)[j]
			}
			e, err := ESS(col)
			if err != nil {
				return 0, err
			}
			sum += e
		}
		if sum < min {
			min = sum
		}
	}

	var total float64
	for _, rt := range runtimes {
		total += rt.Seconds()
	}
	if total <= 0 {
		return 0, ErrLengthMismatch
	}
	return min / total, nil
}

// MaxConstraintViolation returns the largest |F| component over every
// retained state of the chain. Rows where the constraint cannot be
// evaluated count as +Inf.
func MaxConstraintViolation(m manifold.Manifold, chain *linalg.Dense) (float64, error) {
	if chain == nil || chain.Rows() == 0 {
		return 0, ErrEmptyChain
	}
	worst := 0.0
	for i := 0; i < chain.Rows(); i++ {
		q, err := m.Constraint(chain.Row(i))
		if err != nil {
			return math.Inf(1), nil
		}
		for _, c := range q {
			if a := math.Abs(c); a > worst {
				worst = a
			}
		}
	}
	return worst, nil
}
