package crwm

import (
	"testing"

	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
	"github.com/MauroCE/ApproximateManifoldSampling/projection"
)

// BenchmarkRattleStep measures one constrained leapfrog step on the
// unit circle, the dominant per-iteration cost of the sampler.
func BenchmarkRattleStep(b *testing.B) {
	circle, err := manifold.NewSphere([]float64{0, 0}, 1)
	if err != nil {
		b.Fatal(err)
	}
	jac, err := circle.Jacobian([]float64{1, 0})
	if err != nil {
		b.Fatal(err)
	}
	cur := state{x: []float64{1, 0}, v: []float64{0, 0.3}, jac: jac}
	opts := projection.Options{Tol: 1e-10, MaxIter: 50, NormOrd: 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rattleStep(circle, cur, opts); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSample_UnitCircle measures full sampler throughput.
func BenchmarkSample_UnitCircle(b *testing.B) {
	circle, err := manifold.NewSphere([]float64{0, 0}, 1)
	if err != nil {
		b.Fatal(err)
	}
	opts := DefaultOptions()
	opts.T = 0.5
	opts.Samples = 100
	opts.Seed = 1

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sample(circle, []float64{1, 0}, opts); err != nil {
			b.Fatal(err)
		}
	}
}
