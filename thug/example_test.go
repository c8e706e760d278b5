package thug_test

import (
	"fmt"
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
	"github.com/MauroCE/ApproximateManifoldSampling/thug"
)

// ExampleSample runs a short THUG chain on the unit circle, targeting
// the kernel-smoothed filament around the constraint surface.
func ExampleSample() {
	circle, _ := manifold.NewSphere([]float64{0, 0}, 1)
	logpi := manifold.ABCPosterior(circle, 0.1)

	opts := thug.DefaultOptions()
	opts.T = 0.5
	opts.Steps = 5
	opts.Samples = 200
	opts.Alpha = 0.9
	opts.Seed = 1

	res, _ := thug.Sample(circle, []float64{1, 0}, logpi, opts)

	finite := true
	for i := 0; i < res.Chain.Rows(); i++ {
		for _, c := range res.Chain.Row(i) {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				finite = false
			}
		}
	}
	fmt.Println("rows:", res.Chain.Rows())
	fmt.Println("finite:", finite)
	fmt.Println("moved:", res.AcceptanceRate() > 0)
	// Output:
	// rows: 200
	// finite: true
	// moved: true
}
