package crwm_test

import (
	"fmt"
	"math"

	"github.com/MauroCE/ApproximateManifoldSampling/crwm"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
)

// ExampleSample runs a short C-RWM chain on the unit circle and checks
// that every retained state satisfies the constraint.
func ExampleSample() {
	circle, _ := manifold.NewSphere([]float64{0, 0}, 1)

	opts := crwm.DefaultOptions()
	opts.T = 0.5
	opts.Samples = 200
	opts.Seed = 1

	res, _ := crwm.Sample(circle, []float64{1, 0}, opts)

	adherent := true
	for i := 0; i < res.Chain.Rows(); i++ {
		row := res.Chain.Row(i)
		if math.Abs(row[0]*row[0]+row[1]*row[1]-1) >= 1e-6 {
			adherent = false
		}
	}
	fmt.Println("rows:", res.Chain.Rows())
	fmt.Println("on manifold:", adherent)
	// Output:
	// rows: 200
	// on manifold: true
}
