// Command gkexperiment benchmarks manifold samplers on the G-and-K
// quantile-distribution inference problem.
//
// It generates synthetic observations from the true parameter
// θ = (3, 1, 2, 0.5), builds the data manifold, then sweeps the kernel
// bandwidth ε and the trajectory length B for the Tangential Hug
// sampler at α ∈ {0, 0.9, 0.99} and for the constrained random-walk
// baseline. Each cell of the sweep runs several independent chains and
// is scored by minimum ESS per second and average acceptance. Results
// are rendered as an interactive HTML report.
//
// Usage:
//
//	gkexperiment [-m 50] [-samples 1000] [-chains 4] [-delta 0.01] [-out gk_experiment.html]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/lmittmann/tint"

	"github.com/MauroCE/ApproximateManifoldSampling/crwm"
	"github.com/MauroCE/ApproximateManifoldSampling/diagnostics"
	"github.com/MauroCE/ApproximateManifoldSampling/linalg"
	"github.com/MauroCE/ApproximateManifoldSampling/manifold"
	"github.com/MauroCE/ApproximateManifoldSampling/thug"
)

// dataSeed fixes the synthetic observations across runs.
const dataSeed = 1234

var (
	trueTheta = []float64{3.0, 1.0, 2.0, 0.5}
	epsilons  = []float64{1e0, 1e-1, 1e-2, 1e-3, 1e-4, 1e-5, 1e-6, 1e-7, 1e-8}
	bounces   = []int{1, 10, 50}
	alphas    = []float64{0, 0.9, 0.99}
)

// cell is one sweep entry: a sampler configuration scored over chains.
type cell struct {
	score  float64 // min ESS per second across chains
	accept float64 // average acceptance rate
}

func main() {
	m := flag.Int("m", 50, "number of observations (ambient dimension is 4+m)")
	samples := flag.Int("samples", 1000, "chain length per run")
	chains := flag.Int("chains", 4, "independent chains per sweep cell")
	delta := flag.Float64("delta", 0.01, "per-step integration size")
	out := flag.String("out", "gk_experiment.html", "output HTML report")
	flag.Parse()

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	if err := run(*m, *samples, *chains, *delta, *out); err != nil {
		slog.Error("experiment failed", "err", err)
		os.Exit(1)
	}
}

func run(m, samples, chains int, delta float64, out string) error {
	ystar, x0 := manifold.GenerateGKData(trueTheta, m, dataSeed)
	gk, err := manifold.NewGKManifold(ystar)
	if err != nil {
		return err
	}
	slog.Info("manifold ready", "observations", m, "ambient", manifold.Ambient(gk))

	page := components.NewPage().SetPageTitle("G-and-K sampler sweep")

	var lastChain *linalg.Dense
	for _, alpha := range alphas {
		name := fmt.Sprintf("THUG α=%.2f", alpha)
		grid := make([][]cell, len(epsilons))
		for ei, eps := range epsilons {
			grid[ei] = make([]cell, len(bounces))
			logpi := manifold.ABCPosterior(gk, eps)
			for bi, b := range bounces {
				c, last, err := runTHUGCell(gk, x0, logpi, alpha, b, delta, samples, chains)
				if err != nil {
					return err
				}
				grid[ei][bi] = c
				lastChain = last
				slog.Info("cell done", "sampler", name, "eps", eps, "B", b,
					"minESS/sec", c.score, "acceptance", c.accept)
			}
		}
		page.AddCharts(sweepChart(name, grid))
	}

	crwmGrid, err := runCRWM(gk, x0, delta, samples, chains)
	if err != nil {
		return err
	}
	page.AddCharts(crwmChart(crwmGrid))
	if lastChain != nil {
		page.AddCharts(chainScatter(lastChain))
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return err
	}
	slog.Info("report written", "path", out)
	return nil
}

// runTHUGCell runs the configured number of THUG chains and scores the
// cell. Returns the last chain for the scatter plot.
func runTHUGCell(gk *manifold.GKManifold, x0 []float64, logpi func([]float64) float64, alpha float64, b int, delta float64, samples, chains int) (cell, *linalg.Dense, error) {
	cfg := thug.DefaultOptions()
	cfg.T = float64(b) * delta
	cfg.Steps = b
	cfg.Samples = samples
	cfg.Alpha = alpha

	runs := make([]*linalg.Dense, 0, chains)
	times := make([]time.Duration, 0, chains)
	accept := 0.0
	var last *linalg.Dense
	for c := 0; c < chains; c++ {
		cfg.Seed = uint64(c + 1)
		start := time.Now()
		res, err := thug.Sample(gk, x0, logpi, cfg)
		if err != nil {
			return cell{}, nil, err
		}
		runs = append(runs, res.Chain)
		times = append(times, time.Since(start))
		accept += res.AcceptanceRate() / float64(chains)
		last = res.Chain
	}
	score, err := diagnostics.MinESSPerSecond(runs, times)
	if err != nil {
		return cell{}, nil, err
	}
	return cell{score: score, accept: accept}, last, nil
}

// runCRWM scores the on-manifold baseline per trajectory length. It has
// no bandwidth: the sampler targets the manifold measure directly.
func runCRWM(gk *manifold.GKManifold, x0 []float64, delta float64, samples, chains int) ([]cell, error) {
	grid := make([]cell, len(bounces))
	for bi, b := range bounces {
		cfg := crwm.DefaultOptions()
		cfg.T = float64(b) * delta
		cfg.Steps = b
		cfg.Samples = samples

		runs := make([]*linalg.Dense, 0, chains)
		times := make([]time.Duration, 0, chains)
		accept := 0.0
		for c := 0; c < chains; c++ {
			cfg.Seed = uint64(c + 1)
			start := time.Now()
			res, err := crwm.Sample(gk, x0, cfg)
			if err != nil {
				return nil, err
			}
			runs = append(runs, res.Chain)
			times = append(times, time.Since(start))
			accept += res.AcceptanceRate() / float64(chains)
		}
		score, err := diagnostics.MinESSPerSecond(runs, times)
		if err != nil {
			return nil, err
		}
		grid[bi] = cell{score: score, accept: accept}
		slog.Info("cell done", "sampler", "C-RWM", "B", b,
			"minESS/sec", score, "acceptance", accept)
	}
	return grid, nil
}

// sweepChart renders one ε-indexed efficiency line per trajectory
// length B.
func sweepChart(name string, grid [][]cell) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    name,
			Subtitle: "min ESS per second vs kernel bandwidth",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "ε"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "min ESS / sec"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(epsilons))
	for i, eps := range epsilons {
		labels[i] = fmt.Sprintf("%.0e", eps)
	}
	line.SetXAxis(labels)
	for bi, b := range bounces {
		series := make([]opts.LineData, len(epsilons))
		for ei := range epsilons {
			series[ei] = opts.LineData{Value: grid[ei][bi].score}
		}
		line.AddSeries(fmt.Sprintf("B=%d", b), series)
	}
	return line
}

// crwmChart renders the baseline efficiency per trajectory length.
func crwmChart(grid []cell) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "C-RWM baseline",
			Subtitle: "min ESS per second vs trajectory length",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "B"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "min ESS / sec"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	labels := make([]string, len(bounces))
	series := make([]opts.LineData, len(bounces))
	for bi, b := range bounces {
		labels[bi] = fmt.Sprintf("%d", b)
		series[bi] = opts.LineData{Value: grid[bi].score}
	}
	line.SetXAxis(labels).AddSeries("C-RWM", series)
	return line
}

// chainScatter plots the first two parameter coordinates of the last
// THUG chain.
func chainScatter(chain *linalg.Dense) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Posterior chain",
			Subtitle: "first two parameter coordinates",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "θ₀", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "θ₁", Type: "value"}),
	)

	items := make([]opts.ScatterData, chain.Rows())
	for i := 0; i < chain.Rows(); i++ {
		row := chain.Row(i)
		items[i] = opts.ScatterData{Value: []interface{}{row[0], row[1]}, SymbolSize: 4}
	}
	sc.AddSeries("chain", items)
	return sc
}
