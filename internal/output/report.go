package output

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/rpgo/retirement-calculator/internal/calculation"
	"github.com/rpgo/retirement-calculator/internal/domain"
)

// RunSummary is one run's outcome, flattened out of calculation.Run for
// reporting purposes.
type RunSummary struct {
	LifespanPeriods       int
	AssetsAdequatePeriods int
	Adequate              bool
	FinalBalance          float64
}

// Report is the pure, formatter-agnostic summary of a completed
// Simulation: its success ratio, a per-run breakdown, and percentile
// summaries of how much money was left at the end of each run.
type Report struct {
	SuccessRate domain.Ratio
	Runs        []RunSummary
	Percentiles BalancePercentiles
}

// BalancePercentiles holds the p10/p25/p50/p75/p90 of final balances
// across every run in a Simulation.
type BalancePercentiles struct {
	P10 float64
	P25 float64
	P50 float64
	P75 float64
	P90 float64
}

// BuildReport summarizes sim into a Report. Final balance for a run is
// the sum, across every retirement account that run carried, of that
// account's balance in the last period of the run's sampled lifespan.
func BuildReport(sim *calculation.Simulation) *Report {
	runs := make([]RunSummary, sim.RunCount())
	finalBalances := make([]float64, 0, sim.RunCount())

	for i := 0; i < sim.RunCount(); i++ {
		lifespan := sim.LifespanForRun(i)
		adequatePeriods := sim.AssetsAdequatePeriodsForRun(i)

		final := 0.0
		for a := 0; a < sim.AccountCountForRun(i); a++ {
			balance := sim.AccountBalanceForRun(i, a)
			if len(balance) > 0 {
				final += balance[len(balance)-1]
			}
		}

		runs[i] = RunSummary{
			LifespanPeriods:       lifespan,
			AssetsAdequatePeriods: adequatePeriods,
			Adequate:              adequatePeriods >= lifespan,
			FinalBalance:          final,
		}
		finalBalances = append(finalBalances, final)
	}

	sort.Float64s(finalBalances)

	return &Report{
		SuccessRate: sim.SuccessRate(),
		Runs:        runs,
		Percentiles: percentilesOf(finalBalances),
	}
}

func percentilesOf(sorted []float64) BalancePercentiles {
	if len(sorted) == 0 {
		return BalancePercentiles{}
	}
	return BalancePercentiles{
		P10: stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P25: stat.Quantile(0.25, stat.Empirical, sorted, nil),
		P50: stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P75: stat.Quantile(0.75, stat.Empirical, sorted, nil),
		P90: stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
}
