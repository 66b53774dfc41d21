package calculation

import (
	"runtime"
	"sync"

	"github.com/rpgo/retirement-calculator/internal/domain"
)

// Simulation is a batch of independently seeded Runs sharing the same
// RunSettings, executed concurrently up to the host's CPU count.
type Simulation struct {
	runs []*Run
	errs []error
}

// NewSimulation runs count Runs, each seeded deterministically from
// seed so the whole batch is reproducible: run i always uses
// seed*count+i regardless of execution order or goroutine scheduling.
// Concurrency is capped at runtime.NumCPU() via a buffered semaphore
// channel; results are written into a pre-sized slice indexed by run
// number, so no ordering-dependent synchronization is needed beyond
// the WaitGroup. Progress and per-run failures are reported through
// NopLogger unless the caller wires in its own Logger via
// NewSimulationWithLogger.
func NewSimulation(seed uint64, count int, settings RunSettings) *Simulation {
	return NewSimulationWithLogger(seed, count, settings, NopLogger{})
}

// NewSimulationWithLogger is NewSimulation with an explicit Logger,
// used to surface per-run failures (a run's rates/tax/job settings
// rejecting each other) without aborting the rest of the batch.
func NewSimulationWithLogger(seed uint64, count int, settings RunSettings, logger Logger) *Simulation {
	runs := make([]*Run, count)
	errs := make([]error, count)

	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	wg.Add(count)

	logger.Infof("starting simulation: seed=%d count=%d", seed, count)

	for i := 0; i < count; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			runSeed := seed*uint64(count) + uint64(i)
			run, err := ExecuteRun(runSeed, settings)
			if err != nil {
				logger.Errorf("run %d (seed %d) failed: %v", i, runSeed, err)
			} else {
				logger.Debugf("run %d (seed %d) completed: adequate=%t", i, runSeed, run.Adequate())
			}
			runs[i] = run
			errs[i] = err
		}(i)
	}

	wg.Wait()
	logger.Infof("simulation complete: %d runs", count)

	return &Simulation{runs: runs, errs: errs}
}

// Errs returns the per-run errors from construction, one slot per run
// (nil where that run succeeded). Callers that only care whether
// anything failed can range over this and stop at the first non-nil.
func (s *Simulation) Errs() []error {
	return s.errs
}

// RunCount returns how many runs this simulation holds.
func (s *Simulation) RunCount() int {
	return len(s.runs)
}

// SuccessRate returns the fraction of runs whose accounts covered
// every period of the sampled lifespan.
func (s *Simulation) SuccessRate() domain.Ratio {
	num := 0
	for _, r := range s.runs {
		if r != nil && r.Adequate() {
			num++
		}
	}
	return domain.Ratio{Num: num, Denom: len(s.runs)}
}

// LifespanForRun returns the sampled lifespan, in months, of run i.
func (s *Simulation) LifespanForRun(i int) int {
	return s.runs[i].LifespanPeriods()
}

// AssetsAdequatePeriodsForRun returns how many periods run i's accounts
// covered.
func (s *Simulation) AssetsAdequatePeriodsForRun(i int) int {
	return s.runs[i].AssetsAdequatePeriods()
}

// AccountBalanceForRun returns the full per-month balance vector for
// retirement account accountIdx of run i.
func (s *Simulation) AccountBalanceForRun(i, accountIdx int) []float64 {
	return s.runs[i].RetirementAccountBalance(accountIdx)
}

// AccountCountForRun returns how many retirement accounts run i
// carried.
func (s *Simulation) AccountCountForRun(i int) int {
	return s.runs[i].RetirementAccountCount()
}
