package sweep

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/san-kum/plexus/internal/field"
	"github.com/san-kum/plexus/internal/metrics"
)

var ErrNoRuns = errors.New("sweep: ensemble needs at least one run")

// frameInterval is the synthetic clock of headless runs.
const frameInterval = time.Second / 60

// Job describes one headless field run.
type Job struct {
	Config        field.Config
	Width, Height float64
	Ticks         int
	Pointer       field.Pointer
}

type Result struct {
	Seed    int64
	Metrics map[string]float64
}

// RunOne steps a fresh field for job.Ticks frames and returns the standard
// metrics.
func RunOne(ctx context.Context, job Job, seed int64) (Result, error) {
	sim, err := field.New(job.Config, field.WithSeed(seed))
	if err != nil {
		return Result{}, err
	}
	set := metrics.Standard()
	sim.AddObserver(set)

	sim.Resize(job.Width, job.Height, 1)
	sim.SetPointer(job.Pointer.X, job.Pointer.Y)

	now := time.Unix(0, 0)
	for i := 0; i < job.Ticks; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sim.Tick(now, field.Discard)
		now = now.Add(frameInterval)
	}
	return Result{Seed: seed, Metrics: set.Values()}, nil
}

// Ensemble runs the same job under consecutive seeds, one goroutine and
// one simulator per run.
type Ensemble struct {
	job       Job
	numRuns   int
	seedStart int64
}

func NewEnsemble(job Job, numRuns int, seedStart int64) *Ensemble {
	return &Ensemble{job: job, numRuns: numRuns, seedStart: seedStart}
}

func (e *Ensemble) Run(ctx context.Context) ([]Result, error) {
	if e.numRuns < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoRuns, e.numRuns)
	}
	results := make([]Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = RunOne(ctx, e.job, e.seedStart+int64(idx))
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// Mean averages every metric over results.
func Mean(results []Result) map[string]float64 {
	out := make(map[string]float64)
	if len(results) == 0 {
		return out
	}
	for _, r := range results {
		for k, v := range r.Metrics {
			out[k] += v
		}
	}
	for k := range out {
		out[k] /= float64(len(results))
	}
	return out
}
