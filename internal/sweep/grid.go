package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
)

var ErrEmptyGrid = errors.New("sweep: empty grid")

// Grid is the cartesian product of particle counts and link distances.
type Grid struct {
	Counts   []int
	MaxDists []float64
}

type Point struct {
	Count   int
	MaxDist float64
	Metrics map[string]float64
}

// Search runs an ensemble at every grid point and returns the averaged
// metrics in grid order, counts outermost.
func (g Grid) Search(ctx context.Context, base Job, runs int, seedStart int64) ([]Point, error) {
	if len(g.Counts) == 0 || len(g.MaxDists) == 0 {
		return nil, ErrEmptyGrid
	}
	if runs < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoRuns, runs)
	}
	points := make([]Point, 0, len(g.Counts)*len(g.MaxDists))
	for _, count := range g.Counts {
		for _, dist := range g.MaxDists {
			job := base
			job.Config.Count = count
			job.Config.MaxDist = dist
			if err := job.Config.Validate(); err != nil {
				return nil, err
			}

			results, err := NewEnsemble(job, runs, seedStart).Run(ctx)
			if err != nil {
				return nil, err
			}
			points = append(points, Point{Count: count, MaxDist: dist, Metrics: Mean(results)})
		}
	}
	return points, nil
}

// Closest returns the point whose metric is nearest to target.
func Closest(points []Point, metric string, target float64) (Point, bool) {
	best := math.Inf(1)
	var bestPoint Point
	found := false
	for _, p := range points {
		v, ok := p.Metrics[metric]
		if !ok {
			continue
		}
		if d := math.Abs(v - target); d < best {
			best = d
			bestPoint = p
			found = true
		}
	}
	return bestPoint, found
}
