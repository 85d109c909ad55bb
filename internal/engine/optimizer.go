// Package engine implements the randomized constructive packing engine
// and its genetic-algorithm alternative: grid occupancy, orientation
// search, box ordering, zone/CoG evaluation, and the iteration drivers
// that tie them together.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/voxload/loadplan/internal/model"
)

// Optimizer runs a configured packing strategy against a box list and
// container. It mirrors the teacher's Optimizer: a thin struct around a
// Settings/Config value, dispatching to one of two algorithms.
type Optimizer struct {
	Config model.Config
}

// New builds an Optimizer with the given configuration.
func New(cfg model.Config) *Optimizer {
	return &Optimizer{Config: cfg}
}

// Optimize is the engine's single entry point (§6): validate the
// request, then dispatch to the configured algorithm.
func (o *Optimizer) Optimize(ctx context.Context, boxes []model.Box, container model.Container) (model.Solution, error) {
	sol, _, err := o.optimizeWithHistory(ctx, boxes, container)
	return sol, err
}

// optimizeWithHistory is Optimize's actual implementation: it additionally
// returns the RCH driver's per-iteration stats (nil for the genetic
// algorithm, which has no equivalent notion of independent iterations),
// so OptimizeWithDiagnostics can surface them without duplicating the
// validation and dispatch logic.
func (o *Optimizer) optimizeWithHistory(ctx context.Context, boxes []model.Box, container model.Container) (model.Solution, []IterationStat, error) {
	if container.X < 0 || container.Y < 0 || container.Z < 0 {
		return model.Solution{}, nil, fmt.Errorf("engine: container dimensions must not be negative, got (%d,%d,%d)", container.X, container.Y, container.Z)
	}
	if err := ctx.Err(); err != nil {
		return model.Solution{}, nil, err
	}

	totalWeight := sumWeight(boxes)
	totalVolume := sumVolume(boxes)

	// A non-positive MaxWeight defaults to the boxes' total weight, and an
	// empty zone list to a single zone [0, X) with that budget (§6).
	if container.MaxWeight <= 0 {
		container.MaxWeight = totalWeight
	}
	if len(container.Zones) == 0 {
		container.Zones = []model.Zone{{Lo: 0, Hi: container.X, Budget: container.MaxWeight}}
	}

	// Degenerate inputs (no boxes, or a zero-dimension container) are not
	// errors: they return an empty, infeasible solution per §7.
	if len(boxes) == 0 || container.X == 0 || container.Y == 0 || container.Z == 0 {
		return model.Solution{Score: model.Infeasible}, nil, nil
	}
	if totalWeight > container.MaxWeight || totalVolume > container.Volume() {
		return model.Solution{
			Score:       model.Infeasible,
			TotalBoxes:  len(boxes),
			TotalWeight: totalWeight,
		}, nil, nil
	}

	switch o.Config.Algorithm {
	case model.AlgorithmGenetic:
		sol, err := o.optimizeGenetic(ctx, boxes, container)
		return sol, nil, err
	default:
		return o.optimizeRCH(ctx, boxes, container)
	}
}

// optimizeRCH runs the randomized constructive heuristic of §4.7: N
// independent iterations, each with its own RNG stream and grid, run
// concurrently, then the best solution is selected by the §4.7 key. It
// also reports each iteration's score and placed-volume percent, so
// callers that want the spread across iterations (not just the winner)
// can inspect it.
//
// Per-iteration isolation (fresh Grid, fresh *rand.Rand seeded
// deterministically off the driver seed) is what makes the goroutine-
// per-iteration fan-out safe: no iteration reads or writes another's
// state, so results[i] needs no further synchronization once its
// goroutine returns.
func (o *Optimizer) optimizeRCH(ctx context.Context, boxes []model.Box, container model.Container) (model.Solution, []IterationStat, error) {
	n := o.Config.Iterations
	if n <= 0 {
		n = 30
	}
	totalWeight := sumWeight(boxes)

	results := make([]model.Solution, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(o.Config.Seed + int64(i)))
			ordered := SortAndRandomize(boxes, rng)
			grid := NewGrid(container.X, container.Y, container.Z)
			placements := Pack(ordered, grid)

			sol := model.Solution{
				Placements:  placements,
				TotalBoxes:  len(boxes),
				TotalWeight: totalWeight,
			}
			Evaluate(&sol, container)
			results[i] = sol
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return model.Solution{}, nil, err
	}

	history := make([]IterationStat, n)
	for i, s := range results {
		history[i] = IterationStat{Index: i, Score: s.Score, PlacedVolumePercent: s.PlacedVolumePercent()}
	}

	return selectBest(results, container), history, nil
}

// selectBest picks the best solution by the §4.7 key: feasible beats
// infeasible outright; among feasible solutions, higher placed-volume
// percent wins, ties broken by smaller distance from center; ties in
// both are broken by lowest iteration index (the first one seen, since
// a later candidate must be strictly better to replace it).
func selectBest(results []model.Solution, container model.Container) model.Solution {
	best := results[0]
	for _, s := range results[1:] {
		if better(s, best, container) {
			best = s
		}
	}
	return best
}

func better(a, b model.Solution, container model.Container) bool {
	aFeasible := a.Score != model.Infeasible
	bFeasible := b.Score != model.Infeasible
	if aFeasible != bFeasible {
		return aFeasible
	}
	if !aFeasible {
		return false
	}
	if a.PlacedVolumePercent() != b.PlacedVolumePercent() {
		return a.PlacedVolumePercent() > b.PlacedVolumePercent()
	}
	return a.DistanceFromCenter(container) < b.DistanceFromCenter(container)
}

func sumWeight(boxes []model.Box) float64 {
	var total float64
	for _, b := range boxes {
		total += b.Weight
	}
	return total
}

func sumVolume(boxes []model.Box) int {
	total := 0
	for _, b := range boxes {
		total += b.Volume()
	}
	return total
}
