package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/voxload/loadplan/internal/model"
)

// IterationStat records one RCH iteration's outcome, kept for callers
// that want to inspect the spread across iterations rather than only
// the winner.
type IterationStat struct {
	Index               int
	Score               model.Score
	PlacedVolumePercent float64
}

// RunDiagnostics summarizes one Optimize call: a run id for log
// correlation, which algorithm ran, and how long it took.
type RunDiagnostics struct {
	RunID      string
	Algorithm  model.Algorithm
	Iterations int
	BestScore  model.Score
	Elapsed    time.Duration
	History    []IterationStat
}

// OptimizeWithDiagnostics wraps Optimize with a correlation id and
// structured logging via klog.FromContext, following the descheduler
// plugin's WithValues pattern: a logger scoped to this run is derived
// once and every subsequent log line carries the run id automatically.
func (o *Optimizer) OptimizeWithDiagnostics(ctx context.Context, boxes []model.Box, container model.Container) (model.Solution, RunDiagnostics, error) {
	runID := uuid.New().String()
	logger := klog.FromContext(ctx).WithValues("run", runID, "algorithm", o.Config.Algorithm)
	ctx = klog.NewContext(ctx, logger)

	start := time.Now()
	logger.V(2).Info("optimize starting", "boxCount", len(boxes), "iterations", o.Config.Iterations)

	sol, history, err := o.optimizeWithHistory(ctx, boxes, container)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error(err, "optimize failed")
		return model.Solution{}, RunDiagnostics{RunID: runID, Algorithm: o.Config.Algorithm, Elapsed: elapsed}, err
	}

	logger.V(2).Info("optimize finished",
		"placed", len(sol.Placements),
		"score", sol.Score,
		"elapsedMs", elapsed.Milliseconds(),
	)

	diag := RunDiagnostics{
		RunID:      runID,
		Algorithm:  o.Config.Algorithm,
		Iterations: o.Config.Iterations,
		BestScore:  sol.Score,
		Elapsed:    elapsed,
		History:    history,
	}
	return sol, diag, nil
}
