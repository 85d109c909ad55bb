package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxload/loadplan/internal/model"
)

func defaultTestConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.Iterations = 5
	cfg.Seed = 1
	return cfg
}

func TestOptimizePerfectFitSingleBox(t *testing.T) {
	opt := New(defaultTestConfig())
	boxes := []model.Box{{ID: "A", Length: 2, Width: 2, Height: 2, Weight: 1}}
	container := model.DefaultContainer(2, 2, 2, 100)

	sol, err := opt.Optimize(context.Background(), boxes, container)
	require.NoError(t, err)
	require.Len(t, sol.Placements, 1)
	assert.Equal(t, "A", sol.Placements[0].Box.ID)
}

func TestOptimizePlacesTwoBoxesThatFillContainer(t *testing.T) {
	opt := New(defaultTestConfig())
	boxes := []model.Box{
		{ID: "bottom", Length: 4, Width: 4, Height: 2, Weight: 1},
		{ID: "top", Length: 4, Width: 4, Height: 2, Weight: 1},
	}
	container := model.DefaultContainer(4, 4, 4, 100)

	sol, err := opt.Optimize(context.Background(), boxes, container)
	require.NoError(t, err)
	assert.Len(t, sol.Placements, 2)
}

func TestOptimizeRejectsOverhangingStack(t *testing.T) {
	opt := New(defaultTestConfig())
	boxes := []model.Box{
		{ID: "small-base", CustomerID: "c", Priority: 2, Length: 1, Width: 1, Height: 1, Weight: 1},
		{ID: "wide", CustomerID: "c", Priority: 1, Length: 6, Width: 6, Height: 1, Weight: 1},
	}
	// The container is 12 long so the 6x6 box has floor room beside
	// small-base.
	container := model.DefaultContainer(12, 6, 4, 100)

	sol, err := opt.Optimize(context.Background(), boxes, container)
	require.NoError(t, err)
	require.Len(t, sol.Placements, 2)
	for _, p := range sol.Placements {
		if p.Box.ID == "wide" {
			assert.Equal(t, 0, p.Origin.Z, "wide box cannot rest on small-base's insufficient footprint")
		}
	}
}

func TestOptimizeMarksInfeasibleWhenZoneBudgetExceeded(t *testing.T) {
	cfg := defaultTestConfig()
	opt := New(cfg)
	boxes := []model.Box{
		{ID: "A", Length: 2, Width: 2, Height: 2, Weight: 50},
	}
	container := model.Container{
		X: 10, Y: 10, Z: 10,
		MaxWeight: 100,
		Zones:     []model.Zone{{Lo: 0, Hi: 10, Budget: 10}},
	}

	sol, err := opt.Optimize(context.Background(), boxes, container)
	require.NoError(t, err)
	assert.Equal(t, model.Infeasible, sol.Score)
}

func TestOptimizeRejectsOversizedTotalVolumeUpfront(t *testing.T) {
	opt := New(defaultTestConfig())
	boxes := []model.Box{{ID: "A", Length: 20, Width: 20, Height: 20, Weight: 1}}
	container := model.DefaultContainer(2, 2, 2, 100)

	sol, err := opt.Optimize(context.Background(), boxes, container)
	require.NoError(t, err)
	assert.Equal(t, model.Infeasible, sol.Score)
}

func TestOptimizeRejectsNegativeContainerDimensions(t *testing.T) {
	opt := New(defaultTestConfig())
	boxes := []model.Box{{ID: "A", Length: 1, Width: 1, Height: 1, Weight: 1}}

	_, err := opt.Optimize(context.Background(), boxes, model.Container{X: -1, Y: 5, Z: 5, MaxWeight: 10})
	assert.Error(t, err)
}

func TestOptimizeZeroDimensionContainerIsDegenerateNotError(t *testing.T) {
	opt := New(defaultTestConfig())
	boxes := []model.Box{{ID: "A", Length: 1, Width: 1, Height: 1, Weight: 1}}

	sol, err := opt.Optimize(context.Background(), boxes, model.Container{X: 0, Y: 5, Z: 5, MaxWeight: 10})
	require.NoError(t, err)
	assert.Equal(t, model.Infeasible, sol.Score)
	assert.Empty(t, sol.Placements)
}

func TestOptimizeOmitsUnplaceableBoxButKeepsRest(t *testing.T) {
	opt := New(defaultTestConfig())
	boxes := []model.Box{
		{ID: "fits", Length: 2, Width: 2, Height: 2, Weight: 1},
		{ID: "too-big", Length: 3, Width: 3, Height: 3, Weight: 1},
	}
	// Total box volume 35 fits the container's 36, so the run is not
	// rejected upfront; the 3x3x3 box is wider than the container's 2x2
	// footprint in every orientation.
	container := model.DefaultContainer(2, 2, 9, 1000)

	sol, err := opt.Optimize(context.Background(), boxes, container)
	require.NoError(t, err)
	require.Len(t, sol.Placements, 1)
	assert.Equal(t, "fits", sol.Placements[0].Box.ID)
}

func TestSelectBestPrefersFeasibleOverInfeasible(t *testing.T) {
	container := model.DefaultContainer(10, 10, 10, 100)
	results := []model.Solution{
		{Score: model.Infeasible},
		{Score: 3, Placements: []model.Placement{{Box: model.Box{Weight: 1}}}, TotalWeight: 3},
	}

	best := selectBest(results, container)
	assert.NotEqual(t, model.Infeasible, best.Score)
}

func TestSelectBestBreaksTiesByLowerDistanceFromCenter(t *testing.T) {
	container := model.DefaultContainer(10, 10, 10, 100)
	centered := model.Solution{
		Score:       2,
		TotalWeight: 2,
		Placements: []model.Placement{
			{Box: model.Box{Weight: 2}, Origin: model.Point{X: 5, Y: 5}},
		},
	}
	offCenter := model.Solution{
		Score:       2,
		TotalWeight: 2,
		Placements: []model.Placement{
			{Box: model.Box{Weight: 2}, Origin: model.Point{X: 4, Y: 4}},
		},
	}

	best := selectBest([]model.Solution{offCenter, centered}, container)
	assert.Equal(t, 0.0, best.DistanceFromCenter(container))
}
