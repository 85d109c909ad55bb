package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxload/loadplan/internal/model"
)

func TestCompareScenariosRunsEachScenarioInOrder(t *testing.T) {
	boxes := []model.Box{{ID: "A", Length: 2, Width: 2, Height: 2, Weight: 1}}
	container := model.DefaultContainer(4, 4, 4, 100)
	scenarios := []ComparisonScenario{
		{Name: "first", Config: defaultTestConfig()},
		{Name: "second", Config: defaultTestConfig()},
	}

	results, err := CompareScenarios(context.Background(), scenarios, boxes, container)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].Scenario.Name)
	assert.Equal(t, "second", results[1].Scenario.Name)
	assert.Equal(t, 1, results[0].PlacedCount)
}

func TestBuildDefaultScenariosIncludesAlternateAlgorithm(t *testing.T) {
	base := model.DefaultConfig()
	scenarios := BuildDefaultScenarios(base)

	foundGenetic := false
	for _, s := range scenarios {
		if s.Config.Algorithm == model.AlgorithmGenetic {
			foundGenetic = true
		}
	}
	assert.True(t, foundGenetic, "expected a genetic-algorithm alternative scenario")
}

func TestCompareScenariosDoesNotMutateBaseConfigOrBoxes(t *testing.T) {
	boxes := []model.Box{
		{ID: "A", Length: 2, Width: 2, Height: 2, Weight: 1},
		{ID: "B", Length: 1, Width: 1, Height: 1, Weight: 2},
	}
	boxesCopy := append([]model.Box(nil), boxes...)

	base := defaultTestConfig()
	baseCopy := base
	container := model.DefaultContainer(4, 4, 4, 100)

	scenarios := BuildDefaultScenarios(base)

	_, err := CompareScenarios(context.Background(), scenarios, boxes, container)
	require.NoError(t, err)

	assert.Equal(t, baseCopy, base, "CompareScenarios must not mutate the caller's base Config")
	assert.Equal(t, boxesCopy, boxes, "CompareScenarios must not mutate the caller's box slice")
}

func TestUtilizationPercentIsVolumetricNotWeightBased(t *testing.T) {
	container := model.DefaultContainer(2, 2, 2, 100)
	sol := model.Solution{
		Placements: []model.Placement{
			{Box: model.Box{ID: "A", Weight: 1000}, Orientation: model.Orientation{X: 2, Y: 2, Z: 2}},
		},
	}

	// Full container filled by volume: 8/8 = 100%, regardless of the
	// box's weight (unlike Solution.PlacedVolumePercent).
	assert.Equal(t, 100.0, utilizationPercent(sol, container))
}
