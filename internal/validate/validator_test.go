package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxload/loadplan/internal/model"
)

func TestValidatePassesOnWellFormedSolution(t *testing.T) {
	container := model.DefaultContainer(4, 4, 4, 100)
	sol := model.Solution{
		Placements: []model.Placement{
			{Box: model.Box{ID: "A", Weight: 1}, Origin: model.Point{0, 0, 0}, Orientation: model.Orientation{2, 2, 2}},
			{Box: model.Box{ID: "B", Weight: 1}, Origin: model.Point{2, 0, 0}, Orientation: model.Orientation{2, 2, 2}},
		},
	}

	report := Validate(sol, container)
	assert.True(t, report.Passed)
}

func TestValidateCatchesOutOfBoundsPlacement(t *testing.T) {
	container := model.DefaultContainer(2, 2, 2, 100)
	sol := model.Solution{
		Placements: []model.Placement{
			{Box: model.Box{ID: "A"}, Origin: model.Point{1, 1, 1}, Orientation: model.Orientation{2, 2, 2}},
		},
	}

	report := Validate(sol, container)
	assert.False(t, report.Passed)
}

func TestValidateCatchesOverlap(t *testing.T) {
	container := model.DefaultContainer(4, 4, 4, 100)
	sol := model.Solution{
		Placements: []model.Placement{
			{Box: model.Box{ID: "A"}, Origin: model.Point{0, 0, 0}, Orientation: model.Orientation{2, 2, 2}},
			{Box: model.Box{ID: "B"}, Origin: model.Point{1, 1, 1}, Orientation: model.Orientation{2, 2, 2}},
		},
	}

	report := Validate(sol, container)
	assert.False(t, report.Passed)
}

func TestValidateCatchesInsufficientSupport(t *testing.T) {
	container := model.DefaultContainer(4, 4, 4, 100)
	sol := model.Solution{
		Placements: []model.Placement{
			{Box: model.Box{ID: "base"}, Origin: model.Point{0, 0, 0}, Orientation: model.Orientation{1, 1, 1}},
			{Box: model.Box{ID: "floating"}, Origin: model.Point{0, 0, 1}, Orientation: model.Orientation{4, 4, 1}},
		},
	}

	report := Validate(sol, container)
	assert.False(t, report.Passed)
}

func TestValidateCatchesZoneBudgetOverrun(t *testing.T) {
	container := model.Container{
		X: 4, Y: 4, Z: 4, MaxWeight: 100,
		Zones: []model.Zone{{Lo: 0, Hi: 4, Budget: 1}},
	}
	sol := model.Solution{
		Placements: []model.Placement{
			{Box: model.Box{ID: "A", Weight: 10}, Origin: model.Point{0, 0, 0}, Orientation: model.Orientation{2, 2, 2}},
		},
	}

	report := Validate(sol, container)
	assert.False(t, report.Passed)
}

func TestValidateLabelVolumeMatchesPlacements(t *testing.T) {
	container := model.DefaultContainer(4, 4, 4, 100)
	sol := model.Solution{
		Placements: []model.Placement{
			{Box: model.Box{ID: "A", Weight: 1}, Origin: model.Point{0, 0, 0}, Orientation: model.Orientation{2, 2, 2}},
		},
	}

	report := Validate(sol, container)
	require.True(t, report.Passed)

	var labelResult Result
	for _, r := range report.Results {
		if r.Name == "label-volume" {
			labelResult = r
		}
	}
	assert.True(t, labelResult.Passed)

	vol := sol.LabelVolume(container)
	assert.Equal(t, "A", vol[0][0][0])
	assert.Equal(t, "", vol[3][3][3])
}

func TestValidateCatchesDuplicateBoxID(t *testing.T) {
	container := model.DefaultContainer(4, 4, 4, 100)
	sol := model.Solution{
		Placements: []model.Placement{
			{Box: model.Box{ID: "A"}, Origin: model.Point{0, 0, 0}, Orientation: model.Orientation{1, 1, 1}},
			{Box: model.Box{ID: "A"}, Origin: model.Point{2, 2, 2}, Orientation: model.Orientation{1, 1, 1}},
		},
	}

	report := Validate(sol, container)
	assert.False(t, report.Passed)
}
