package engine

import (
	"context"
	"fmt"

	"github.com/voxload/loadplan/internal/model"
)

// ComparisonScenario names a Config to run side by side with others.
type ComparisonScenario struct {
	Name   string
	Config model.Config
}

// ComparisonResult holds one scenario's solution plus the summary
// figures a caller would want to compare across scenarios.
type ComparisonResult struct {
	Scenario ComparisonScenario
	Solution model.Solution

	PlacedCount        int
	UnplacedCount      int
	UtilizationPercent float64
	Stable             bool
}

// CompareScenarios runs Optimize once per scenario against the same
// box list and container, returning results in scenario order. This is
// the teacher's scenario-comparison pattern (same boxes, varied tuning)
// carried over unchanged in shape, only the settings type and the
// summary figures are domain-specific.
func CompareScenarios(ctx context.Context, scenarios []ComparisonScenario, boxes []model.Box, container model.Container) ([]ComparisonResult, error) {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		opt := New(scenario.Config)
		sol, err := opt.Optimize(ctx, boxes, container)
		if err != nil {
			return nil, fmt.Errorf("comparing scenario %q: %w", scenario.Name, err)
		}

		results = append(results, ComparisonResult{
			Scenario:           scenario,
			Solution:           sol,
			PlacedCount:        len(sol.Placements),
			UnplacedCount:      len(boxes) - len(sol.Placements),
			UtilizationPercent: utilizationPercent(sol, container),
			Stable:             sol.Score != model.Infeasible && sol.Score != 0,
		})
	}

	return results, nil
}

// utilizationPercent reports the true volumetric fill ratio, as opposed
// to Solution.PlacedVolumePercent's preserved weight-denominator
// formula: this is the number a diagnostics caller actually wants to
// see, not the selection-key quirk the driver relies on internally.
func utilizationPercent(sol model.Solution, container model.Container) float64 {
	if container.Volume() == 0 {
		return 0
	}
	return 100 * float64(sol.PlacedVolume()) / float64(container.Volume())
}

// BuildDefaultScenarios generates a small set of what-if alternatives
// around a base configuration: the other algorithm, and a halved/
// doubled iteration count for the RCH driver.
func BuildDefaultScenarios(base model.Config) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{Name: "current", Config: base},
	}

	altAlgo := base
	if base.Algorithm == model.AlgorithmRCH {
		altAlgo.Algorithm = model.AlgorithmGenetic
		scenarios = append(scenarios, ComparisonScenario{Name: "genetic", Config: altAlgo})
	} else {
		altAlgo.Algorithm = model.AlgorithmRCH
		scenarios = append(scenarios, ComparisonScenario{Name: "rch", Config: altAlgo})
	}

	if base.Algorithm == model.AlgorithmRCH && base.Iterations > 1 {
		fewer := base
		fewer.Iterations = base.Iterations / 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:   fmt.Sprintf("rch-%d-iterations", fewer.Iterations),
			Config: fewer,
		})

		more := base
		more.Iterations = base.Iterations * 2
		scenarios = append(scenarios, ComparisonScenario{
			Name:   fmt.Sprintf("rch-%d-iterations", more.Iterations),
			Config: more,
		})
	}

	return scenarios
}
