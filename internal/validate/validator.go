// Package validate implements post-hoc checks over a finished Solution:
// independent re-derivations of the invariants the engine is supposed
// to have already enforced while packing, so a caller can verify a
// Solution they received from elsewhere (a saved run, a different
// process) without trusting the producer. Grounded on dshills-dungo's
// validation package: a Result-per-check list plus an aggregate
// Report, rather than a single pass/fail bool.
package validate

import (
	"fmt"
	"math"

	"github.com/voxload/loadplan/internal/model"
)

// Result is the outcome of one named check.
type Result struct {
	Name    string
	Passed  bool
	Details string
}

// Report aggregates every check run against a Solution.
type Report struct {
	Results []Result
	Passed  bool
}

// Validate runs every invariant check from §8 against the solution and
// returns an aggregate report. Checks are independent of each other and
// of the engine's own bookkeeping: containment and overlap are
// recomputed from scratch off the placement list alone.
func Validate(sol model.Solution, container model.Container) Report {
	results := []Result{
		checkContainment(sol, container),
		checkNoOverlap(sol),
		checkSupport(sol),
		checkZoneBudget(sol, container),
		checkUniqueBoxIDs(sol),
		checkLabelVolume(sol, container),
	}

	passed := true
	for _, r := range results {
		if !r.Passed {
			passed = false
		}
	}
	return Report{Results: results, Passed: passed}
}

// checkContainment verifies every placement's occupied region lies
// fully within the container's bounds (invariant 1).
func checkContainment(sol model.Solution, c model.Container) Result {
	for _, p := range sol.Placements {
		if p.Origin.X < 0 || p.Origin.Y < 0 || p.Origin.Z < 0 ||
			p.Origin.X+p.Orientation.X > c.X ||
			p.Origin.Y+p.Orientation.Y > c.Y ||
			p.Origin.Z+p.Orientation.Z > c.Z {
			return Result{
				Name:    "containment",
				Passed:  false,
				Details: fmt.Sprintf("box %s at %v with orientation %v exceeds container bounds (%d,%d,%d)", p.Box.ID, p.Origin, p.Orientation, c.X, c.Y, c.Z),
			}
		}
	}
	return Result{Name: "containment", Passed: true}
}

// checkNoOverlap verifies no two placements share a voxel (invariant
// 2), by re-marking an occupancy field from scratch and detecting any
// double-write.
func checkNoOverlap(sol model.Solution) Result {
	occupied := make(map[model.Point]string)
	for _, p := range sol.Placements {
		for x := p.Origin.X; x < p.Origin.X+p.Orientation.X; x++ {
			for y := p.Origin.Y; y < p.Origin.Y+p.Orientation.Y; y++ {
				for z := p.Origin.Z; z < p.Origin.Z+p.Orientation.Z; z++ {
					pt := model.Point{X: x, Y: y, Z: z}
					if owner, ok := occupied[pt]; ok {
						return Result{
							Name:    "no-overlap",
							Passed:  false,
							Details: fmt.Sprintf("voxel %v claimed by both %s and %s", pt, owner, p.Box.ID),
						}
					}
					occupied[pt] = p.Box.ID
				}
			}
		}
	}
	return Result{Name: "no-overlap", Passed: true}
}

// checkSupport verifies every placement not resting on the floor has
// at least ceil(0.95*base area) of its footprint supported by other
// placements (invariant 3), independent of whatever grid state produced
// the solution.
func checkSupport(sol model.Solution) Result {
	occupiedBelow := make(map[model.Point]bool)
	for _, p := range sol.Placements {
		for x := p.Origin.X; x < p.Origin.X+p.Orientation.X; x++ {
			for y := p.Origin.Y; y < p.Origin.Y+p.Orientation.Y; y++ {
				occupiedBelow[model.Point{X: x, Y: y, Z: p.Origin.Z + p.Orientation.Z - 1}] = true
			}
		}
	}

	for _, p := range sol.Placements {
		if p.Origin.Z == 0 {
			continue
		}
		required := math.Ceil(0.95 * float64(p.Orientation.X*p.Orientation.Y))
		supported := 0
		below := p.Origin.Z - 1
		for x := p.Origin.X; x < p.Origin.X+p.Orientation.X; x++ {
			for y := p.Origin.Y; y < p.Origin.Y+p.Orientation.Y; y++ {
				if occupiedBelow[model.Point{X: x, Y: y, Z: below}] {
					supported++
				}
			}
		}
		if float64(supported) < required {
			return Result{
				Name:    "support",
				Passed:  false,
				Details: fmt.Sprintf("box %s has only %d/%.0f required supported voxels", p.Box.ID, supported, required),
			}
		}
	}
	return Result{Name: "support", Passed: true}
}

// checkZoneBudget re-sums each zone's charged weight (by placement
// origin X, per the preserved zone-lookup rule) and verifies it does
// not exceed the zone's budget (invariant 4).
func checkZoneBudget(sol model.Solution, c model.Container) Result {
	remaining := make([]float64, len(c.Zones))
	for i, z := range c.Zones {
		remaining[i] = z.Budget
	}

	for _, p := range sol.Placements {
		for i, z := range c.Zones {
			if z.Contains(p.Origin.X) {
				remaining[i] -= p.Box.Weight
				break
			}
		}
	}

	for i, r := range remaining {
		if r < 0 {
			return Result{
				Name:    "zone-budget",
				Passed:  false,
				Details: fmt.Sprintf("zone %d over budget by %.2f", i, -r),
			}
		}
	}
	return Result{Name: "zone-budget", Passed: true}
}

// checkLabelVolume verifies the dense label volume agrees with the
// placement list voxel-for-voxel (invariant 6): every labeled voxel
// falls within exactly one placement's region and carries that box's
// ID, and every voxel outside all placements is empty.
func checkLabelVolume(sol model.Solution, c model.Container) Result {
	vol := sol.LabelVolume(c)

	expected := make(map[model.Point]string)
	for _, p := range sol.Placements {
		for x := p.Origin.X; x < p.Origin.X+p.Orientation.X; x++ {
			for y := p.Origin.Y; y < p.Origin.Y+p.Orientation.Y; y++ {
				for z := p.Origin.Z; z < p.Origin.Z+p.Orientation.Z; z++ {
					expected[model.Point{X: x, Y: y, Z: z}] = p.Box.ID
				}
			}
		}
	}

	for x := 0; x < c.X; x++ {
		for y := 0; y < c.Y; y++ {
			for z := 0; z < c.Z; z++ {
				want := expected[model.Point{X: x, Y: y, Z: z}]
				got := vol[x][y][z]
				if got != want {
					return Result{
						Name:    "label-volume",
						Passed:  false,
						Details: fmt.Sprintf("voxel (%d,%d,%d) labeled %q, expected %q", x, y, z, got, want),
					}
				}
			}
		}
	}
	return Result{Name: "label-volume", Passed: true}
}

// checkUniqueBoxIDs verifies no box ID appears in more than one
// placement (invariant 5: a box is placed at most once).
func checkUniqueBoxIDs(sol model.Solution) Result {
	seen := make(map[string]bool)
	for _, p := range sol.Placements {
		if seen[p.Box.ID] {
			return Result{
				Name:    "unique-box-ids",
				Passed:  false,
				Details: fmt.Sprintf("box %s appears in more than one placement", p.Box.ID),
			}
		}
		seen[p.Box.ID] = true
	}
	return Result{Name: "unique-box-ids", Passed: true}
}
