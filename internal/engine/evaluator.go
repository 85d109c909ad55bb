package engine

import "github.com/voxload/loadplan/internal/model"

// Evaluate implements §4.6: check every zone's weight budget against
// the placements whose origin X falls in that zone (a placement is
// charged entirely to the zone containing its origin, even if its
// footprint straddles a zone boundary - preserved from the source), and
// check the center of gravity lies within the safe margins on both
// axes. It sets sol.Score in place: Infeasible on a zone overrun, 0 on
// a CoG violation (an unstable but otherwise valid pack), or the placed
// box count otherwise.
func Evaluate(sol *model.Solution, container model.Container) {
	remaining := make([]float64, len(container.Zones))
	for i, z := range container.Zones {
		remaining[i] = z.Budget
	}

	for _, p := range sol.Placements {
		for i, z := range container.Zones {
			if z.Contains(p.Origin.X) {
				remaining[i] -= p.Box.Weight
				if remaining[i] < 0 {
					sol.Score = model.Infeasible
					return
				}
				break
			}
		}
	}

	gx, gy := sol.CenterOfGravity()
	marginX := 0.4 * float64(container.X)
	marginY := 0.4 * float64(container.Y)
	if gx < marginX || gx > float64(container.X)-marginX ||
		gy < marginY || gy > float64(container.Y)-marginY {
		sol.Score = 0
		return
	}

	sol.Score = model.Score(len(sol.Placements))
}
