package engine

import "github.com/voxload/loadplan/internal/model"

// Pack runs the constructive placement loop of §4.4 over boxes in the
// order given: for each box, find its best position in the grid and
// place it there, or leave it unplaced. Boxes that found no position on
// the first pass get one retry pass after every other box has had a
// turn, since a later placement can free up potential points (new
// corners) a stubborn box couldn't use earlier.
func Pack(boxes []model.Box, grid *Grid) []model.Placement {
	placements := make([]model.Placement, 0, len(boxes))
	var retry []model.Box

	for _, b := range boxes {
		if origin, o, ok := FindBestPosition(b, grid); ok {
			grid.Place(origin, o)
			placements = append(placements, model.Placement{Box: b, Origin: origin, Orientation: o})
		} else {
			retry = append(retry, b)
		}
	}

	for _, b := range retry {
		if origin, o, ok := FindBestPosition(b, grid); ok {
			grid.Place(origin, o)
			placements = append(placements, model.Placement{Box: b, Origin: origin, Orientation: o})
		}
	}

	return placements
}
