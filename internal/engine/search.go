package engine

import "github.com/voxload/loadplan/internal/model"

// FindBestPosition scans the grid's potential points in their
// deterministic order and, for each, tries the box's orientations in
// their ascending-base-area order, returning the first (point,
// orientation) pair that fits, doesn't overlap, and is sufficiently
// supported. This is the source's find_best_position/fits_in_container/
// has_sufficient_support trio fused into one pass (§4.3).
func FindBestPosition(box model.Box, grid *Grid) (model.Point, model.Orientation, bool) {
	return FindPositionForOrientations(box.Orientations(), grid)
}

// FindPositionForOrientations is FindBestPosition generalized to an
// explicit orientation search order, used by the genetic optimizer to
// try its gene's preferred orientation first.
func FindPositionForOrientations(orientations []model.Orientation, grid *Grid) (model.Point, model.Orientation, bool) {
	for _, p := range grid.SortedPotentialPoints() {
		for _, o := range orientations {
			if grid.Fits(p, o) && !grid.Overlaps(p, o) && grid.HasSufficientSupport(p, o) {
				return p, o, true
			}
		}
	}
	return model.Point{}, model.Orientation{}, false
}
