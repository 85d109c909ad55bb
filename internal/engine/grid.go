package engine

import (
	"math"
	"sort"

	"github.com/voxload/loadplan/internal/model"
)

// Grid is the discrete occupancy field for one packing iteration, plus
// the set of potential points (candidate origins for the next
// placement). It is rebuilt from empty at the start of every iteration;
// nothing about it is shared across iterations.
//
// The occupancy field is a flat []bool indexed x*(Y*Z) + y*Z + z, so z
// is the fastest-varying axis: a support check at a fixed layer z-1
// steps through memory with a stride of Z cells per y.
type Grid struct {
	x, y, z int
	occ     []bool
	points  map[model.Point]struct{}
}

// NewGrid builds an empty occupancy grid with potential points seeded
// at the origin, per §4.1.
func NewGrid(x, y, z int) *Grid {
	return &Grid{
		x:      x,
		y:      y,
		z:      z,
		occ:    make([]bool, x*y*z),
		points: map[model.Point]struct{}{{X: 0, Y: 0, Z: 0}: {}},
	}
}

func (g *Grid) index(x, y, z int) int {
	return x*(g.y*g.z) + y*g.z + z
}

// IsOccupied reports whether voxel (x,y,z) is marked occupied.
func (g *Grid) IsOccupied(x, y, z int) bool {
	return g.occ[g.index(x, y, z)]
}

// Fits reports whether origin+orientation stays within the container's
// extents, invariant 1 of §3.
func (g *Grid) Fits(origin model.Point, o model.Orientation) bool {
	return origin.X >= 0 && origin.Y >= 0 && origin.Z >= 0 &&
		origin.X+o.X <= g.x && origin.Y+o.Y <= g.y && origin.Z+o.Z <= g.z
}

// Overlaps reports whether any voxel in the candidate region is already
// occupied.
func (g *Grid) Overlaps(origin model.Point, o model.Orientation) bool {
	for i := origin.X; i < origin.X+o.X; i++ {
		for j := origin.Y; j < origin.Y+o.Y; j++ {
			for k := origin.Z; k < origin.Z+o.Z; k++ {
				if g.occ[g.index(i, j, k)] {
					return true
				}
			}
		}
	}
	return false
}

// HasSufficientSupport implements §4.3's support predicate: the floor
// always supports; otherwise at least ceil(0.95*ox*oy) voxels at z-1
// directly beneath the base must be occupied.
func (g *Grid) HasSufficientSupport(origin model.Point, o model.Orientation) bool {
	if origin.Z == 0 {
		return true
	}
	required := math.Ceil(0.95 * float64(o.X*o.Y))
	supported := 0
	below := origin.Z - 1
	for i := origin.X; i < origin.X+o.X; i++ {
		for j := origin.Y; j < origin.Y+o.Y; j++ {
			if g.occ[g.index(i, j, below)] {
				supported++
				if float64(supported) >= required {
					return true
				}
			}
		}
	}
	return false
}

// mark sets every voxel of the candidate region to occupied.
func (g *Grid) mark(origin model.Point, o model.Orientation) {
	for i := origin.X; i < origin.X+o.X; i++ {
		for j := origin.Y; j < origin.Y+o.Y; j++ {
			for k := origin.Z; k < origin.Z+o.Z; k++ {
				g.occ[g.index(i, j, k)] = true
			}
		}
	}
}

// updatePotentialPoints removes the consumed origin and inserts the
// three corner points of the newly placed box, per §4.1. Insertion
// into the set is idempotent.
func (g *Grid) updatePotentialPoints(origin model.Point, o model.Orientation) {
	delete(g.points, origin)
	g.points[model.Point{X: origin.X, Y: origin.Y, Z: origin.Z + o.Z}] = struct{}{}
	g.points[model.Point{X: origin.X + o.X, Y: origin.Y, Z: origin.Z}] = struct{}{}
	g.points[model.Point{X: origin.X, Y: origin.Y + o.Y, Z: origin.Z}] = struct{}{}
}

// Place marks the region occupied and refreshes the potential-point
// set. Callers are expected to have already validated fit/overlap/
// support via Fits/Overlaps/HasSufficientSupport.
func (g *Grid) Place(origin model.Point, o model.Orientation) {
	g.mark(origin, o)
	g.updatePotentialPoints(origin, o)
}

// SortedPotentialPoints returns the current potential points ordered by
// the deterministic total order (z, x+y, x, y), lowest first, per
// §4.3's tie-break rule and §9's design note.
func (g *Grid) SortedPotentialPoints() []model.Point {
	pts := make([]model.Point, 0, len(g.points))
	for p := range g.points {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		a, b := pts[i], pts[j]
		if a.Z != b.Z {
			return a.Z < b.Z
		}
		if sa, sb := a.X+a.Y, b.X+b.Y; sa != sb {
			return sa < sb
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return pts
}
