// Package model defines the data types shared by the packing engine:
// containers, boxes, orientations, placements, and the solutions the
// engine produces.
package model

import "math"

// Score is the outcome of evaluating a Solution. A real, non-negative
// value counts placed boxes; INFEASIBLE and NotDefined are sentinels.
type Score float64

const (
	// NotDefined marks a solution that has not been evaluated yet.
	NotDefined Score = -1
	// Infeasible marks a solution that violates a zone weight budget.
	Infeasible Score = -2
)

// Point is an integer voxel coordinate or origin.
type Point struct {
	X, Y, Z int
}

// Orientation is a permutation of a box's base dimensions assigned to
// the container's X, Y, Z axes.
type Orientation struct {
	X, Y, Z int
}

// BaseArea is o.X * o.Y, the footprint area used for sorting and for
// the support-area predicate.
func (o Orientation) BaseArea() int {
	return o.X * o.Y
}

// Volume is the orientation's total voxel count.
func (o Orientation) Volume() int {
	return o.X * o.Y * o.Z
}

// Box is a rectangular item to be placed in the container.
type Box struct {
	ID         string
	CustomerID string
	Priority   int
	Fragile    bool

	// Length, Width, Height are the box's base dimensions, before any
	// orientation is chosen for it.
	Length, Width, Height int
	Weight                float64
}

// Volume is the box's base volume; it is orientation-independent.
func (b Box) Volume() int {
	return b.Length * b.Width * b.Height
}

// Orientations returns the six axis permutations of the box's base
// dimensions, stable-sorted ascending by base area (L*W before H) so
// that larger-base orientations are tried last in natural iteration.
// Duplicate permutations from equal dimensions are retained.
func (b Box) Orientations() []Orientation {
	perms := [6]Orientation{
		{b.Length, b.Width, b.Height},
		{b.Width, b.Length, b.Height},
		{b.Length, b.Height, b.Width},
		{b.Width, b.Height, b.Length},
		{b.Height, b.Length, b.Width},
		{b.Height, b.Width, b.Length},
	}
	out := make([]Orientation, len(perms))
	copy(out, perms[:])
	stableSortByBaseArea(out)
	return out
}

// stableSortByBaseArea sorts orientations ascending by base area using
// insertion sort, which is stable and cheap for the fixed six-element
// input this is always called with.
func stableSortByBaseArea(o []Orientation) {
	for i := 1; i < len(o); i++ {
		for j := i; j > 0 && o[j].BaseArea() < o[j-1].BaseArea(); j-- {
			o[j], o[j-1] = o[j-1], o[j]
		}
	}
}

// Zone is an X-axis interval with a weight budget, used to model axle-
// or compartment-load limits. The interval is inclusive-exclusive:
// [Lo, Hi).
type Zone struct {
	Lo, Hi int
	Budget float64
}

// Contains reports whether an X coordinate falls inside the zone.
func (z Zone) Contains(x int) bool {
	return x >= z.Lo && x < z.Hi
}

// Container is the rectangular region to be packed.
type Container struct {
	X, Y, Z int
	MaxWeight float64
	Zones     []Zone
}

// Volume is the container's total voxel count.
func (c Container) Volume() int {
	return c.X * c.Y * c.Z
}

// DefaultContainer builds a container whose zones are a single zone
// spanning [0, x) at the container's max weight, matching the source's
// default: zone_range=[(0, X)], zone_weights={1: max_weight}.
func DefaultContainer(x, y, z int, maxWeight float64) Container {
	return Container{
		X: x, Y: y, Z: z,
		MaxWeight: maxWeight,
		Zones:     []Zone{{Lo: 0, Hi: x, Budget: maxWeight}},
	}
}

// Placement is a box placed at an integer origin under a chosen
// orientation. The orientation lives here, not on the Box, so boxes
// stay immutable inputs across iterations (see design notes on why the
// source's in-place box mutation is not reproduced).
type Placement struct {
	Box         Box
	Origin      Point
	Orientation Orientation
}

// Contains reports whether voxel (x,y,z) lies within this placement's
// occupied region.
func (p Placement) Contains(x, y, z int) bool {
	return x >= p.Origin.X && x < p.Origin.X+p.Orientation.X &&
		y >= p.Origin.Y && y < p.Origin.Y+p.Orientation.Y &&
		z >= p.Origin.Z && z < p.Origin.Z+p.Orientation.Z
}

// Centroid returns the geometric center of the placement's occupied
// voxel block. Kept for callers that want the physically correct
// center of mass; the evaluator itself uses origins per §4.6/§9.
func (p Placement) Centroid() (float64, float64, float64) {
	return float64(p.Origin.X) + float64(p.Orientation.X)/2,
		float64(p.Origin.Y) + float64(p.Orientation.Y)/2,
		float64(p.Origin.Z) + float64(p.Orientation.Z)/2
}

// Solution is an ordered list of placements plus a score.
type Solution struct {
	Placements []Placement
	Score      Score

	// TotalBoxes and TotalWeight record the full input set this solution
	// was built from (including boxes that ended up unplaced), since the
	// evaluator needs the original totals to compute CoG and utilization.
	TotalBoxes  int
	TotalWeight float64
}

// PlacedVolume is the sum of volumes of the placed boxes, in their
// chosen orientation (orientation volume equals base volume always).
func (s Solution) PlacedVolume() int {
	total := 0
	for _, p := range s.Placements {
		total += p.Orientation.Volume()
	}
	return total
}

// PlacedVolumePercent reproduces the source's
// `100 * placed_volume / total_weight` formula. This is dimensionally
// inconsistent (volume over weight) but is preserved deliberately; see
// the design notes.
func (s Solution) PlacedVolumePercent() float64 {
	if s.TotalWeight == 0 {
		return 0
	}
	return 100 * float64(s.PlacedVolume()) / s.TotalWeight
}

// CenterOfGravity returns the weight-weighted mean of placement
// ORIGINS (not centroids), divided by the total original-box weight,
// matching §4.6/§9.
func (s Solution) CenterOfGravity() (gx, gy float64) {
	if s.TotalWeight == 0 {
		return 0, 0
	}
	var sx, sy float64
	for _, p := range s.Placements {
		sx += p.Box.Weight * float64(p.Origin.X)
		sy += p.Box.Weight * float64(p.Origin.Y)
	}
	return sx / s.TotalWeight, sy / s.TotalWeight
}

// DistanceFromCenter is the planar distance of the CoG from the
// container's footprint center, used as the tie-break in the driver's
// selection key.
func (s Solution) DistanceFromCenter(c Container) float64 {
	gx, gy := s.CenterOfGravity()
	cx, cy := float64(c.X)/2, float64(c.Y)/2
	return math.Hypot(gx-cx, gy-cy)
}

// LabelVolume produces the dense 3D label array described in §4.8: a
// [X][Y][Z] array of box IDs (or "" for unoccupied voxels).
func (s Solution) LabelVolume(c Container) [][][]string {
	vol := make([][][]string, c.X)
	for x := range vol {
		vol[x] = make([][]string, c.Y)
		for y := range vol[x] {
			vol[x][y] = make([]string, c.Z)
		}
	}
	for _, p := range s.Placements {
		for x := p.Origin.X; x < p.Origin.X+p.Orientation.X; x++ {
			for y := p.Origin.Y; y < p.Origin.Y+p.Orientation.Y; y++ {
				for z := p.Origin.Z; z < p.Origin.Z+p.Orientation.Z; z++ {
					vol[x][y][z] = p.Box.ID
				}
			}
		}
	}
	return vol
}
