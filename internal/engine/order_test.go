package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxload/loadplan/internal/model"
)

func TestSortAndRandomizePutsHigherCustomerIDFirst(t *testing.T) {
	boxes := []model.Box{
		{ID: "low-vol", CustomerID: "X", Priority: 1, Length: 1, Width: 1, Height: 1},
		{ID: "high-vol", CustomerID: "X", Priority: 1, Length: 2, Width: 2, Height: 2},
		{ID: "other-customer", CustomerID: "A", Priority: 5, Length: 1, Width: 1, Height: 1},
	}
	rng := rand.New(rand.NewSource(0))
	// Both customer "X" boxes sort ahead of customer "A", and a swap only
	// exchanges neighbours, so an "X" box leads whatever swaps the seed
	// draws.
	out := SortAndRandomize(boxes, rng)

	assert.Len(t, out, 3)
	// Customer "X" (descending string compare beats "A") should lead.
	assert.Equal(t, "X", out[0].CustomerID)
}

func TestSortAndRandomizeReturnsCopyNotAliasingInput(t *testing.T) {
	boxes := []model.Box{
		{ID: "A", CustomerID: "c", Priority: 1, Length: 1, Width: 1, Height: 1},
		{ID: "B", CustomerID: "c", Priority: 1, Length: 1, Width: 1, Height: 1},
	}
	rng := rand.New(rand.NewSource(1))
	out := SortAndRandomize(boxes, rng)
	out[0].ID = "mutated"

	assert.Equal(t, "A", boxes[0].ID, "input slice must not be mutated by the perturbation step")
}

func TestSortAndRandomizeIsDeterministicForAFixedSeed(t *testing.T) {
	boxes := []model.Box{
		{ID: "A", CustomerID: "c", Priority: 1, Length: 1, Width: 1, Height: 1},
		{ID: "B", CustomerID: "c", Priority: 2, Length: 1, Width: 1, Height: 1},
		{ID: "C", CustomerID: "c", Priority: 3, Length: 1, Width: 1, Height: 1},
	}

	out1 := SortAndRandomize(boxes, rand.New(rand.NewSource(42)))
	out2 := SortAndRandomize(boxes, rand.New(rand.NewSource(42)))

	for i := range out1 {
		assert.Equal(t, out1[i].ID, out2[i].ID)
	}
}
