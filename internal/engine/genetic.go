package engine

import (
	"context"
	"math/rand"
	"sort"

	"github.com/voxload/loadplan/internal/model"
)

// gene represents a single box placement decision in the chromosome:
// which box (by index into the optimizer's box slice) and which of its
// six orientations to try first when decoding.
type gene struct {
	boxIndex         int
	orientationIndex int
}

// chromosome is a candidate solution: a permutation of boxes plus a
// preferred orientation per box.
type chromosome struct {
	genes   []gene
	fitness float64
}

// geneticOptimizer implements the population-based alternative to the
// RCH driver, ported from the teacher's 2D order/rotation chromosome
// into the 3D order/orientation domain: the permutation gene plays the
// same role as the teacher's part ordering, and the orientation gene
// replaces the teacher's single rotation flag with an index into the
// six-way orientation set.
type geneticOptimizer struct {
	config      model.GeneticConfig
	boxes       []model.Box
	container   model.Container
	rng         *rand.Rand
	totalWeight float64
}

func newGeneticOptimizer(config model.GeneticConfig, boxes []model.Box, container model.Container, seed int64) *geneticOptimizer {
	return &geneticOptimizer{
		config:      config,
		boxes:       boxes,
		container:   container,
		rng:         rand.New(rand.NewSource(seed)),
		totalWeight: sumWeight(boxes),
	}
}

// optimize runs the evolution loop and returns the fully evaluated best
// solution found.
func (g *geneticOptimizer) optimize() model.Solution {
	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.config.Generations; gen++ {
		sort.Slice(population, func(i, j int) bool {
			return population[i].fitness > population[j].fitness
		})

		newPop := make([]chromosome, 0, g.config.PopulationSize)

		eliteCount := g.config.EliteCount
		if eliteCount > len(population) {
			eliteCount = len(population)
		}
		for i := 0; i < eliteCount; i++ {
			newPop = append(newPop, g.copyChromosome(population[i]))
		}

		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)

			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)

			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}

		population = newPop
	}

	sort.Slice(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})

	return g.buildSolution(population[0])
}

func (g *geneticOptimizer) initPopulation() []chromosome {
	n := len(g.boxes)
	population := make([]chromosome, g.config.PopulationSize)

	for i := range population {
		genes := make([]gene, n)
		perm := g.rng.Perm(n)
		for j := 0; j < n; j++ {
			genes[j] = gene{
				boxIndex:         perm[j],
				orientationIndex: g.rng.Intn(6),
			}
		}
		population[i] = chromosome{genes: genes}
	}

	if g.config.PopulationSize > 0 {
		population[0] = g.createGreedyChromosome()
	}

	return population
}

// createGreedyChromosome orders boxes by volume descending with each
// box's smallest-base orientation preferred first, mirroring the
// teacher's area-descending greedy seed.
func (g *geneticOptimizer) createGreedyChromosome() chromosome {
	n := len(g.boxes)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool {
		return g.boxes[indices[i]].Volume() > g.boxes[indices[j]].Volume()
	})

	genes := make([]gene, n)
	for i, idx := range indices {
		genes[i] = gene{boxIndex: idx, orientationIndex: 0}
	}
	return chromosome{genes: genes}
}

// evaluate decodes the chromosome into placements and scores it with
// the same evaluator the RCH driver uses, so the two algorithms are
// comparable on a shared scale. An infeasible decode is penalized below
// every feasible outcome.
func (g *geneticOptimizer) evaluate(c chromosome) float64 {
	sol := g.buildSolution(c)
	if sol.Score == model.Infeasible {
		return -1
	}
	return float64(sol.Score)
}

// buildSolution decodes a chromosome and runs it through the shared
// evaluator.
func (g *geneticOptimizer) buildSolution(c chromosome) model.Solution {
	placements := g.decode(c)
	sol := model.Solution{
		Placements:  placements,
		TotalBoxes:  len(g.boxes),
		TotalWeight: g.totalWeight,
	}
	Evaluate(&sol, g.container)
	return sol
}

// decode replays the constructive packer in chromosome order, trying
// each gene's preferred orientation before falling back to the box's
// remaining orientations in their natural ascending-base-area order.
func (g *geneticOptimizer) decode(c chromosome) []model.Placement {
	grid := NewGrid(g.container.X, g.container.Y, g.container.Z)
	placements := make([]model.Placement, 0, len(c.genes))

	for _, gn := range c.genes {
		box := g.boxes[gn.boxIndex]
		orientations := orientationOrderWithPreference(box, gn.orientationIndex)
		if origin, o, ok := FindPositionForOrientations(orientations, grid); ok {
			grid.Place(origin, o)
			placements = append(placements, model.Placement{Box: box, Origin: origin, Orientation: o})
		}
	}

	return placements
}

// orientationOrderWithPreference returns the box's six orientations
// with the one at preferredIdx moved to the front, preserving the
// relative order of the rest.
func orientationOrderWithPreference(box model.Box, preferredIdx int) []model.Orientation {
	all := box.Orientations()
	if preferredIdx < 0 || preferredIdx >= len(all) {
		return all
	}
	ordered := make([]model.Orientation, 0, len(all))
	ordered = append(ordered, all[preferredIdx])
	for i, o := range all {
		if i != preferredIdx {
			ordered = append(ordered, o)
		}
	}
	return ordered
}

func (g *geneticOptimizer) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return g.copyChromosome(best)
}

// orderCrossover implements Order Crossover (OX1) over the box-index
// permutation, carrying each gene's orientation index along with its
// box index so the child still expresses a full gene per box.
func (g *geneticOptimizer) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.genes)
	if n <= 2 {
		return g.copyChromosome(parent1)
	}

	point1 := g.rng.Intn(n)
	point2 := g.rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	child := chromosome{genes: make([]gene, n)}

	inSegment := make(map[int]bool)
	for i := point1; i <= point2; i++ {
		child.genes[i] = parent1.genes[i]
		inSegment[parent1.genes[i].boxIndex] = true
	}

	childIdx := (point2 + 1) % n
	for _, pg := range parent2.genes {
		if !inSegment[pg.boxIndex] {
			child.genes[childIdx] = pg
			childIdx = (childIdx + 1) % n
		}
	}

	return child
}

func (g *geneticOptimizer) mutate(c *chromosome) {
	n := len(c.genes)
	if n < 2 {
		return
	}

	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	}

	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		c.genes[i].orientationIndex = g.rng.Intn(6)
	}

	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
			i++
			j--
		}
	}
}

func (g *geneticOptimizer) copyChromosome(c chromosome) chromosome {
	genes := make([]gene, len(c.genes))
	copy(genes, c.genes)
	return chromosome{genes: genes, fitness: c.fitness}
}

// optimizeGenetic is the Optimizer's genetic-algorithm dispatch target,
// scaling generations/population for larger box lists the way the
// teacher's OptimizeGenetic scales for larger part lists.
func (o *Optimizer) optimizeGenetic(ctx context.Context, boxes []model.Box, container model.Container) (model.Solution, error) {
	if err := ctx.Err(); err != nil {
		return model.Solution{}, err
	}

	config := o.Config.Genetic
	if config.PopulationSize == 0 {
		config = model.DefaultGeneticConfig()
	}
	if len(boxes) > 20 {
		config.Generations = 150
	}
	if len(boxes) > 50 {
		config.Generations = 200
		config.PopulationSize = 80
	}

	ga := newGeneticOptimizer(config, boxes, container, o.Config.Seed)
	return ga.optimize(), nil
}
