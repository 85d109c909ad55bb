package model

// Algorithm selects which packing strategy the engine uses.
type Algorithm string

const (
	// AlgorithmRCH is the randomized constructive heuristic of §4.4-§4.7:
	// run N randomized orderings through the grid/packer, keep the best.
	AlgorithmRCH Algorithm = "rch"
	// AlgorithmGenetic is the population-based alternative, ported from
	// the teacher's 2D genetic optimizer into the 3D orientation domain.
	AlgorithmGenetic Algorithm = "genetic"
)

// GeneticConfig holds parameters for the genetic-algorithm optimizer.
// Mirrors the teacher's engine.GeneticConfig field-for-field.
type GeneticConfig struct {
	PopulationSize int     `yaml:"population_size" json:"population_size"`
	Generations    int     `yaml:"generations" json:"generations"`
	MutationRate   float64 `yaml:"mutation_rate" json:"mutation_rate"`
	TournamentSize int     `yaml:"tournament_size" json:"tournament_size"`
	EliteCount     int     `yaml:"elite_count" json:"elite_count"`
}

// DefaultGeneticConfig returns sensible default parameters, unchanged
// from the teacher's defaults.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 50,
		Generations:    100,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
	}
}

// Config holds engine tuning knobs for a single Optimize call.
type Config struct {
	Algorithm Algorithm `yaml:"algorithm" json:"algorithm"`

	// Iterations is N in §4.7; the source default is 30.
	Iterations int `yaml:"iterations" json:"iterations"`

	// Seed drives the driver's per-iteration RNG streams; see the
	// design-notes decision on reproducible-yet-independent seeding.
	Seed int64 `yaml:"seed" json:"seed"`

	Genetic GeneticConfig `yaml:"genetic" json:"genetic"`
}

// DefaultConfig returns the engine's default tuning: RCH, 30
// iterations, the genetic algorithm's published defaults, and a fixed
// seed for reproducible runs.
func DefaultConfig() Config {
	return Config{
		Algorithm:  AlgorithmRCH,
		Iterations: 30,
		Seed:       1,
		Genetic:    DefaultGeneticConfig(),
	}
}
