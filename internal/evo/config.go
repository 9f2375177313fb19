package evo

import (
	"fmt"

	"exelixis/internal/genealogy"
	"exelixis/internal/stats"
)

// Config is the per-run configuration surface, resolved once at engine
// construction and held constant across generations. Nil strategies, stores
// and a zero population size fall back to defaults; the rates are taken as
// written, so a zero SelectionRate selects no parents and a zero
// MutationRate produces no mutants. Callers wanting the standard setup start
// from DefaultConfig and override fields.
type Config struct {
	PopulationSize int
	Selector       Selector
	SelectionRate  float64
	Crossover      Crossover
	Mutator        Mutator
	MutationRate   float64
	Reinserter     Reinserter
	// Seed 0 asks for a time-derived seed.
	Seed int64
	// Aggregators override the recorded per-generation metrics.
	Aggregators map[string]stats.Aggregator
	// Stats and Genealogy inject shared stores; nil means the engine owns
	// fresh ones.
	Stats     *stats.Recorder
	Genealogy *genealogy.Tracker
}

const (
	DefaultPopulationSize = 100
	DefaultSelectionRate  = 0.8
	DefaultMutationRate   = 0.05
)

// DefaultConfig is the standard run setup: elite selection of 80% of the
// population, single point crossover, flip mutation at 5% and pure
// reinsertion.
func DefaultConfig() Config {
	return Config{
		PopulationSize: DefaultPopulationSize,
		Selector:       EliteSelector{},
		SelectionRate:  DefaultSelectionRate,
		Crossover:      SinglePointCrossover{},
		Mutator:        FlipMutator{},
		MutationRate:   DefaultMutationRate,
		Reinserter:     PureReinserter{},
	}
}

func (c Config) withDefaults() Config {
	if c.PopulationSize == 0 {
		c.PopulationSize = DefaultPopulationSize
	}
	if c.Selector == nil {
		c.Selector = EliteSelector{}
	}
	if c.Crossover == nil {
		c.Crossover = SinglePointCrossover{}
	}
	if c.Mutator == nil {
		c.Mutator = FlipMutator{}
	}
	if c.Reinserter == nil {
		c.Reinserter = PureReinserter{}
	}
	if c.Aggregators == nil {
		c.Aggregators = stats.DefaultAggregators()
	}
	if c.Stats == nil {
		c.Stats = stats.NewRecorder()
	}
	if c.Genealogy == nil {
		c.Genealogy = genealogy.NewTracker()
	}
	return c
}

func (c Config) validate() error {
	if c.PopulationSize < 1 {
		return fmt.Errorf("population size must be > 0, got %d", c.PopulationSize)
	}
	if c.SelectionRate < 0 || c.SelectionRate > 1 {
		return fmt.Errorf("selection rate must be within [0, 1], got %v", c.SelectionRate)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("mutation rate must be within [0, 1], got %v", c.MutationRate)
	}
	return nil
}
