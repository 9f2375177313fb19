package evo

import (
	"errors"
	"math/rand"

	"exelixis/internal/model"
)

var (
	ErrEmptyPopulation      = errors.New("population is empty")
	ErrSelectionCount       = errors.New("selection count exceeds population size")
	ErrNonPositiveFitness   = errors.New("total fitness must be > 0 for fitness-proportionate selection")
	ErrParentLengthMismatch = errors.New("parents have different gene sequence lengths")
	ErrIncompatibleStrategy = errors.New("strategy is not applicable to the gene representation")
	ErrSurvivalRate         = errors.New("survival rate must be within [0, 1]")
	ErrAlphaRange           = errors.New("alpha must be within [0, 1]")
	ErrRateRange            = errors.New("rate must be within [0, 1]")
	ErrRandRequired         = errors.New("random source is required")
)

// Strategy is implemented by every member of the four operator families.
// Applicable reports whether the strategy can act on candidates of the given
// gene representation; the engine checks it once at construction.
type Strategy interface {
	Name() string
	Applicable(rep model.Representation) bool
}

// Selector chooses n parents from an evaluated population. Strategies that
// state so in their documentation assume the population is already sorted
// descending by fitness.
type Selector interface {
	Strategy
	Select(rng *rand.Rand, pop model.Population, n int) ([]model.Candidate, error)
}

// Crossover recombines two parents into exactly two fresh children.
type Crossover interface {
	Strategy
	Cross(rng *rand.Rand, a, b model.Candidate) (model.Candidate, model.Candidate, error)
}

// Mutator derives one mutated copy from one candidate.
type Mutator interface {
	Strategy
	Mutate(rng *rand.Rand, c model.Candidate) (model.Candidate, error)
}

// Reinserter composes the next population out of parents, their offspring and
// the leftover (unselected) members of the current one.
type Reinserter interface {
	Strategy
	Reinsert(rng *rand.Rand, parents, offspring, leftover []model.Candidate) ([]model.Candidate, error)
}
