package evo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"exelixis/internal/genealogy"
	"exelixis/internal/model"
	"exelixis/internal/problem"
	"exelixis/internal/stats"
)

// Engine drives one evolutionary run: initialize a population from the
// problem's genotype, then evaluate, record, check termination, select,
// recombine, mutate and reinsert until the problem says stop. Generations run
// strictly sequentially; statistics and genealogy receive writes from the
// engine only, in program order.
type Engine struct {
	cfg     Config
	problem problem.Problem
	rng     *rand.Rand
}

// New validates the configuration against the problem's gene representation
// and resolves all defaults. Operator/representation mismatches (flip
// mutation on real genes, arithmetic crossover on binary genes, and so on)
// are rejected here rather than mid-run.
func New(p problem.Problem, cfg Config) (*Engine, error) {
	if p == nil {
		return nil, errors.New("problem is required")
	}
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rep := p.Representation()
	for _, s := range []Strategy{cfg.Selector, cfg.Crossover, cfg.Mutator, cfg.Reinserter} {
		if !s.Applicable(rep) {
			return nil, fmt.Errorf("%w: %s on %s genes", ErrIncompatibleStrategy, s.Name(), rep)
		}
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Engine{
		cfg:     cfg,
		problem: p,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// Config returns the fully resolved configuration the engine runs with.
func (e *Engine) Config() Config { return e.cfg }

// Stats exposes the run's statistics recorder for concurrent inspection.
func (e *Engine) Stats() *stats.Recorder { return e.cfg.Stats }

// Genealogy exposes the run's derivation graph for concurrent inspection.
func (e *Engine) Genealogy() *genealogy.Tracker { return e.cfg.Genealogy }

// Run constructs the initial population, registers it with the genealogy
// tracker and evolves it to termination, returning the best candidate of the
// final evaluated generation.
func (e *Engine) Run(ctx context.Context) (model.Candidate, error) {
	pop := make(model.Population, 0, e.cfg.PopulationSize)
	for i := 0; i < e.cfg.PopulationSize; i++ {
		pop = append(pop, e.problem.Genotype(e.rng))
	}
	e.cfg.Genealogy.RegisterInitial(pop)
	return e.Evolve(ctx, pop, 0)
}

// Evolve runs the generation loop from an arbitrary population and
// generation counter. It is the resumable step behind Run and is exposed for
// checkpoint-style callers and tests.
func (e *Engine) Evolve(ctx context.Context, pop model.Population, generation int) (model.Candidate, error) {
	for {
		if err := ctx.Err(); err != nil {
			return model.Candidate{}, err
		}
		if len(pop) == 0 {
			return model.Candidate{}, fmt.Errorf("generation %d: %w", generation, ErrEmptyPopulation)
		}

		evaluated := e.evaluate(pop)
		e.record(evaluated, generation)

		if e.problem.Terminate(evaluated, generation) {
			return evaluated[0], nil
		}

		next, err := e.advance(evaluated, generation)
		if err != nil {
			return model.Candidate{}, fmt.Errorf("generation %d: %w", generation, err)
		}
		pop = next
		generation++
	}
}

// evaluate scores and ages every candidate and returns a fresh population
// sorted descending by fitness. The sort is stable, so equal-fitness
// candidates keep their pre-sort order.
func (e *Engine) evaluate(pop model.Population) model.Population {
	evaluated := make(model.Population, len(pop))
	for i, c := range pop {
		c.Fitness = e.problem.Fitness(c)
		c.Age++
		evaluated[i] = c
	}
	sort.SliceStable(evaluated, func(i, j int) bool {
		return evaluated[i].Fitness > evaluated[j].Fitness
	})
	return evaluated
}

func (e *Engine) record(evaluated model.Population, generation int) {
	entry := make(stats.Entry, len(e.cfg.Aggregators))
	for name, agg := range e.cfg.Aggregators {
		entry[name] = agg(evaluated)
	}
	e.cfg.Stats.Insert(generation, entry)
}

// advance runs one selection/crossover/mutation/reinsertion cycle over an
// evaluated, sorted population and returns the next generation's population.
func (e *Engine) advance(evaluated model.Population, generation int) (model.Population, error) {
	n := int(math.Round(float64(len(evaluated)) * e.cfg.SelectionRate))
	if n%2 != 0 {
		n++
	}

	parents, err := e.cfg.Selector.Select(e.rng, evaluated, n)
	if err != nil {
		return nil, fmt.Errorf("selection (%s): %w", e.cfg.Selector.Name(), err)
	}
	leftover := evaluated.Without(parents)

	offspring := make([]model.Candidate, 0, len(parents)+len(evaluated))
	for i := 0; i+1 < len(parents); i += 2 {
		c1, c2, err := e.cfg.Crossover.Cross(e.rng, parents[i], parents[i+1])
		if err != nil {
			return nil, fmt.Errorf("crossover (%s): %w", e.cfg.Crossover.Name(), err)
		}
		pair := []model.Candidate{parents[i], parents[i+1]}
		if err := e.cfg.Genealogy.AddDerivation(pair, c1, generation+1); err != nil {
			return nil, err
		}
		if err := e.cfg.Genealogy.AddDerivation(pair, c2, generation+1); err != nil {
			return nil, err
		}
		offspring = append(offspring, c1, c2)
	}

	// Mutation samples the whole evaluated population, not just parents.
	for _, c := range evaluated {
		if e.rng.Float64() >= e.cfg.MutationRate {
			continue
		}
		mutant, err := e.cfg.Mutator.Mutate(e.rng, c)
		if err != nil {
			return nil, fmt.Errorf("mutation (%s): %w", e.cfg.Mutator.Name(), err)
		}
		if err := e.cfg.Genealogy.AddDerivation([]model.Candidate{c}, mutant, generation+1); err != nil {
			return nil, err
		}
		offspring = append(offspring, mutant)
	}

	next, err := e.cfg.Reinserter.Reinsert(e.rng, parents, offspring, leftover)
	if err != nil {
		return nil, fmt.Errorf("reinsertion (%s): %w", e.cfg.Reinserter.Name(), err)
	}
	if len(next) == 0 {
		return nil, errors.New("reinsertion produced an empty population")
	}
	return next, nil
}
