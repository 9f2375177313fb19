package evo

import (
	"fmt"
	"math/rand"

	"exelixis/internal/model"
)

// PureReinserter discards parents and leftovers: the next generation is the
// offspring alone.
type PureReinserter struct{}

func (PureReinserter) Name() string { return "pure" }

func (PureReinserter) Applicable(model.Representation) bool { return true }

func (PureReinserter) Reinsert(_ *rand.Rand, _, offspring, _ []model.Candidate) ([]model.Candidate, error) {
	out := make([]model.Candidate, len(offspring))
	copy(out, offspring)
	return out, nil
}

// ElitistReinserter appends to the offspring the top
// floor((|parents|+|leftover|) * SurvivalRate) of parents and leftovers
// ranked by descending fitness.
type ElitistReinserter struct {
	SurvivalRate float64
}

func (ElitistReinserter) Name() string { return "elitist" }

func (ElitistReinserter) Applicable(model.Representation) bool { return true }

func (r ElitistReinserter) Reinsert(_ *rand.Rand, parents, offspring, leftover []model.Candidate) ([]model.Candidate, error) {
	count, err := survivorCount(r.SurvivalRate, len(parents)+len(leftover))
	if err != nil {
		return nil, err
	}

	old := make(model.Population, 0, len(parents)+len(leftover))
	old = append(old, parents...)
	old = append(old, leftover...)
	ranked := old.SortByFitness()

	out := make([]model.Candidate, 0, len(offspring)+count)
	out = append(out, offspring...)
	out = append(out, ranked[:count]...)
	return out, nil
}

// UniformReinserter keeps the same survivor count as ElitistReinserter but
// picks the survivors uniformly at random from parents and leftovers.
type UniformReinserter struct {
	SurvivalRate float64
}

func (UniformReinserter) Name() string { return "uniform" }

func (UniformReinserter) Applicable(model.Representation) bool { return true }

func (r UniformReinserter) Reinsert(rng *rand.Rand, parents, offspring, leftover []model.Candidate) ([]model.Candidate, error) {
	if rng == nil {
		return nil, ErrRandRequired
	}
	count, err := survivorCount(r.SurvivalRate, len(parents)+len(leftover))
	if err != nil {
		return nil, err
	}

	old := make([]model.Candidate, 0, len(parents)+len(leftover))
	old = append(old, parents...)
	old = append(old, leftover...)

	out := make([]model.Candidate, 0, len(offspring)+count)
	out = append(out, offspring...)
	for _, idx := range rng.Perm(len(old))[:count] {
		out = append(out, old[idx])
	}
	return out, nil
}

func survivorCount(rate float64, poolSize int) (int, error) {
	if rate < 0 || rate > 1 {
		return 0, fmt.Errorf("%w: rate=%v", ErrSurvivalRate, rate)
	}
	return int(float64(poolSize) * rate), nil
}
