package evo

import (
	"fmt"
	"math/rand"

	"exelixis/internal/model"
)

const defaultTournamentSize = 3

// EliteSelector takes the first n candidates. It requires the population to
// be pre-sorted descending by fitness and is fully deterministic.
type EliteSelector struct{}

func (EliteSelector) Name() string { return "elite" }

func (EliteSelector) Applicable(model.Representation) bool { return true }

func (EliteSelector) Select(_ *rand.Rand, pop model.Population, n int) ([]model.Candidate, error) {
	if n < 0 || n > len(pop) {
		return nil, fmt.Errorf("%w: n=%d population=%d", ErrSelectionCount, n, len(pop))
	}
	out := make([]model.Candidate, n)
	copy(out, pop[:n])
	return out, nil
}

// RandomSelector draws n distinct candidates uniformly without replacement.
type RandomSelector struct{}

func (RandomSelector) Name() string { return "random" }

func (RandomSelector) Applicable(model.Representation) bool { return true }

func (RandomSelector) Select(rng *rand.Rand, pop model.Population, n int) ([]model.Candidate, error) {
	if rng == nil {
		return nil, ErrRandRequired
	}
	if n < 0 || n > len(pop) {
		return nil, fmt.Errorf("%w: n=%d population=%d", ErrSelectionCount, n, len(pop))
	}
	out := make([]model.Candidate, 0, n)
	for _, idx := range rng.Perm(len(pop))[:n] {
		out = append(out, pop[idx])
	}
	return out, nil
}

// TournamentSelector runs n independent tournaments: each draws Size
// candidates uniformly with replacement and keeps the first maximum-fitness
// one. The same candidate may win several tournaments.
type TournamentSelector struct {
	Size int
}

func (TournamentSelector) Name() string { return "tournament" }

func (TournamentSelector) Applicable(model.Representation) bool { return true }

func (s TournamentSelector) Select(rng *rand.Rand, pop model.Population, n int) ([]model.Candidate, error) {
	if rng == nil {
		return nil, ErrRandRequired
	}
	if len(pop) == 0 {
		return nil, ErrEmptyPopulation
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrSelectionCount, n)
	}
	out := make([]model.Candidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, runTournament(rng, pop, s.Size))
	}
	return out, nil
}

// TournamentUniqueSelector runs tournaments like TournamentSelector but
// rejects duplicate winners, retrying until n distinct candidates have won.
// Callers must keep n <= population size or the loop cannot finish.
type TournamentUniqueSelector struct {
	Size int
}

func (TournamentUniqueSelector) Name() string { return "tournament_no_duplicates" }

func (TournamentUniqueSelector) Applicable(model.Representation) bool { return true }

func (s TournamentUniqueSelector) Select(rng *rand.Rand, pop model.Population, n int) ([]model.Candidate, error) {
	if rng == nil {
		return nil, ErrRandRequired
	}
	if len(pop) == 0 {
		return nil, ErrEmptyPopulation
	}
	if n < 0 || n > len(pop) {
		return nil, fmt.Errorf("%w: n=%d population=%d", ErrSelectionCount, n, len(pop))
	}
	out := make([]model.Candidate, 0, n)
	seen := make(map[string]struct{}, n)
	for len(out) < n {
		winner := runTournament(rng, pop, s.Size)
		if _, dup := seen[winner.ID]; dup {
			continue
		}
		seen[winner.ID] = struct{}{}
		out = append(out, winner)
	}
	return out, nil
}

func runTournament(rng *rand.Rand, pop model.Population, size int) model.Candidate {
	if size <= 0 {
		size = defaultTournamentSize
	}
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < size; i++ {
		candidate := pop[rng.Intn(len(pop))]
		if candidate.Fitness > best.Fitness {
			best = candidate
		}
	}
	return best
}

// RouletteSelector draws n candidates independently, each with probability
// proportional to its fitness. Fitnesses must be non-negative with a positive
// total; a degenerate distribution is reported as an error.
type RouletteSelector struct{}

func (RouletteSelector) Name() string { return "roulette" }

func (RouletteSelector) Applicable(model.Representation) bool { return true }

func (RouletteSelector) Select(rng *rand.Rand, pop model.Population, n int) ([]model.Candidate, error) {
	if rng == nil {
		return nil, ErrRandRequired
	}
	if len(pop) == 0 {
		return nil, ErrEmptyPopulation
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrSelectionCount, n)
	}
	total := pop.TotalFitness()
	if total <= 0 {
		return nil, fmt.Errorf("%w: total=%v", ErrNonPositiveFitness, total)
	}
	out := make([]model.Candidate, 0, n)
	for i := 0; i < n; i++ {
		draw := rng.Float64() * total
		acc := 0.0
		picked := pop[len(pop)-1]
		for _, c := range pop {
			acc += c.Fitness
			if acc > draw {
				picked = c
				break
			}
		}
		out = append(out, picked)
	}
	return out, nil
}
