package model

import "sort"

// Population is the ordered collection the engine operates on. Order is only
// meaningful after evaluation, when it is descending by fitness.
type Population []Candidate

// SortByFitness returns a copy of the population stably sorted by descending
// fitness. Equal-fitness candidates keep their relative input order.
func (p Population) SortByFitness() Population {
	out := make(Population, len(p))
	copy(out, p)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Fitness > out[j].Fitness
	})
	return out
}

// Best returns the maximum-fitness candidate. For an evaluated population
// that is the first element; for any other order the slice is scanned.
func (p Population) Best() (Candidate, bool) {
	if len(p) == 0 {
		return Candidate{}, false
	}
	best := p[0]
	for _, c := range p[1:] {
		if c.Fitness > best.Fitness {
			best = c
		}
	}
	return best, true
}

// TotalFitness sums the fitness of every member.
func (p Population) TotalFitness() float64 {
	total := 0.0
	for _, c := range p {
		total += c.Fitness
	}
	return total
}

// MeanFitness is the arithmetic mean of member fitnesses, zero when empty.
func (p Population) MeanFitness() float64 {
	if len(p) == 0 {
		return 0
	}
	return p.TotalFitness() / float64(len(p))
}

// MinFitness returns the minimum fitness over the population, zero when empty.
func (p Population) MinFitness() float64 {
	if len(p) == 0 {
		return 0
	}
	min := p[0].Fitness
	for _, c := range p[1:] {
		if c.Fitness < min {
			min = c.Fitness
		}
	}
	return min
}

// MaxFitness returns the maximum fitness over the population, zero when empty.
func (p Population) MaxFitness() float64 {
	if len(p) == 0 {
		return 0
	}
	max := p[0].Fitness
	for _, c := range p[1:] {
		if c.Fitness > max {
			max = c.Fitness
		}
	}
	return max
}

// Without returns the members whose IDs do not appear in excluded, keeping
// the receiver's order. It is the leftover computation: population minus the
// selected parents, deduplicated by candidate identity.
func (p Population) Without(excluded []Candidate) Population {
	ids := make(map[string]struct{}, len(excluded))
	for _, c := range excluded {
		ids[c.ID] = struct{}{}
	}
	out := make(Population, 0, len(p))
	for _, c := range p {
		if _, ok := ids[c.ID]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// Contains reports whether a candidate with the given ID is a member.
func (p Population) Contains(id string) bool {
	for _, c := range p {
		if c.ID == id {
			return true
		}
	}
	return false
}
