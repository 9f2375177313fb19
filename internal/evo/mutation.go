package evo

import (
	"math"
	"math/rand"

	"exelixis/internal/model"
)

// FlipMutator complements every gene of a {0,1}-encoded candidate.
// Applying it twice restores the original sequence.
type FlipMutator struct{}

func (FlipMutator) Name() string { return "flip" }

func (FlipMutator) Applicable(rep model.Representation) bool {
	return rep == model.Binary
}

func (FlipMutator) Mutate(_ *rand.Rand, c model.Candidate) (model.Candidate, error) {
	genes := make([]float64, len(c.Genes))
	for i, g := range c.Genes {
		genes[i] = 1 - g
	}
	return model.Child(genes, c.Size), nil
}

// ScrambleMutator rearranges the existing genes into a uniformly random
// order; the gene multiset is untouched.
type ScrambleMutator struct{}

func (ScrambleMutator) Name() string { return "scramble" }

func (ScrambleMutator) Applicable(model.Representation) bool { return true }

func (ScrambleMutator) Mutate(rng *rand.Rand, c model.Candidate) (model.Candidate, error) {
	if rng == nil {
		return model.Candidate{}, ErrRandRequired
	}
	genes := make([]float64, len(c.Genes))
	for i, idx := range rng.Perm(len(c.Genes)) {
		genes[i] = c.Genes[idx]
	}
	return model.Child(genes, c.Size), nil
}

// GaussianMutator redraws every gene from a normal distribution whose mean
// and variance come from the candidate's own gene sequence (the variance is
// the biased mean squared deviation). Deriving the distribution from the
// single candidate keeps the operator self-contained and stateless. A
// single-gene candidate has zero variance and keeps its mean exactly.
type GaussianMutator struct{}

func (GaussianMutator) Name() string { return "gaussian" }

func (GaussianMutator) Applicable(rep model.Representation) bool {
	return rep == model.Real
}

func (GaussianMutator) Mutate(rng *rand.Rand, c model.Candidate) (model.Candidate, error) {
	if rng == nil {
		return model.Candidate{}, ErrRandRequired
	}
	n := len(c.Genes)
	if n == 0 {
		return model.Child(nil, c.Size), nil
	}

	mu := 0.0
	for _, g := range c.Genes {
		mu += g
	}
	mu /= float64(n)

	variance := 0.0
	for _, g := range c.Genes {
		d := g - mu
		variance += d * d
	}
	variance /= float64(n)
	stddev := math.Sqrt(variance)

	genes := make([]float64, n)
	for i := range genes {
		genes[i] = mu + stddev*rng.NormFloat64()
	}
	return model.Child(genes, c.Size), nil
}
