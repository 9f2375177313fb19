package problem

import (
	"math/rand"

	"exelixis/internal/model"
)

const defaultOneMaxLength = 42

func init() {
	mustRegister("onemax", func(size int) Problem {
		if size <= 0 {
			size = defaultOneMaxLength
		}
		return OneMax{Length: size}
	})
}

func mustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// OneMax is the classic binary benchmark: fitness counts the one-bits and
// the run stops when a candidate is all ones.
type OneMax struct {
	Length int
}

func (OneMax) Name() string { return "onemax" }

func (OneMax) Representation() model.Representation { return model.Binary }

func (p OneMax) Genotype(rng *rand.Rand) model.Candidate {
	genes := make([]float64, p.Length)
	for i := range genes {
		genes[i] = float64(rng.Intn(2))
	}
	return model.NewCandidate(genes)
}

func (OneMax) Fitness(c model.Candidate) float64 {
	sum := 0.0
	for _, g := range c.Genes {
		sum += g
	}
	return sum
}

func (p OneMax) Terminate(pop model.Population, _ int) bool {
	best, ok := pop.Best()
	return ok && best.Fitness == float64(p.Length)
}
