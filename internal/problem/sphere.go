package problem

import (
	"math/rand"

	"exelixis/internal/model"
)

const (
	defaultSphereDimensions  = 10
	defaultSphereBound       = 5.12
	defaultSphereGenerations = 200
)

func init() {
	mustRegister("sphere", func(size int) Problem {
		if size <= 0 {
			size = defaultSphereDimensions
		}
		return Sphere{Dimensions: size, Bound: defaultSphereBound, MaxGenerations: defaultSphereGenerations}
	})
}

// Sphere is a real-valued minimization benchmark expressed as maximization:
// fitness is the negated sum of squares, so the optimum sits at zero. The run
// stops after MaxGenerations.
type Sphere struct {
	Dimensions     int
	Bound          float64
	MaxGenerations int
}

func (Sphere) Name() string { return "sphere" }

func (Sphere) Representation() model.Representation { return model.Real }

func (p Sphere) Genotype(rng *rand.Rand) model.Candidate {
	genes := make([]float64, p.Dimensions)
	for i := range genes {
		genes[i] = (rng.Float64()*2 - 1) * p.Bound
	}
	return model.NewCandidate(genes)
}

func (Sphere) Fitness(c model.Candidate) float64 {
	sum := 0.0
	for _, g := range c.Genes {
		sum += g * g
	}
	return -sum
}

func (p Sphere) Terminate(_ model.Population, generation int) bool {
	return generation >= p.MaxGenerations
}
