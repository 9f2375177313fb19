package problem

import (
	"math/rand"
	"testing"

	"exelixis/internal/model"
)

func TestOneMaxGenotypeIsBinary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := OneMax{Length: 32}

	c := p.Genotype(rng)
	if len(c.Genes) != 32 {
		t.Fatalf("genotype length %d, want 32", len(c.Genes))
	}
	for i, g := range c.Genes {
		if g != 0 && g != 1 {
			t.Fatalf("gene %d is %v, want 0 or 1", i, g)
		}
	}
}

func TestOneMaxFitnessCountsOnes(t *testing.T) {
	p := OneMax{Length: 6}
	c := model.NewCandidate([]float64{1, 0, 1, 1, 0, 1})

	if got := p.Fitness(c); got != 4 {
		t.Fatalf("fitness %v, want 4", got)
	}
}

func TestOneMaxTerminatesOnAllOnes(t *testing.T) {
	p := OneMax{Length: 3}

	solved := model.NewCandidate([]float64{1, 1, 1})
	solved.Fitness = p.Fitness(solved)
	partial := model.NewCandidate([]float64{1, 1, 0})
	partial.Fitness = p.Fitness(partial)

	if !p.Terminate(model.Population{solved, partial}, 5) {
		t.Fatal("all-ones best must terminate")
	}
	if p.Terminate(model.Population{partial}, 5) {
		t.Fatal("partial best must not terminate")
	}
	if p.Terminate(model.Population{}, 0) {
		t.Fatal("empty population must not terminate")
	}
}
