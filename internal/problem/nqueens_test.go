package problem

import (
	"math/rand"
	"testing"

	"exelixis/internal/model"
)

func TestNQueensGenotypeIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	p := NQueens{N: 8}

	for trial := 0; trial < 20; trial++ {
		c := p.Genotype(rng)
		if len(c.Genes) != 8 {
			t.Fatalf("genotype length %d, want 8", len(c.Genes))
		}
		seen := make(map[float64]bool, 8)
		for _, g := range c.Genes {
			if g < 0 || g > 7 || g != float64(int(g)) {
				t.Fatalf("gene %v outside 0..7", g)
			}
			if seen[g] {
				t.Fatalf("duplicate row %v in %v", g, c.Genes)
			}
			seen[g] = true
		}
	}
}

func TestNQueensFitnessOnKnownBoards(t *testing.T) {
	p := NQueens{N: 8}

	// A known solution: no two queens share a diagonal.
	solution := model.NewCandidate([]float64{2, 4, 6, 0, 3, 1, 7, 5})
	if got := p.Fitness(solution); got != 28 {
		t.Fatalf("solution fitness %v, want 28", got)
	}

	// The main diagonal: every pair conflicts.
	diagonal := model.NewCandidate([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	if got := p.Fitness(diagonal); got != 0 {
		t.Fatalf("diagonal fitness %v, want 0", got)
	}
}

func TestNQueensTerminate(t *testing.T) {
	p := NQueens{N: 4}

	solved := model.NewCandidate([]float64{1, 3, 0, 2})
	solved.Fitness = p.Fitness(solved)
	if solved.Fitness != 6 {
		t.Fatalf("solved board fitness %v, want 6", solved.Fitness)
	}
	if !p.Terminate(model.Population{solved}, 1) {
		t.Fatal("solved board must terminate")
	}

	flawed := model.NewCandidate([]float64{0, 1, 2, 3})
	flawed.Fitness = p.Fitness(flawed)
	if p.Terminate(model.Population{flawed}, 1) {
		t.Fatal("conflicted board must not terminate")
	}

	capped := NQueens{N: 4, MaxGenerations: 10}
	if !capped.Terminate(model.Population{flawed}, 10) {
		t.Fatal("generation cap must terminate")
	}
	if capped.Terminate(model.Population{flawed}, 9) {
		t.Fatal("below the cap the run must continue")
	}
}
