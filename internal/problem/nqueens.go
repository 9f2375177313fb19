package problem

import (
	"math"
	"math/rand"

	"exelixis/internal/model"
)

const defaultBoardSize = 8

func init() {
	mustRegister("nqueens", func(size int) Problem {
		if size <= 0 {
			size = defaultBoardSize
		}
		return NQueens{N: size}
	})
}

// NQueens encodes a board as a permutation: gene i is the row of the queen
// in column i. The permutation rules out row and column attacks, so fitness
// counts the queen pairs that do not share a diagonal; a full board scores
// N*(N-1)/2 and terminates the run.
type NQueens struct {
	N int
	// MaxGenerations stops the run even without a solution; zero means
	// unbounded.
	MaxGenerations int
}

func (NQueens) Name() string { return "nqueens" }

func (NQueens) Representation() model.Representation { return model.Permutation }

func (p NQueens) Genotype(rng *rand.Rand) model.Candidate {
	genes := make([]float64, p.N)
	for i, row := range rng.Perm(p.N) {
		genes[i] = float64(row)
	}
	return model.NewCandidate(genes)
}

func (p NQueens) Fitness(c model.Candidate) float64 {
	n := len(c.Genes)
	conflicts := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(c.Genes[i]-c.Genes[j]) == float64(j-i) {
				conflicts++
			}
		}
	}
	return float64(p.targetPairs() - conflicts)
}

func (p NQueens) Terminate(pop model.Population, generation int) bool {
	if p.MaxGenerations > 0 && generation >= p.MaxGenerations {
		return true
	}
	best, ok := pop.Best()
	return ok && best.Fitness == float64(p.targetPairs())
}

func (p NQueens) targetPairs() int {
	return p.N * (p.N - 1) / 2
}
