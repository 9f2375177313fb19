package evo

import (
	"fmt"
	"math/rand"

	"exelixis/internal/model"
)

// SinglePointCrossover splits both parents at one random cut index in
// [1, size] and swaps the tails. The cut is anchored on the declared size but
// clamped to the actual sequence lengths, so parents whose sequences already
// diverged from size still recombine cleanly.
type SinglePointCrossover struct{}

func (SinglePointCrossover) Name() string { return "single_point" }

func (SinglePointCrossover) Applicable(rep model.Representation) bool {
	return rep != model.Permutation
}

func (SinglePointCrossover) Cross(rng *rand.Rand, a, b model.Candidate) (model.Candidate, model.Candidate, error) {
	if rng == nil {
		return model.Candidate{}, model.Candidate{}, ErrRandRequired
	}
	size := a.Size
	if size < 1 {
		return model.Candidate{}, model.Candidate{}, fmt.Errorf("candidate %s has no declared size", a.ID)
	}
	cut := rng.Intn(size) + 1
	if cut > len(a.Genes) {
		cut = len(a.Genes)
	}
	if cut > len(b.Genes) {
		cut = len(b.Genes)
	}

	g1 := make([]float64, 0, len(a.Genes))
	g1 = append(g1, a.Genes[:cut]...)
	g1 = append(g1, b.Genes[cut:]...)

	g2 := make([]float64, 0, len(b.Genes))
	g2 = append(g2, b.Genes[:cut]...)
	g2 = append(g2, a.Genes[cut:]...)

	return model.Child(g1, a.Size), model.Child(g2, b.Size), nil
}

// OrderOneCrossover is the permutation-preserving OX1 operator: a random
// contiguous slice of one parent is kept in place and the remaining positions
// are filled left to right with the other parent's genes, skipping any gene
// already inside the kept slice. Both children keep the full element set of
// their parents with no duplicates.
type OrderOneCrossover struct{}

func (OrderOneCrossover) Name() string { return "order_one" }

func (OrderOneCrossover) Applicable(rep model.Representation) bool {
	return rep == model.Permutation
}

func (OrderOneCrossover) Cross(rng *rand.Rand, a, b model.Candidate) (model.Candidate, model.Candidate, error) {
	if rng == nil {
		return model.Candidate{}, model.Candidate{}, ErrRandRequired
	}
	n := len(a.Genes)
	if n != len(b.Genes) {
		return model.Candidate{}, model.Candidate{}, fmt.Errorf("%w: %d vs %d", ErrParentLengthMismatch, n, len(b.Genes))
	}
	if n == 0 {
		return model.Candidate{}, model.Candidate{}, fmt.Errorf("candidate %s has no genes", a.ID)
	}

	lo, hi := rng.Intn(n), rng.Intn(n)
	if lo > hi {
		lo, hi = hi, lo
	}

	g1 := orderOneChild(a.Genes, b.Genes, lo, hi)
	g2 := orderOneChild(b.Genes, a.Genes, lo, hi)
	return model.Child(g1, a.Size), model.Child(g2, b.Size), nil
}

func orderOneChild(keep, fill []float64, lo, hi int) []float64 {
	n := len(keep)
	child := make([]float64, n)
	inSlice := make(map[float64]struct{}, hi-lo+1)
	for i := lo; i <= hi; i++ {
		child[i] = keep[i]
		inSlice[keep[i]] = struct{}{}
	}
	j := 0
	for i := 0; i < n; i++ {
		if i >= lo && i <= hi {
			continue
		}
		for {
			if _, held := inSlice[fill[j]]; !held {
				break
			}
			j++
		}
		child[i] = fill[j]
		j++
	}
	return child
}

// UniformCrossover keeps each positional allele pair straight with
// probability Rate and swaps it otherwise, independently per position.
type UniformCrossover struct {
	Rate float64
}

func (UniformCrossover) Name() string { return "uniform" }

func (UniformCrossover) Applicable(rep model.Representation) bool {
	return rep != model.Permutation
}

func (x UniformCrossover) Cross(rng *rand.Rand, a, b model.Candidate) (model.Candidate, model.Candidate, error) {
	if rng == nil {
		return model.Candidate{}, model.Candidate{}, ErrRandRequired
	}
	if x.Rate < 0 || x.Rate > 1 {
		return model.Candidate{}, model.Candidate{}, fmt.Errorf("%w: rate=%v", ErrRateRange, x.Rate)
	}
	n := len(a.Genes)
	if n != len(b.Genes) {
		return model.Candidate{}, model.Candidate{}, fmt.Errorf("%w: %d vs %d", ErrParentLengthMismatch, n, len(b.Genes))
	}

	g1 := make([]float64, n)
	g2 := make([]float64, n)
	for i := 0; i < n; i++ {
		if rng.Float64() < x.Rate {
			g1[i], g2[i] = a.Genes[i], b.Genes[i]
		} else {
			g1[i], g2[i] = b.Genes[i], a.Genes[i]
		}
	}
	return model.Child(g1, a.Size), model.Child(g2, b.Size), nil
}

// WholeArithmeticCrossover blends real-valued genes linearly with parameter
// Alpha: child1 = alpha*x + (1-alpha)*y and child2 the mirror blend.
type WholeArithmeticCrossover struct {
	Alpha float64
}

func (WholeArithmeticCrossover) Name() string { return "whole_arithmetic" }

func (WholeArithmeticCrossover) Applicable(rep model.Representation) bool {
	return rep == model.Real
}

func (x WholeArithmeticCrossover) Cross(rng *rand.Rand, a, b model.Candidate) (model.Candidate, model.Candidate, error) {
	if x.Alpha < 0 || x.Alpha > 1 {
		return model.Candidate{}, model.Candidate{}, fmt.Errorf("%w: alpha=%v", ErrAlphaRange, x.Alpha)
	}
	n := len(a.Genes)
	if n != len(b.Genes) {
		return model.Candidate{}, model.Candidate{}, fmt.Errorf("%w: %d vs %d", ErrParentLengthMismatch, n, len(b.Genes))
	}

	g1 := make([]float64, n)
	g2 := make([]float64, n)
	for i := 0; i < n; i++ {
		g1[i] = x.Alpha*a.Genes[i] + (1-x.Alpha)*b.Genes[i]
		g2[i] = (1-x.Alpha)*a.Genes[i] + x.Alpha*b.Genes[i]
	}
	return model.Child(g1, a.Size), model.Child(g2, b.Size), nil
}
