package model

import (
	"fmt"

	"github.com/google/uuid"
	cp "github.com/jinzhu/copier"
)

// Representation tags the gene encoding a problem uses. Operators declare
// which representations they can act on and the engine rejects mismatched
// operator/problem pairings at construction time.
type Representation int

const (
	Binary Representation = iota
	Integer
	Real
	Permutation
)

func (r Representation) String() string {
	switch r {
	case Binary:
		return "binary"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Permutation:
		return "permutation"
	default:
		return fmt.Sprintf("representation(%d)", int(r))
	}
}

// Candidate is one encoded solution. Candidates are value records: operators
// never mutate one in place, they build a fresh Candidate under a new ID.
type Candidate struct {
	ID      string    `json:"id"`
	Genes   []float64 `json:"genes"`
	Size    int       `json:"size"`
	Fitness float64   `json:"fitness"`
	Age     int       `json:"age"`
}

// NewCandidate wraps a gene sequence in a candidate with a fresh ID, the
// declared size set to the sequence length, zero fitness and zero age.
func NewCandidate(genes []float64) Candidate {
	return Candidate{
		ID:    uuid.New().String(),
		Genes: genes,
		Size:  len(genes),
	}
}

// Clone deep-copies the candidate, ID included.
func (c Candidate) Clone() Candidate {
	var out Candidate
	_ = cp.CopyWithOption(&out, &c, cp.Option{DeepCopy: true})
	return out
}

// Child builds an offspring candidate from a gene sequence: fresh ID, the
// given declared size, fitness and age reset to zero.
func Child(genes []float64, size int) Candidate {
	return Candidate{
		ID:    uuid.New().String(),
		Genes: genes,
		Size:  size,
	}
}
