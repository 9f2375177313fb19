package genealogy

import (
	"testing"

	"exelixis/internal/model"
)

func candidates(n int) []model.Candidate {
	out := make([]model.Candidate, n)
	for i := range out {
		out[i] = model.NewCandidate([]float64{float64(i)})
	}
	return out
}

func TestRegisterInitialAddsVerticesWithoutEdges(t *testing.T) {
	tr := NewTracker()
	initial := candidates(3)
	tr.RegisterInitial(initial)

	graph := tr.Export()
	if len(graph.Vertices) != 3 {
		t.Fatalf("graph has %d vertices, want 3", len(graph.Vertices))
	}
	if len(graph.Edges) != 0 {
		t.Fatalf("graph has %d edges, want 0", len(graph.Edges))
	}
	for i, v := range graph.Vertices {
		if v.Candidate.ID != initial[i].ID {
			t.Fatal("vertices lost insertion order")
		}
		if v.Generation != 0 {
			t.Fatalf("initial vertex tagged generation %d", v.Generation)
		}
	}
}

func TestAddDerivationSingleAndDualParent(t *testing.T) {
	tr := NewTracker()
	initial := candidates(2)
	tr.RegisterInitial(initial)

	mutant := model.NewCandidate([]float64{9})
	if err := tr.AddDerivation([]model.Candidate{initial[0]}, mutant, 1); err != nil {
		t.Fatalf("single-parent derivation: %v", err)
	}

	child := model.NewCandidate([]float64{8})
	if err := tr.AddDerivation([]model.Candidate{initial[0], initial[1]}, child, 1); err != nil {
		t.Fatalf("dual-parent derivation: %v", err)
	}

	graph := tr.Export()
	if len(graph.Vertices) != 4 {
		t.Fatalf("graph has %d vertices, want 4", len(graph.Vertices))
	}
	degrees := graph.InDegrees()
	if degrees[mutant.ID] != 1 {
		t.Fatalf("mutant in-degree %d, want 1", degrees[mutant.ID])
	}
	if degrees[child.ID] != 2 {
		t.Fatalf("child in-degree %d, want 2", degrees[child.ID])
	}
	if degrees[initial[0].ID] != 0 || degrees[initial[1].ID] != 0 {
		t.Fatal("initial vertices gained incoming edges")
	}
}

func TestAddDerivationRejectsBadParentCount(t *testing.T) {
	tr := NewTracker()
	child := model.NewCandidate([]float64{1})

	if err := tr.AddDerivation(nil, child, 1); err == nil {
		t.Fatal("zero parents must be rejected")
	}
	if err := tr.AddDerivation(candidates(3), child, 1); err == nil {
		t.Fatal("three parents must be rejected")
	}
}

func TestEdgesAccumulateMonotonically(t *testing.T) {
	tr := NewTracker()
	initial := candidates(2)
	tr.RegisterInitial(initial)

	prev := 0
	parent := initial[0]
	for i := 0; i < 5; i++ {
		child := model.NewCandidate([]float64{float64(i)})
		if err := tr.AddDerivation([]model.Candidate{parent}, child, i+1); err != nil {
			t.Fatalf("derivation %d: %v", i, err)
		}
		edges := len(tr.Export().Edges)
		if edges != prev+1 {
			t.Fatalf("edge count %d after derivation %d, want %d", edges, i, prev+1)
		}
		prev = edges
		parent = child
	}
}

func TestExportIsASnapshot(t *testing.T) {
	tr := NewTracker()
	initial := candidates(1)
	tr.RegisterInitial(initial)

	graph := tr.Export()
	graph.Vertices[0].Candidate.Genes[0] = 99
	graph.Edges = append(graph.Edges, Edge{From: "x", To: "y"})

	fresh := tr.Export()
	if fresh.Vertices[0].Candidate.Genes[0] != 0 {
		t.Fatal("mutating an exported vertex leaked into the tracker")
	}
	if len(fresh.Edges) != 0 {
		t.Fatal("appending to an exported edge list leaked into the tracker")
	}
}
