package genealogy

import (
	"fmt"
	"sync"

	"exelixis/internal/model"
)

// Vertex is one candidate in the derivation graph, tagged with the
// generation it first appeared in.
type Vertex struct {
	Candidate  model.Candidate `json:"candidate"`
	Generation int             `json:"generation"`
}

// Edge records that the candidate From is a genetic source of To.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Graph is an exported snapshot of the tracker. Vertices appear in insertion
// order, so initial candidates come first.
type Graph struct {
	Vertices []Vertex `json:"vertices"`
	Edges    []Edge   `json:"edges"`
}

// Tracker accumulates parent-to-child derivation edges across a run. Vertices
// and edges are only ever added, never removed. The evolution driver is the
// single writer; Export may be called concurrently at any inspection point.
type Tracker struct {
	mu       sync.RWMutex
	order    []string
	vertices map[string]Vertex
	edges    []Edge
}

func NewTracker() *Tracker {
	return &Tracker{vertices: make(map[string]Vertex)}
}

// RegisterInitial adds the generation-0 candidates as vertices with no
// incoming edges.
func (t *Tracker) RegisterInitial(candidates []model.Candidate) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, c := range candidates {
		t.addVertex(c, 0)
	}
}

// AddDerivation records a child vertex and one edge from each parent to it.
// Mutation passes a single parent, crossover passes both.
func (t *Tracker) AddDerivation(parents []model.Candidate, child model.Candidate, generation int) error {
	if len(parents) < 1 || len(parents) > 2 {
		return fmt.Errorf("derivation requires one or two parents, got %d", len(parents))
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.addVertex(child, generation)
	for _, p := range parents {
		t.edges = append(t.edges, Edge{From: p.ID, To: child.ID})
	}
	return nil
}

func (t *Tracker) addVertex(c model.Candidate, generation int) {
	if _, ok := t.vertices[c.ID]; ok {
		return
	}
	t.order = append(t.order, c.ID)
	t.vertices[c.ID] = Vertex{Candidate: c.Clone(), Generation: generation}
}

// Export returns a deep-copied snapshot of the full graph.
func (t *Tracker) Export() Graph {
	t.mu.RLock()
	defer t.mu.RUnlock()

	g := Graph{
		Vertices: make([]Vertex, 0, len(t.order)),
		Edges:    make([]Edge, len(t.edges)),
	}
	for _, id := range t.order {
		v := t.vertices[id]
		g.Vertices = append(g.Vertices, Vertex{Candidate: v.Candidate.Clone(), Generation: v.Generation})
	}
	copy(g.Edges, t.edges)
	return g
}

// InDegrees counts incoming edges per vertex ID over the whole graph.
func (g Graph) InDegrees() map[string]int {
	out := make(map[string]int, len(g.Vertices))
	for _, v := range g.Vertices {
		out[v.Candidate.ID] = 0
	}
	for _, e := range g.Edges {
		out[e.To]++
	}
	return out
}
