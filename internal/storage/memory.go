package storage

import (
	"context"
	"sort"
	"sync"

	"exelixis/internal/genealogy"
	"exelixis/internal/model"
)

type MemoryStore struct {
	mu        sync.RWMutex
	runs      map[string]model.RunRecord
	stats     map[string][]model.GenerationStats
	genealogy map[string]genealogy.Graph
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = make(map[string]model.RunRecord)
	s.stats = make(map[string][]model.GenerationStats)
	s.genealogy = make(map[string]genealogy.Graph)
	return nil
}

func (s *MemoryStore) SaveRun(_ context.Context, run model.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[run.ID] = run
	return nil
}

func (s *MemoryStore) GetRun(_ context.Context, id string) (model.RunRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	return run, ok, nil
}

func (s *MemoryStore) ListRuns(_ context.Context) ([]model.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RunRecord, 0, len(s.runs))
	for _, run := range s.runs {
		out = append(out, run)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAtUTC != out[j].CreatedAtUTC {
			return out[i].CreatedAtUTC < out[j].CreatedAtUTC
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) SaveStats(_ context.Context, runID string, series []model.GenerationStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]model.GenerationStats, len(series))
	copy(stored, series)
	s.stats[runID] = stored
	return nil
}

func (s *MemoryStore) GetStats(_ context.Context, runID string) ([]model.GenerationStats, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	series, ok := s.stats[runID]
	if !ok {
		return nil, false, nil
	}
	out := make([]model.GenerationStats, len(series))
	copy(out, series)
	return out, true, nil
}

func (s *MemoryStore) SaveGenealogy(_ context.Context, runID string, graph genealogy.Graph) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.genealogy[runID] = graph
	return nil
}

func (s *MemoryStore) GetGenealogy(_ context.Context, runID string) (genealogy.Graph, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	graph, ok := s.genealogy[runID]
	return graph, ok, nil
}
