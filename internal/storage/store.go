package storage

import (
	"context"

	"exelixis/internal/genealogy"
	"exelixis/internal/model"
)

// Store persists finished runs: the run record itself, its per-generation
// statistics series and its genealogy graph. Gets return ok=false for
// missing records rather than an error.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, id string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]model.RunRecord, error)
	SaveStats(ctx context.Context, runID string, series []model.GenerationStats) error
	GetStats(ctx context.Context, runID string) ([]model.GenerationStats, bool, error)
	SaveGenealogy(ctx context.Context, runID string, graph genealogy.Graph) error
	GetGenealogy(ctx context.Context, runID string) (genealogy.Graph, bool, error)
}
