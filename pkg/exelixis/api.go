package exelixis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"exelixis/internal/evo"
	"exelixis/internal/genealogy"
	"exelixis/internal/model"
	"exelixis/internal/problem"
	"exelixis/internal/storage"
)

const defaultDBPath = "exelixis.db"

type Options struct {
	StoreKind string
	DBPath    string
}

// Client is the embedding surface for running and inspecting evolutionary
// runs with named problems and strategies, archived in a store.
type Client struct {
	store storage.Store
}

// RunRequest names the problem and the operator strategies for one run.
// Zero-valued fields fall back to the engine defaults.
type RunRequest struct {
	RunID          string
	Problem        string
	ProblemSize    int
	PopulationSize int
	Selection      string
	SelectionRate  float64
	TournamentSize int
	Crossover      string
	Alpha          float64
	UniformRate    float64
	Mutation       string
	MutationRate   float64
	Reinsertion    string
	SurvivalRate   float64
	Seed           int64
}

type RunSummary struct {
	RunID       string
	Problem     string
	Generations int
	BestFitness float64
	Best        model.Candidate
}

func New(opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// Run resolves the request into a configured engine, evolves to termination
// and archives the run record, statistics series and genealogy graph.
func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	if req.Problem == "" {
		return RunSummary{}, errors.New("problem name is required")
	}
	prob, err := problem.Resolve(req.Problem, req.ProblemSize)
	if err != nil {
		return RunSummary{}, err
	}

	cfg, err := configFromRequest(req)
	if err != nil {
		return RunSummary{}, err
	}

	engine, err := evo.New(prob, cfg)
	if err != nil {
		return RunSummary{}, err
	}

	best, err := engine.Run(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	series := engine.Stats().Series()
	generations := len(series)

	run := storage.Versioned(model.RunRecord{
		ID:           runID,
		CreatedAtUTC: time.Now().UTC().Format(time.RFC3339),
		Problem:      prob.Name(),
		Config:       configSnapshot(engine.Config()),
		Generations:  generations,
		Best:         best,
	})
	if err := c.store.SaveRun(ctx, run); err != nil {
		return RunSummary{}, fmt.Errorf("archive run %s: %w", runID, err)
	}
	if err := c.store.SaveStats(ctx, runID, series); err != nil {
		return RunSummary{}, fmt.Errorf("archive stats for run %s: %w", runID, err)
	}
	if err := c.store.SaveGenealogy(ctx, runID, engine.Genealogy().Export()); err != nil {
		return RunSummary{}, fmt.Errorf("archive genealogy for run %s: %w", runID, err)
	}

	return RunSummary{
		RunID:       runID,
		Problem:     prob.Name(),
		Generations: generations,
		BestFitness: best.Fitness,
		Best:        best,
	}, nil
}

func (c *Client) Runs(ctx context.Context) ([]model.RunRecord, error) {
	return c.store.ListRuns(ctx)
}

func (c *Client) Stats(ctx context.Context, runID string) ([]model.GenerationStats, error) {
	series, ok, err := c.store.GetStats(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no stats recorded for run %s", runID)
	}
	return series, nil
}

func (c *Client) Genealogy(ctx context.Context, runID string) (genealogy.Graph, error) {
	graph, ok, err := c.store.GetGenealogy(ctx, runID)
	if err != nil {
		return genealogy.Graph{}, err
	}
	if !ok {
		return genealogy.Graph{}, fmt.Errorf("no genealogy recorded for run %s", runID)
	}
	return graph, nil
}

// Problems lists the registered problem names.
func (c *Client) Problems() []string {
	return problem.Names()
}

func configFromRequest(req RunRequest) (evo.Config, error) {
	cfg := evo.DefaultConfig()
	if req.PopulationSize != 0 {
		cfg.PopulationSize = req.PopulationSize
	}
	if req.SelectionRate != 0 {
		cfg.SelectionRate = req.SelectionRate
	}
	if req.MutationRate != 0 {
		cfg.MutationRate = req.MutationRate
	}
	cfg.Seed = req.Seed

	selector, err := selectorFromName(req.Selection, req.TournamentSize)
	if err != nil {
		return evo.Config{}, err
	}
	if selector != nil {
		cfg.Selector = selector
	}
	crossover, err := crossoverFromName(req.Crossover, req.Alpha, req.UniformRate)
	if err != nil {
		return evo.Config{}, err
	}
	if crossover != nil {
		cfg.Crossover = crossover
	}
	mutator, err := mutatorFromName(req.Mutation)
	if err != nil {
		return evo.Config{}, err
	}
	if mutator != nil {
		cfg.Mutator = mutator
	}
	reinserter, err := reinserterFromName(req.Reinsertion, req.SurvivalRate)
	if err != nil {
		return evo.Config{}, err
	}
	if reinserter != nil {
		cfg.Reinserter = reinserter
	}
	return cfg, nil
}

func selectorFromName(name string, tournamentSize int) (evo.Selector, error) {
	switch name {
	case "":
		return nil, nil
	case "elite":
		return evo.EliteSelector{}, nil
	case "random":
		return evo.RandomSelector{}, nil
	case "tournament":
		return evo.TournamentSelector{Size: tournamentSize}, nil
	case "tournament_no_duplicates":
		return evo.TournamentUniqueSelector{Size: tournamentSize}, nil
	case "roulette":
		return evo.RouletteSelector{}, nil
	default:
		return nil, fmt.Errorf("unknown selection strategy: %s", name)
	}
}

func crossoverFromName(name string, alpha, rate float64) (evo.Crossover, error) {
	switch name {
	case "":
		return nil, nil
	case "single_point":
		return evo.SinglePointCrossover{}, nil
	case "order_one":
		return evo.OrderOneCrossover{}, nil
	case "uniform":
		return evo.UniformCrossover{Rate: rate}, nil
	case "whole_arithmetic":
		return evo.WholeArithmeticCrossover{Alpha: alpha}, nil
	default:
		return nil, fmt.Errorf("unknown crossover strategy: %s", name)
	}
}

func mutatorFromName(name string) (evo.Mutator, error) {
	switch name {
	case "":
		return nil, nil
	case "flip":
		return evo.FlipMutator{}, nil
	case "scramble":
		return evo.ScrambleMutator{}, nil
	case "gaussian":
		return evo.GaussianMutator{}, nil
	default:
		return nil, fmt.Errorf("unknown mutation strategy: %s", name)
	}
}

func reinserterFromName(name string, survivalRate float64) (evo.Reinserter, error) {
	switch name {
	case "":
		return nil, nil
	case "pure":
		return evo.PureReinserter{}, nil
	case "elitist":
		return evo.ElitistReinserter{SurvivalRate: survivalRate}, nil
	case "uniform":
		return evo.UniformReinserter{SurvivalRate: survivalRate}, nil
	default:
		return nil, fmt.Errorf("unknown reinsertion strategy: %s", name)
	}
}

func configSnapshot(cfg evo.Config) model.RunConfig {
	snapshot := model.RunConfig{
		PopulationSize: cfg.PopulationSize,
		SelectionRate:  cfg.SelectionRate,
		MutationRate:   cfg.MutationRate,
		Seed:           cfg.Seed,
	}
	if cfg.Selector != nil {
		snapshot.Selection = cfg.Selector.Name()
	}
	if cfg.Crossover != nil {
		snapshot.Crossover = cfg.Crossover.Name()
	}
	if cfg.Mutator != nil {
		snapshot.Mutation = cfg.Mutator.Name()
	}
	if cfg.Reinserter != nil {
		snapshot.Reinsertion = cfg.Reinserter.Name()
	}
	switch r := cfg.Reinserter.(type) {
	case evo.ElitistReinserter:
		snapshot.SurvivalRate = r.SurvivalRate
	case evo.UniformReinserter:
		snapshot.SurvivalRate = r.SurvivalRate
	}
	return snapshot
}
