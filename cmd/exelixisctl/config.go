package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	api "exelixis/pkg/exelixis"
)

// runFileConfig mirrors api.RunRequest for TOML run files.
type runFileConfig struct {
	RunID          string  `toml:"run_id"`
	Problem        string  `toml:"problem"`
	ProblemSize    int     `toml:"problem_size"`
	PopulationSize int     `toml:"population_size"`
	Selection      string  `toml:"selection"`
	SelectionRate  float64 `toml:"selection_rate"`
	TournamentSize int     `toml:"tournament_size"`
	Crossover      string  `toml:"crossover"`
	Alpha          float64 `toml:"alpha"`
	UniformRate    float64 `toml:"uniform_rate"`
	Mutation       string  `toml:"mutation"`
	MutationRate   float64 `toml:"mutation_rate"`
	Reinsertion    string  `toml:"reinsertion"`
	SurvivalRate   float64 `toml:"survival_rate"`
	Seed           int64   `toml:"seed"`
}

func loadRunRequest(path string) (api.RunRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return api.RunRequest{}, fmt.Errorf("load run config: %w", err)
	}
	defer f.Close()

	var cfg runFileConfig
	if _, err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return api.RunRequest{}, fmt.Errorf("decode run config %s: %w", path, err)
	}

	return api.RunRequest{
		RunID:          cfg.RunID,
		Problem:        cfg.Problem,
		ProblemSize:    cfg.ProblemSize,
		PopulationSize: cfg.PopulationSize,
		Selection:      cfg.Selection,
		SelectionRate:  cfg.SelectionRate,
		TournamentSize: cfg.TournamentSize,
		Crossover:      cfg.Crossover,
		Alpha:          cfg.Alpha,
		UniformRate:    cfg.UniformRate,
		Mutation:       cfg.Mutation,
		MutationRate:   cfg.MutationRate,
		Reinsertion:    cfg.Reinsertion,
		SurvivalRate:   cfg.SurvivalRate,
		Seed:           cfg.Seed,
	}, nil
}
