package exelixis

import (
	"context"
	"testing"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(Options{StoreKind: "memory"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return client
}

func TestClientRunArchivesEverything(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	summary, err := client.Run(ctx, RunRequest{
		RunID:        "run-1",
		Problem:      "onemax",
		ProblemSize:  8,
		Reinsertion:  "elitist",
		SurvivalRate: 0.2,
		Seed:         42,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.RunID != "run-1" || summary.Problem != "onemax" {
		t.Fatalf("summary mismatch: %+v", summary)
	}
	if summary.BestFitness != 8 {
		t.Fatalf("best fitness %v, want 8", summary.BestFitness)
	}
	if summary.Generations < 1 {
		t.Fatalf("generations %d, want at least 1", summary.Generations)
	}

	runs, err := client.Runs(ctx)
	if err != nil {
		t.Fatalf("runs: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != "run-1" {
		t.Fatalf("archived runs: %+v", runs)
	}
	if runs[0].Config.PopulationSize != 100 || runs[0].Config.Selection != "elite" {
		t.Fatalf("config snapshot: %+v", runs[0].Config)
	}
	if runs[0].Config.Seed != 42 {
		t.Fatalf("seed %d, want 42", runs[0].Config.Seed)
	}
	if runs[0].Best.Fitness != 8 {
		t.Fatalf("archived best fitness %v, want 8", runs[0].Best.Fitness)
	}

	series, err := client.Stats(ctx, "run-1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(series) != summary.Generations {
		t.Fatalf("stats length %d, want %d", len(series), summary.Generations)
	}
	last := series[len(series)-1].Metrics
	if last["max_fitness"] != 8 {
		t.Fatalf("final max_fitness %v, want 8", last["max_fitness"])
	}

	graph, err := client.Genealogy(ctx, "run-1")
	if err != nil {
		t.Fatalf("genealogy: %v", err)
	}
	if len(graph.Vertices) < 100 {
		t.Fatalf("genealogy vertices %d, want at least the initial population", len(graph.Vertices))
	}
}

func TestClientRunAssignsRunID(t *testing.T) {
	client := newTestClient(t)

	summary, err := client.Run(context.Background(), RunRequest{
		Problem:        "sphere",
		ProblemSize:    3,
		PopulationSize: 20,
		Crossover:      "whole_arithmetic",
		Alpha:          0.5,
		Mutation:       "gaussian",
		Seed:           7,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.RunID == "" {
		t.Fatal("run id must be assigned")
	}
	// Generations 0 through 200 are all recorded before the cap fires.
	if summary.Generations != 201 {
		t.Fatalf("generations %d, want 201", summary.Generations)
	}
}

func TestClientRunRejectsBadRequests(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Run(ctx, RunRequest{}); err == nil {
		t.Fatal("missing problem must fail")
	}
	if _, err := client.Run(ctx, RunRequest{Problem: "no_such"}); err == nil {
		t.Fatal("unknown problem must fail")
	}
	if _, err := client.Run(ctx, RunRequest{Problem: "onemax", Selection: "bogus"}); err == nil {
		t.Fatal("unknown selection must fail")
	}
	if _, err := client.Run(ctx, RunRequest{Problem: "onemax", Mutation: "gaussian"}); err == nil {
		t.Fatal("real-valued mutator on a binary problem must fail")
	}
}

func TestClientLookupsRejectUnknownRuns(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if _, err := client.Stats(ctx, "missing"); err == nil {
		t.Fatal("stats for unknown run must fail")
	}
	if _, err := client.Genealogy(ctx, "missing"); err == nil {
		t.Fatal("genealogy for unknown run must fail")
	}
}

func TestClientProblemsListsBuiltins(t *testing.T) {
	client := newTestClient(t)

	names := client.Problems()
	seen := map[string]bool{}
	for _, name := range names {
		seen[name] = true
	}
	for _, want := range []string{"onemax", "nqueens", "sphere"} {
		if !seen[want] {
			t.Fatalf("builtin %s missing from %v", want, names)
		}
	}
}

func TestStrategyNameResolution(t *testing.T) {
	for _, name := range []string{"elite", "random", "tournament", "tournament_no_duplicates", "roulette"} {
		if _, err := selectorFromName(name, 3); err != nil {
			t.Fatalf("selector %s: %v", name, err)
		}
	}
	for _, name := range []string{"single_point", "order_one", "uniform", "whole_arithmetic"} {
		if _, err := crossoverFromName(name, 0.5, 0.5); err != nil {
			t.Fatalf("crossover %s: %v", name, err)
		}
	}
	for _, name := range []string{"flip", "scramble", "gaussian"} {
		if _, err := mutatorFromName(name); err != nil {
			t.Fatalf("mutator %s: %v", name, err)
		}
	}
	for _, name := range []string{"pure", "elitist", "uniform"} {
		if _, err := reinserterFromName(name, 0.5); err != nil {
			t.Fatalf("reinserter %s: %v", name, err)
		}
	}
	if _, err := crossoverFromName("two_point", 0, 0); err == nil {
		t.Fatal("unknown crossover must fail")
	}
	if _, err := mutatorFromName("swap"); err == nil {
		t.Fatal("unknown mutator must fail")
	}
	if _, err := reinserterFromName("fitness", 0); err == nil {
		t.Fatal("unknown reinserter must fail")
	}
}
