package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"exelixis/internal/storage"
	api "exelixis/pkg/exelixis"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:])
	case "problems":
		return runProblems(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "stats":
		return runStats(ctx, args[1:])
	case "lineage":
		return runLineage(ctx, args[1:])
	case "dot":
		return runDot(ctx, args[1:])
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	printUsage()
	return errors.New(msg)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: exelixisctl <command> [flags]

commands:
  run       evolve a named problem to termination and archive the run
  problems  list the registered problems
  runs      list archived runs
  stats     print the per-generation statistics of a run
  lineage   print the genealogy edges of a run
  dot       render the genealogy of a run as Graphviz DOT`)
}

func newClient(storeKind, dbPath string) (*api.Client, error) {
	return api.New(api.Options{StoreKind: storeKind, DBPath: dbPath})
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "TOML run config path")
	problemName := fs.String("problem", "", "problem name (overrides config)")
	problemSize := fs.Int("size", 0, "problem dimension (0 for the problem default)")
	seed := fs.Int64("seed", 0, "random seed (0 for time-based)")
	jsonOut := fs.Bool("json", false, "emit the run summary as JSON")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "exelixis.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := api.RunRequest{}
	if *configPath != "" {
		loaded, err := loadRunRequest(*configPath)
		if err != nil {
			return err
		}
		req = loaded
	}
	if *problemName != "" {
		req.Problem = *problemName
	}
	if *problemSize != 0 {
		req.ProblemSize = *problemSize
	}
	if *seed != 0 {
		req.Seed = *seed
	}
	if req.Problem == "" {
		return errors.New("run requires --problem or a config file naming one")
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	summary, err := client.Run(ctx, req)
	if err != nil {
		return err
	}

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	fmt.Printf("run=%s problem=%s generations=%d best_fitness=%v\n",
		summary.RunID, summary.Problem, summary.Generations, summary.BestFitness)
	return nil
}

func runProblems(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("problems", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(storage.DefaultStoreKind(), "")
	if err != nil {
		return err
	}
	for _, name := range client.Problems() {
		fmt.Println(name)
	}
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	jsonOut := fs.Bool("json", false, "emit runs as JSON")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "exelixis.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	runs, err := client.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}
	for _, r := range runs {
		fmt.Printf("run=%s created=%s problem=%s generations=%d best_fitness=%v\n",
			r.ID, r.CreatedAtUTC, r.Problem, r.Generations, r.Best.Fitness)
	}
	return nil
}

func runStats(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	jsonOut := fs.Bool("json", false, "emit stats as JSON")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "exelixis.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("stats requires --run-id")
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	series, err := client.Stats(ctx, *runID)
	if err != nil {
		return err
	}
	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(series)
	}
	for _, entry := range series {
		fmt.Printf("gen=%d min=%v max=%v mean=%v\n",
			entry.Generation,
			entry.Metrics["min_fitness"],
			entry.Metrics["max_fitness"],
			entry.Metrics["mean_fitness"])
	}
	return nil
}

func runLineage(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lineage", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	limit := fs.Int("limit", 50, "max edges to print (<=0 for all)")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "exelixis.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("lineage requires --run-id")
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	graph, err := client.Genealogy(ctx, *runID)
	if err != nil {
		return err
	}
	edges := graph.Edges
	if *limit > 0 && len(edges) > *limit {
		edges = edges[:*limit]
	}
	for _, e := range edges {
		fmt.Printf("%s -> %s\n", e.From, e.To)
	}
	return nil
}

func runDot(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("dot", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	out := fs.String("out", "", "output path (default stdout)")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "exelixis.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return errors.New("dot requires --run-id")
	}

	client, err := newClient(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()
	if err := client.Init(ctx); err != nil {
		return err
	}

	graph, err := client.Genealogy(ctx, *runID)
	if err != nil {
		return err
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return writeDOT(w, *runID, graph)
}
