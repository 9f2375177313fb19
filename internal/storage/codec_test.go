package storage

import (
	"errors"
	"testing"

	"exelixis/internal/genealogy"
	"exelixis/internal/model"
)

func TestRunCodecRoundTrip(t *testing.T) {
	run := Versioned(model.RunRecord{
		ID:           "run-1",
		CreatedAtUTC: "2026-08-29T10:00:00Z",
		Problem:      "nqueens",
		Generations:  7,
		Best:         model.Candidate{ID: "best", Genes: []float64{1, 3, 0, 2}, Size: 4, Fitness: 6},
	})

	data, err := EncodeRun(run)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeRun(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Problem != "nqueens" || got.Best.Fitness != 6 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestDecodeRunRejectsVersionMismatch(t *testing.T) {
	run := model.RunRecord{ID: "run-1"}
	run.SchemaVersion = CurrentSchemaVersion + 1
	run.CodecVersion = CurrentCodecVersion

	data, err := EncodeRun(run)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeRun(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestDecodeRunRejectsMalformedPayload(t *testing.T) {
	if _, err := DecodeRun([]byte("{not json")); err == nil {
		t.Fatal("malformed payload must fail")
	}
}

func TestStatsCodecRoundTrip(t *testing.T) {
	series := []model.GenerationStats{
		{Generation: 0, Metrics: map[string]float64{"mean_fitness": 2.5}},
	}
	data, err := EncodeStats(series)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeStats(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Metrics["mean_fitness"] != 2.5 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestGenealogyCodecRoundTrip(t *testing.T) {
	graph := genealogy.Graph{
		Vertices: []genealogy.Vertex{{Candidate: model.Candidate{ID: "p"}, Generation: 0}},
		Edges:    []genealogy.Edge{{From: "p", To: "c"}},
	}
	data, err := EncodeGenealogy(graph)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeGenealogy(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Vertices) != 1 || got.Edges[0].To != "c" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
