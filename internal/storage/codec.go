package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"exelixis/internal/genealogy"
	"exelixis/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeRun(run model.RunRecord) ([]byte, error) {
	return json.Marshal(run)
}

func DecodeRun(data []byte) (model.RunRecord, error) {
	var run model.RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return model.RunRecord{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.RunRecord{}, err
	}
	return run, nil
}

func EncodeStats(series []model.GenerationStats) ([]byte, error) {
	return json.Marshal(series)
}

func DecodeStats(data []byte) ([]model.GenerationStats, error) {
	var series []model.GenerationStats
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, err
	}
	return series, nil
}

func EncodeGenealogy(graph genealogy.Graph) ([]byte, error) {
	return json.Marshal(graph)
}

func DecodeGenealogy(data []byte) (genealogy.Graph, error) {
	var graph genealogy.Graph
	if err := json.Unmarshal(data, &graph); err != nil {
		return genealogy.Graph{}, err
	}
	return graph, nil
}

// Versioned stamps a run record with the current schema and codec versions
// before persistence.
func Versioned(run model.RunRecord) model.RunRecord {
	run.SchemaVersion = CurrentSchemaVersion
	run.CodecVersion = CurrentCodecVersion
	return run
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, v.SchemaVersion, v.CodecVersion)
	}
	return nil
}
