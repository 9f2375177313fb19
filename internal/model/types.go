package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord is the archived summary of one finished evolutionary run.
type RunRecord struct {
	VersionedRecord
	ID           string    `json:"id"`
	CreatedAtUTC string    `json:"created_at_utc"`
	Problem      string    `json:"problem"`
	Config       RunConfig `json:"config"`
	Generations  int       `json:"generations"`
	Best         Candidate `json:"best"`
}

// RunConfig is the resolved configuration snapshot stored with a run.
type RunConfig struct {
	PopulationSize int     `json:"population_size"`
	Selection      string  `json:"selection"`
	SelectionRate  float64 `json:"selection_rate"`
	Crossover      string  `json:"crossover"`
	Mutation       string  `json:"mutation"`
	MutationRate   float64 `json:"mutation_rate"`
	Reinsertion    string  `json:"reinsertion"`
	SurvivalRate   float64 `json:"survival_rate,omitempty"`
	Seed           int64   `json:"seed"`
}

// GenerationStats is one recorded statistics entry keyed by generation.
type GenerationStats struct {
	Generation int                `json:"generation"`
	Metrics    map[string]float64 `json:"metrics"`
}
