package stats

import (
	"sort"
	"sync"

	"exelixis/internal/model"
)

// Entry maps metric names to the aggregate values recorded for one
// generation.
type Entry map[string]float64

// Aggregator reduces an evaluated population to one metric value.
type Aggregator func(pop model.Population) float64

func MinFitness(pop model.Population) float64 { return pop.MinFitness() }

func MaxFitness(pop model.Population) float64 { return pop.MaxFitness() }

// MeanFitness is a true arithmetic mean. The historical default named
// "mean_fitness" while summing; the sum stays available as TotalFitness.
func MeanFitness(pop model.Population) float64 { return pop.MeanFitness() }

func TotalFitness(pop model.Population) float64 { return pop.TotalFitness() }

// DefaultAggregators are the metrics recorded when a run does not configure
// its own.
func DefaultAggregators() map[string]Aggregator {
	return map[string]Aggregator{
		"min_fitness":   MinFitness,
		"max_fitness":   MaxFitness,
		"mean_fitness":  MeanFitness,
		"total_fitness": TotalFitness,
	}
}

// Recorder keeps one statistics entry per generation for the lifetime of a
// run. The evolution driver is the single writer; readers may look entries up
// concurrently at any point and observe consistent per-entry snapshots.
type Recorder struct {
	mu      sync.RWMutex
	entries map[int]Entry
}

func NewRecorder() *Recorder {
	return &Recorder{entries: make(map[int]Entry)}
}

// Insert stores the entry for a generation, replacing any prior one.
func (r *Recorder) Insert(generation int, entry Entry) {
	stored := make(Entry, len(entry))
	for k, v := range entry {
		stored[k] = v
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[generation] = stored
}

// Lookup returns a copy of the entry for a generation. The second return is
// false when that generation was never recorded.
func (r *Recorder) Lookup(generation int) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[generation]
	if !ok {
		return nil, false
	}
	out := make(Entry, len(entry))
	for k, v := range entry {
		out[k] = v
	}
	return out, true
}

// Generations lists the recorded generation numbers in ascending order.
func (r *Recorder) Generations() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]int, 0, len(r.entries))
	for gen := range r.entries {
		out = append(out, gen)
	}
	sort.Ints(out)
	return out
}

// Series exports every recorded entry in generation order.
func (r *Recorder) Series() []model.GenerationStats {
	generations := r.Generations()
	out := make([]model.GenerationStats, 0, len(generations))
	for _, gen := range generations {
		entry, _ := r.Lookup(gen)
		out = append(out, model.GenerationStats{Generation: gen, Metrics: entry})
	}
	return out
}
