package problem

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"exelixis/internal/model"
)

var ErrProblemNotFound = errors.New("problem not found")

// Problem supplies the domain-specific half of a run: encoding, scoring and
// the stopping condition. The engine always maximizes fitness.
type Problem interface {
	Name() string
	Representation() model.Representation
	// Genotype produces one freshly constructed, randomly initialized
	// candidate.
	Genotype(rng *rand.Rand) model.Candidate
	// Fitness scores a candidate; higher is better.
	Fitness(c model.Candidate) float64
	// Terminate is consulted once per generation with the evaluated,
	// descending-sorted population and the generation counter.
	Terminate(pop model.Population, generation int) bool
}

// Factory builds a problem instance. size selects the problem dimension; zero
// means the problem's default.
type Factory func(size int) Problem

var registry = struct {
	mu sync.RWMutex
	m  map[string]Factory
}{
	m: make(map[string]Factory),
}

// Register makes a problem available to name-based resolution. Registering a
// duplicate name is an error.
func Register(name string, factory Factory) error {
	if name == "" {
		return errors.New("problem name is required")
	}
	if factory == nil {
		return errors.New("problem factory is required")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, exists := registry.m[name]; exists {
		return fmt.Errorf("problem already registered: %s", name)
	}
	registry.m[name] = factory
	return nil
}

// Resolve builds the named problem with the given dimension.
func Resolve(name string, size int) (Problem, error) {
	registry.mu.RLock()
	factory, ok := registry.m[name]
	registry.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProblemNotFound, name)
	}
	return factory(size), nil
}

// Names lists the registered problem names in sorted order.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]string, 0, len(registry.m))
	for name := range registry.m {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
