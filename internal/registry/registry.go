// Package registry provides a global registry for snake controller factories.
// Algorithms register themselves in init() functions, allowing the arena and
// the CLI to discover and instantiate controllers by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/engine"
)

// Controller decides the heading of one snake each tick.
// Controllers only read the state; the driver applies the returned direction.
type Controller interface {
	// Decide returns the heading for the snake with the given id.
	// It is called against the pre-tick state.
	Decide(state *engine.GameState, snakeID int) core.Direction
}

// Env carries what a controller may need at construction time.
// RNG is private to the controller so it never perturbs the engine's stream.
type Env struct {
	Settings *config.Settings
	RNG      core.RandomPort
}

// AlgorithmInfo contains metadata about a registered algorithm.
type AlgorithmInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new controller instance.
type Factory func(env Env) Controller

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds an algorithm factory to the registry.
// Typically called from an init() function.
// Panics if an algorithm with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: algorithm %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered algorithms, sorted by name.
func List() []AlgorithmInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]AlgorithmInfo, 0, len(factories))
	for name := range factories {
		result = append(result, AlgorithmInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new controller by its algorithm name.
// Returns an error if the name is not registered.
func Create(name string, env Env) (Controller, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown algorithm %q", name)
	}

	return f(env), nil
}

// Exists checks if an algorithm with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
