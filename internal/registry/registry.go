// Package registry provides a global registry for simulation factories.
// Games register themselves in init() functions, allowing the session and
// the CLI to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/sim"
)

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Order int // menu position; ties sort by ID
}

// Factory creates a fresh simulation from the game configuration and an
// injected random source.
type Factory func(cfg config.Config, rng core.Rand) sim.Simulation

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, order int, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f(config.Default(), core.NewRand(1))
	infos[id] = GameInfo{ID: id, Title: s.Title(), Order: order}
}

// List returns information about all registered games in menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new simulation by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.Config, rng core.Rand) (sim.Simulation, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg, rng), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
