// Package registry provides a global registry for participant controllers.
// Controllers register themselves in init() functions, allowing the platform
// to pick who drives each side of a match without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bomb-arena/internal/arena"
	"github.com/vovakirdan/bomb-arena/internal/core"
)

// ErrUnknown is returned by Create for an unregistered controller id.
var ErrUnknown = errors.New("registry: unknown controller")

// Controller drives one participant of a match.
// It issues the same commands a keyboard would; it never mutates the match
// in any other way.
type Controller interface {
	// ID returns a unique identifier (e.g., "human", "cpu").
	// Used for CLI flags.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Control is called once per tick before Match.Update.
	// in holds the keyboard actions for this participant; automated
	// controllers ignore it.
	Control(m *arena.Match, id core.PlayerID, in core.InputFrame, dt float64)
}

// ControllerInfo contains metadata about a registered controller.
type ControllerInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new controller instance.
type Factory func() Controller

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a controller factory to the registry.
// Panics if a controller with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: controller %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered controllers, sorted by ID.
func List() []ControllerInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ControllerInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ControllerInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new controller by its ID.
func Create(id string) (Controller, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}

	return f(), nil
}

// Exists checks if a controller with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
