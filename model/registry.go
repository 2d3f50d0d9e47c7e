package model

import (
	"fmt"
	"sync"

	"github.com/OpticalFlyer/tableau/property"
)

// Factory builds a model of one kind from its declaration.
type Factory func(decl property.Fields, scene Scene) (Model, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// Register makes a model kind available to Create. Registering a kind twice
// panics.
func Register(kind string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if _, exists := factories[kind]; exists {
		panic(fmt.Sprintf("model: kind %q registered twice", kind))
	}
	factories[kind] = f
}

// Create builds a model of the named kind.
func Create(kind string, decl property.Fields, scene Scene) (Model, error) {
	factoriesMu.RLock()
	f, ok := factories[kind]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, kind)
	}
	m, err := f(decl, scene)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", kind, err)
	}
	return m, nil
}
