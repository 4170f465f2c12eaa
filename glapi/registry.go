// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glapi

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Common registry errors.
var (
	// ErrNoBackend is returned when no API implementation is registered or
	// none of the registered ones is available.
	ErrNoBackend = errors.New("glapi: no backend available")

	// ErrUnknownBackend is returned when a named backend is not registered.
	ErrUnknownBackend = errors.New("glapi: unknown backend")
)

// Factory creates a new API instance. A factory may fail, e.g. when the real
// GL bindings cannot be initialized against the current context.
type Factory func() (API, error)

// RegistryEntry represents a registered API implementation.
type RegistryEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: real driver bindings (gl41)
	//   - 10: software devices (mem)
	Priority int

	// Factory creates API instances.
	Factory Factory

	// Available reports if the backend can work on this system.
	// A nil Available means always available.
	Available func() bool
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*RegistryEntry)
)

// Register adds an API implementation to the registry. It is typically
// called from init() functions in backend packages. Registering a name that
// already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = &RegistryEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from the registry. Useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// List returns all registered backend names sorted by priority
// (highest first).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	entries := make([]*RegistryEntry, 0, len(registry))
	for _, e := range registry {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Get creates an API instance from the named backend.
func Get(name string) (API, error) {
	registryMu.RLock()
	e, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if e.Available != nil && !e.Available() {
		return nil, fmt.Errorf("glapi: backend %q not available on this system", name)
	}
	return e.Factory()
}

// Default creates an API instance from the best available backend, trying
// registered backends in priority order.
func Default() (API, error) {
	var lastErr error
	for _, name := range List() {
		api, err := Get(name)
		if err == nil {
			return api, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w (last error: %v)", ErrNoBackend, lastErr)
	}
	return nil, ErrNoBackend
}
