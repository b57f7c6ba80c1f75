// Package registry provides the name to handler mappings used by the engine.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrSealed is returned when registering into a registry the engine already started with.
	ErrSealed = errors.New("registry is sealed")
	// ErrEmptyName is returned when registering under an empty name.
	ErrEmptyName = errors.New("registry name must not be empty")
	// ErrPaddedName is returned for names with leading or trailing whitespace,
	// which can never match the trimmed input the engine looks up.
	ErrPaddedName = errors.New("registry name must not have surrounding whitespace")
	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("registry handler must not be nil")
)

// Registry maps names to handlers.
// It is built during setup and becomes read-only once sealed; it does no
// locking because the engine never uses it from more than one goroutine.
type Registry[T any] struct {
	kind    string
	entries map[string]T
	sealed  bool
}

// New creates an empty registry. kind labels errors (e.g. "scenario").
func New[T any](kind string) *Registry[T] {
	return &Registry[T]{
		kind:    kind,
		entries: make(map[string]T),
	}
}

// Register adds a handler under name.
// If a handler with the same name exists, it is overwritten.
func (r *Registry[T]) Register(name string, handler T) error {
	if r.sealed {
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrSealed)
	}
	if name == "" {
		return fmt.Errorf("register %s: %w", r.kind, ErrEmptyName)
	}
	if strings.TrimSpace(name) != name {
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrPaddedName)
	}
	if any(handler) == nil {
		return fmt.Errorf("register %s %q: %w", r.kind, name, ErrNilHandler)
	}
	r.entries[name] = handler
	return nil
}

// Lookup returns the handler registered under name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	h, ok := r.entries[name]
	return h, ok
}

// Has reports whether name is registered.
func (r *Registry[T]) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered handlers.
func (r *Registry[T]) Len() int {
	return len(r.entries)
}

// Seal makes the registry read-only.
func (r *Registry[T]) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal was called.
func (r *Registry[T]) Sealed() bool {
	return r.sealed
}
