package plugin

import (
	"errors"
	"fmt"
	"sync"
)

// Registry error sentinels. ErrLocked is the designated failure for internal
// synchronization faults; with sync.RWMutex guarding the maps it is never
// produced in practice, but callers may still match on it.
var (
	ErrNotFound          = errors.New("plugin not found")
	ErrAlreadyRegistered = errors.New("plugin already registered")
	ErrLocked            = errors.New("registry is locked")
)

// IncompatibleVersionError reports a failed version check, carrying the
// plugin name and the version that was required.
type IncompatibleVersionError struct {
	Plugin   string
	Required string
}

func (e *IncompatibleVersionError) Error() string {
	return fmt.Sprintf("plugin %q has incompatible version (required: %s)", e.Plugin, e.Required)
}

// Registry is a concurrency-safe store of named format plugins. Reads run in
// parallel; mutations take exclusive access for their duration, so no caller
// observes a partially-updated mapping.
type Registry struct {
	mu       sync.RWMutex
	plugins  map[string]Plugin
	disabled map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins:  make(map[string]Plugin),
		disabled: make(map[string]struct{}),
	}
}

// Register adds p under its metadata name. Registering a name twice fails
// with ErrAlreadyRegistered and leaves the registry unchanged.
func (r *Registry) Register(p Plugin) error {
	name := p.Metadata().Name

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plugins[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrAlreadyRegistered)
	}
	r.plugins[name] = p
	return nil
}

// Unregister removes the named plugin. Handles previously returned by Get
// remain usable.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plugins[name]; !ok {
		return fmt.Errorf("unregister %q: %w", name, ErrNotFound)
	}
	delete(r.plugins, name)
	return nil
}

// Get returns the shared instance registered under name.
func (r *Registry) Get(name string) (Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.plugins[name]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", name, ErrNotFound)
	}
	return p, nil
}

// List returns all registered names in no particular order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	return names
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// Contains reports whether name is registered.
func (r *Registry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.plugins[name]
	return ok
}

// Disable marks a registered plugin as disabled. It stays registered but is
// excluded from ListEnabled.
func (r *Registry) Disable(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.plugins[name]; !ok {
		return fmt.Errorf("disable %q: %w", name, ErrNotFound)
	}
	r.disabled[name] = struct{}{}
	return nil
}

// Enable clears the disabled mark for name. It is idempotent and succeeds
// even for names that were never registered or never disabled.
func (r *Registry) Enable(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.disabled, name)
}

// IsDisabled reports whether name is currently disabled.
func (r *Registry) IsDisabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.disabled[name]
	return ok
}

// ListEnabled returns the registered names that are not disabled.
func (r *Registry) ListEnabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		if _, off := r.disabled[name]; !off {
			names = append(names, name)
		}
	}
	return names
}

// VerifyVersion checks that the named plugin's version is compatible with
// required per Version.Compatible.
func (r *Registry) VerifyVersion(name string, required Version) error {
	p, err := r.Get(name)
	if err != nil {
		return err
	}
	if !p.Metadata().Version.Compatible(required) {
		return &IncompatibleVersionError{Plugin: name, Required: required.String()}
	}
	return nil
}
