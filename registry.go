// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confreg

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// Registry holds a process-wide configuration tree mapping namespace names
// to their (possibly nested) default settings. A Registry starts empty and
// grows only through [Registry.Extend]; it is never torn down.
//
// All methods are safe for concurrent use, but the intended usage model is
// to extend the registry during single-threaded startup and only then hand
// it to concurrent consumers.
type Registry struct {
	mu   sync.RWMutex
	tree map[string]any
	log  zerolog.Logger
}

// NewRegistry constructs an empty Registry. By default the registry is
// silent; attach a logger with [WithLogger] to observe extensions and
// resolutions at debug level.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		tree: make(map[string]any),
		log:  zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Extend recursively merges partial into the registry tree. For every
// namespace in partial, keys present on both sides are resolved in favor of
// the incoming value, recursing into nested mappings rather than replacing
// them wholesale. Applying the same partial twice leaves the tree unchanged.
//
// Every top-level value of partial must be a mapping; otherwise
// [ErrNotAMapping] is returned and the tree is left untouched. The partial
// is deep-copied during the merge, so the caller may reuse or mutate it
// afterwards without affecting the registry.
func (r *Registry) Extend(partial map[string]any) error {
	if err := validateNamespaces(partial); err != nil {
		return fmt.Errorf("error extending default configuration: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deepMerge(r.tree, partial)

	r.log.Debug().
		Strs("namespaces", slices.Sorted(maps.Keys(partial))).
		Msg("default configuration extended")

	return nil
}

// Snapshot returns a deep copy of the current registry tree. The copy is
// fully detached: neither side observes later mutations of the other.
func (r *Registry) Snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return deepClone(r.tree)
}

// defaultRegistry is the process-wide singleton behind the package-level
// convenience functions.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by
// [ExtendDefaultConfig], [DefaultConfig] and [New]. Populate it before
// concurrent consumers start resolving configurations.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// ExtendDefaultConfig merges partial into the process-wide default registry.
// See [Registry.Extend] for the merge rules.
func ExtendDefaultConfig(partial map[string]any) error {
	return defaultRegistry.Extend(partial)
}

// DefaultConfig returns a deep copy of the process-wide default
// configuration tree.
func DefaultConfig() map[string]any {
	return defaultRegistry.Snapshot()
}
