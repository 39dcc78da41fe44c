// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confreg

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// NamedConfig is one named, resolved configuration. It captures a merged
// snapshot of a registry's defaults and instance-specific overrides at
// construction time and is immutable afterwards: it holds no reference back
// to the registry, so later extensions never change an existing instance.
//
// The name is a caller-chosen label used for rendering and logging; it is
// not required to be unique and is never validated against known names.
type NamedConfig struct {
	name string
	tree map[string]any
}

// Named resolves a configuration against r: the current registry tree is
// snapshot and defaultConf is merged on top, so explicit values take
// precedence over registry defaults, recursing into nested mappings.
//
// Unknown names and empty registries are not errors; the resolved
// configuration is simply whatever the inputs provide, possibly nothing.
// The only failure is [ErrNotAMapping] when a top-level value of defaultConf
// is not a mapping.
func (r *Registry) Named(name string, defaultConf map[string]any) (*NamedConfig, error) {
	if err := validateNamespaces(defaultConf); err != nil {
		return nil, fmt.Errorf("error resolving configuration %q: %w", name, err)
	}

	tree := r.Snapshot()
	deepMerge(tree, defaultConf)

	r.log.Debug().
		Str("config", name).
		Int("namespaces", len(tree)).
		Msg("named configuration resolved")

	return &NamedConfig{name: name, tree: tree}, nil
}

// New resolves a named configuration against the process-wide default
// registry. See [Registry.Named].
func New(name string, defaultConf map[string]any) (*NamedConfig, error) {
	return defaultRegistry.Named(name, defaultConf)
}

// MustNew is [New] but panics on error. It supports package-level
// declarations of tool configurations whose defaults are known to be
// well-formed mappings.
func MustNew(name string, defaultConf map[string]any) *NamedConfig {
	cfg, err := New(name, defaultConf)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Name returns the label the configuration was constructed with.
func (c *NamedConfig) Name() string {
	return c.name
}

// Lookup descends the merged tree along the dot-separated path and reports
// whether a value is present there. Absent paths, and paths that run through
// a non-mapping value, yield (nil, false).
//
// Mapping and slice values are returned as copies, so callers cannot mutate
// the snapshot through them.
func (c *NamedConfig) Lookup(path string) (any, bool) {
	node := c.tree
	segments := strings.Split(path, ".")

	for i, segment := range segments {
		value, ok := node[segment]
		if !ok {
			return nil, false
		}

		if i == len(segments)-1 {
			return cloneValue(value), true
		}

		if node, ok = value.(map[string]any); !ok {
			return nil, false
		}
	}

	return nil, false
}

// Get returns the value at the dot-separated path, or nil when absent.
func (c *NamedConfig) Get(path string) any {
	value, _ := c.Lookup(path)
	return value
}

// GetDefault returns the value at path, or fallback when absent.
func (c *NamedConfig) GetDefault(path string, fallback any) any {
	if value, ok := c.Lookup(path); ok {
		return value
	}

	return fallback
}

// Has reports whether a value is present at the dot-separated path.
func (c *NamedConfig) Has(path string) bool {
	_, ok := c.Lookup(path)
	return ok
}

// Typed accessors coerce the value at path with spf13/cast. A missing value
// or a failed coercion yields the type's zero value; callers that need to
// distinguish use [NamedConfig.Lookup].

// GetString returns the value at path coerced to a string.
func (c *NamedConfig) GetString(path string) string {
	return cast.ToString(c.Get(path))
}

// GetBool returns the value at path coerced to a bool.
func (c *NamedConfig) GetBool(path string) bool {
	return cast.ToBool(c.Get(path))
}

// GetInt returns the value at path coerced to an int.
func (c *NamedConfig) GetInt(path string) int {
	return cast.ToInt(c.Get(path))
}

// GetFloat64 returns the value at path coerced to a float64.
func (c *NamedConfig) GetFloat64(path string) float64 {
	return cast.ToFloat64(c.Get(path))
}

// GetDuration returns the value at path coerced to a time.Duration.
// String values are parsed with time.ParseDuration semantics ("1h", "30s").
func (c *NamedConfig) GetDuration(path string) time.Duration {
	return cast.ToDuration(c.Get(path))
}

// GetStringSlice returns the value at path coerced to a []string.
func (c *NamedConfig) GetStringSlice(path string) []string {
	return cast.ToStringSlice(c.Get(path))
}

// GetStringMap returns the value at path coerced to a map[string]any.
func (c *NamedConfig) GetStringMap(path string) map[string]any {
	return cast.ToStringMap(c.Get(path))
}

// Section returns a deep copy of one top-level namespace, or nil when the
// namespace is absent or not a mapping.
func (c *NamedConfig) Section(namespace string) map[string]any {
	if section, ok := c.tree[namespace].(map[string]any); ok {
		return deepClone(section)
	}

	return nil
}

// All returns a deep copy of the full merged configuration tree.
func (c *NamedConfig) All() map[string]any {
	return deepClone(c.tree)
}

// Keys returns the resolved top-level namespace names in sorted order.
func (c *NamedConfig) Keys() []string {
	return slices.Sorted(maps.Keys(c.tree))
}

// Len returns the number of resolved top-level namespaces.
func (c *NamedConfig) Len() int {
	return len(c.tree)
}

// String renders the name and the full merged tree. The rendering is stable
// for a given snapshot: keys are emitted in sorted order.
func (c *NamedConfig) String() string {
	rendered, err := json.MarshalIndent(c.tree, "", "  ")
	if err != nil {
		// Non-JSON-encodable leaves; fall back to Go syntax.
		return fmt.Sprintf("%s %v", c.name, c.tree)
	}

	return fmt.Sprintf("%s %s", c.name, rendered)
}

// Factory fixes a configuration name and tool-specific defaults so a package
// can expose one ready-made constructor for its configuration instead of
// repeating the name and defaults at every call site.
type Factory struct {
	name     string
	defaults map[string]any
}

// NewFactory creates a Factory for the given name and defaults. The defaults
// are cloned, so later mutation by the caller does not leak into
// configurations the factory resolves.
func NewFactory(name string, defaults map[string]any) Factory {
	return Factory{name: name, defaults: deepClone(defaults)}
}

// New resolves the factory's configuration against the process-wide default
// registry.
func (f Factory) New() (*NamedConfig, error) {
	return New(f.name, f.defaults)
}

// NewWith resolves the factory's configuration against an explicit registry.
func (f Factory) NewWith(r *Registry) (*NamedConfig, error) {
	return r.Named(f.name, f.defaults)
}
