// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package envconf reads configuration overrides from the environment and
// hands them over as plain mappings, the only input shape the confreg
// registry accepts. Callers describe their settings with a struct carrying
// `env` tags (variable names) and `json` tags (mapping keys), pass baseline
// values as defaults, and feed the resulting mapping to
// confreg.ExtendDefaultConfig or Registry.Extend.
package envconf

import (
	"encoding/json"
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// Load parses the environment into a fresh T using its `env` struct tags,
// fills fields the environment left unset from defaults, and returns the
// result as a mapping keyed by the struct's `json` tags.
//
// Environment values take precedence over defaults. A default only fills a
// field the environment left at its zero value, so an explicit empty
// environment value cannot mask a non-empty default.
//
// Values pass through a JSON round-trip, so numeric fields arrive in the
// mapping as float64. The registry treats leaves as opaque values, so this
// only matters to consumers reading raw leaves back out.
func Load[T any](defaults T) (map[string]any, error) {
	return LoadWithOptions(defaults, env.Options{})
}

// LoadWithOptions is [Load] with explicit parsing options, e.g. a variable
// name prefix shared by every `env` tag of T.
func LoadWithOptions[T any](defaults T, opts env.Options) (map[string]any, error) {
	cfg := new(T)
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := mergo.Merge(cfg, defaults); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return toMapping(cfg)
}

// toMapping converts a tagged struct into the mapping shape the registry
// consumes, keyed by the struct's json tags.
func toMapping(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding config mapping: %w", err)
	}

	mapping := make(map[string]any)
	if err := json.Unmarshal(raw, &mapping); err != nil {
		return nil, fmt.Errorf("error decoding config mapping: %w", err)
	}

	return mapping, nil
}
