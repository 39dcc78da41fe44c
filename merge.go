package confreg

import "fmt"

// deepMerge merges src into dst key by key. When both sides hold a
// map[string]any at the same key the maps are merged recursively; any other
// combination is resolved by the incoming value replacing the existing one,
// zero values included. Incoming subtrees are cloned before insertion, so
// dst never aliases src and the caller may keep mutating src afterwards.
func deepMerge(dst, src map[string]any) {
	for key, incoming := range src {
		if existing, ok := dst[key].(map[string]any); ok {
			if incomingMap, ok := incoming.(map[string]any); ok {
				deepMerge(existing, incomingMap)
				continue
			}
		}
		dst[key] = cloneValue(incoming)
	}
}

// validateNamespaces checks that every top-level value of partial is itself
// a mapping. Below the top level value kinds are opaque and a mismatch is
// resolved by overwrite, but a namespace must always be mergeable.
func validateNamespaces(partial map[string]any) error {
	for name, value := range partial {
		if _, ok := value.(map[string]any); !ok {
			return fmt.Errorf("namespace %q: %w", name, ErrNotAMapping)
		}
	}

	return nil
}

// deepClone returns a recursive copy of m. Nested map[string]any and []any
// values are cloned; every other value is treated as an opaque leaf.
func deepClone(m map[string]any) map[string]any {
	cloned := make(map[string]any, len(m))
	for key, value := range m {
		cloned[key] = cloneValue(value)
	}

	return cloned
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return deepClone(value)
	case []any:
		cloned := make([]any, len(value))
		for i, element := range value {
			cloned[i] = cloneValue(element)
		}
		return cloned
	default:
		return v
	}
}
