package confreg

import "errors"

// Structural errors returned by [Registry.Extend] and the [NamedConfig]
// constructors.
var (
	// ErrNotAMapping indicates that a top-level namespace value is not a
	// mapping where the merge requires one. The configuration tree is left
	// unchanged when this error is returned.
	ErrNotAMapping = errors.New("namespace value is not a mapping")
)
