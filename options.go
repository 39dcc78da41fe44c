package confreg

import "github.com/rs/zerolog"

// Option customizes a Registry created by [NewRegistry].
type Option func(*Registry)

// WithLogger attaches a zerolog logger to the registry. Extensions and
// resolutions are reported at debug level. Without this option the registry
// logs nothing (zerolog.Nop()).
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}
