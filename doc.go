// Package confreg provides layered configuration management built around a
// process-wide registry of default settings and immutable named snapshots.
//
// Packages contribute their defaults during startup by deep-merging partial
// mappings into the registry:
//
//	confreg.ExtendDefaultConfig(map[string]any{
//		"mydefaults": map[string]any{"example": "test"},
//	})
//
// Consuming code then resolves a named configuration, optionally layering
// its own defaults on top (explicit values win over registry values):
//
//	cfg, err := confreg.New("mytool", map[string]any{
//		"config": map[string]any{"file": "config", "directory": "./conf"},
//	})
//	// cfg.GetString("config.file") == "config"
//
// A [NamedConfig] is a snapshot: it keeps no reference back to the registry,
// so extensions made after construction never affect existing instances.
// Tools that always resolve the same name and defaults declare a [Factory]
// once and construct from it.
//
// The core accepts and produces plain mappings only. Reading those mappings
// from files or the environment is left to collaborators such as the envconf
// subpackage.
//
// The registry is safe for concurrent use, but the intended model is to
// populate defaults during single-threaded initialization before consumers
// start resolving configurations.
package confreg
