// Package modkit provides module wiring and core deps
package modkit

import (
	"txdc/internal/core/typography"
	"txdc/internal/modkit/module"
	"txdc/internal/platform/config"
	"txdc/internal/platform/logger"
)

// Module is the surface the API mounts; see package module
type Module = module.Module

// Deps holds core dependencies passed to modules
// zero values are usable: the global logger and a builtin registry stand in
type Deps struct {
	Log      *logger.Logger
	Cfg      config.Conf
	Profiles *typography.Registry
}

// Registry returns the profile registry, or a fresh builtin one when unset
func (d Deps) Registry() *typography.Registry {
	if d.Profiles != nil {
		return d.Profiles
	}
	return typography.Builtin()
}

// Logger returns the module logger, or the global one when unset
func (d Deps) Logger() *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Get()
}
