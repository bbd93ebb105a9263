// Package module holds the module contract and the port registry used to cross wire modules
package module

import (
	"reflect"
	"sort"
	"sync"

	phttp "txdc/internal/platform/net/http"
)

// Module is the contract every API module satisfies
// it lives apart from modkit so a module can export its own ports type without import knots
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// PortsOf pulls T out of a module's Ports() bundle, either the bundle itself or one of its exported fields
func PortsOf[T any](m Module) (t T, ok bool) {
	p := m.Ports()
	if p == nil {
		return t, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Struct {
		return t, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return t, false
}

// Registry maps module names to the modules that publish ports
// one registry per mounted API; safe for concurrent use
type Registry struct {
	mu   sync.RWMutex
	mods map[string]Module
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry { return &Registry{mods: map[string]Module{}} }

// Register stores m under its name; modules without ports are skipped
func (r *Registry) Register(m Module) {
	if m.Ports() == nil {
		return
	}
	r.mu.Lock()
	r.mods[m.Name()] = m
	r.mu.Unlock()
}

// Names lists the modules that published ports, sorted
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.mods))
	for n := range r.mods {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// PortsAs resolves T from the module registered under name, see PortsOf
func PortsAs[T any](r *Registry, name string) (t T, ok bool) {
	r.mu.RLock()
	m, found := r.mods[name]
	r.mu.RUnlock()
	if !found {
		return t, false
	}
	return PortsOf[T](m)
}
