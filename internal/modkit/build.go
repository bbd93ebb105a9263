package modkit

import (
	"net/http"

	"txdc/internal/modkit/httpkit"
	str "txdc/internal/platform/strings"
)

// Option mutates a module under construction
type Option func(*Built)

// Built is the assembled module shell; it satisfies Module on its own
// concrete modules embed it and add their services
type Built struct {
	name     string
	prefix   string
	mw       []func(http.Handler) http.Handler
	ports    any
	maxBytes int64

	subrouter func(httpkit.Router) httpkit.Router
	register  []func(httpkit.Router)
}

// WithName sets the module name used in logs and the port registry
func WithName(name string) Option { return func(b *Built) { b.name = name } }

// WithPrefix mounts the module under a path prefix
func WithPrefix(prefix string) Option { return func(b *Built) { b.prefix = prefix } }

// WithMiddlewares appends per module middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.mw = append(b.mw, mw...) }
}

// WithPorts publishes the module's port set; the concrete type is owned by the module
func WithPorts[T any](p T) Option { return func(b *Built) { b.ports = p } }

// WithMaxBytes caps JSON request bodies decoded by the module; zero keeps the bind default
func WithMaxBytes(n int64) Option {
	return func(b *Built) {
		if n > 0 {
			b.maxBytes = n
		}
	}
}

// WithSubrouter wraps the module router before routes are registered
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.subrouter = fn }
}

// WithRegister adds a route registration step; steps run in the order given
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.register = append(b.register, fn) }
}

// Build applies opts over an empty shell
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	b.mw = append([]func(http.Handler) http.Handler(nil), b.mw...)
	return b
}

// Name returns the module name; empty names are a wiring bug
func (b Built) Name() string { return str.MustString(b.name, "module name") }

// Prefix returns the normalized route prefix
func (b Built) Prefix() string { return str.MustPrefix(b.prefix) }

// Middlewares returns the per module middleware
func (b Built) Middlewares() []func(http.Handler) http.Handler { return b.mw }

// Ports returns the published port set, nil when none
func (b Built) Ports() any { return b.ports }

// MaxBytes returns the JSON body limit, zero meaning the bind default
func (b Built) MaxBytes() int64 { return b.maxBytes }

// MountRoutes mounts the module under its prefix with its middleware and register steps
func (b Built) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, b.Prefix(), b.mw, func(sub httpkit.Router) {
		if b.subrouter != nil {
			sub = b.subrouter(sub)
		}
		for _, fn := range b.register {
			fn(sub)
		}
	})
}
