// Package module wires text cleaning into the API using modkit
package module

import (
	"txdc/internal/modkit"
	"txdc/internal/modkit/httpkit"
	"txdc/internal/services/api/clean/domain"
	cleanhttp "txdc/internal/services/api/clean/http"
	cleansvc "txdc/internal/services/api/clean/service"
)

// Ports is the port set other modules may pull from the clean module
type Ports struct {
	Cleaner domain.ServicePort
}

// Module is the clean module: the modkit shell plus its service
type Module struct {
	modkit.Built
	svc cleansvc.Service
}

// New constructs a clean module; opts run after the defaults so callers may override them
func New(deps modkit.Deps, o Options, opts ...modkit.Option) *Module {
	m := &Module{svc: cleansvc.New(deps.Registry(), o.defaults())}
	m.Built = modkit.Build(append([]modkit.Option{
		modkit.WithName("clean"),
		modkit.WithPrefix("/text"),
		modkit.WithMaxBytes(o.MaxBytes),
		modkit.WithMiddlewares(httpkit.JSONOnly()),
		modkit.WithPorts(Ports{Cleaner: m.svc}),
		modkit.WithRegister(func(r httpkit.Router) { cleanhttp.Register(r, m.svc, m.MaxBytes()) }),
	}, opts...)...)

	deps.Logger().Debug().
		Str("module", m.Name()).
		Str("locale", o.Locale.String()).
		Str("form", o.Form.String()).
		Int64("max_bytes", m.MaxBytes()).
		Msg("clean module built")
	return m
}
