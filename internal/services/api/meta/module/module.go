// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"txdc/internal/modkit"
	"txdc/internal/modkit/httpkit"
	metahttp "txdc/internal/services/api/meta/http"
)

// ServiceName is reported by the health and service endpoints
const ServiceName = "txdc-api"

// New constructs the meta module; it publishes no ports
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Built {
	md := metahttp.Deps{
		ServiceName: ServiceName,
		StartedAt:   time.Now(),
		Profiles:    deps.Registry(),
	}
	return modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
		modkit.WithRegister(func(r httpkit.Router) { metahttp.Register(r, md) }),
	}, opts...)...)
}
