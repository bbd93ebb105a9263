// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"txdc/internal/core/typography"
	"txdc/internal/core/version"
	"txdc/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Profiles    *typography.Registry
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"` // ok fail
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"`
	Started string   `json:"started"`
	Uptime  int64    `json:"uptime"`
	Locales []string `json:"locales"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ready fails until at least one typography profile is registered
func (h *handlers) ready(_ *http.Request) (any, error) {
	check := ReadyCheck{Name: "profiles", Status: "ok"}
	if h.deps.Profiles == nil || len(h.deps.Profiles.Profiles()) == 0 {
		check = ReadyCheck{Name: "profiles", Status: "fail", Error: "no typography profile registered"}
	}
	return ReadyResponse{
		Status: check.Status,
		Checks: []ReadyCheck{check},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	locales := []string{}
	if h.deps.Profiles != nil {
		for _, p := range h.deps.Profiles.Profiles() {
			locales = append(locales, p.Tag().String())
		}
	}
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
		Locales: locales,
	}, nil
}
