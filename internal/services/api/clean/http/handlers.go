// Package http provides http transport for text cleaning
package http

import (
	stdhttp "net/http"

	"txdc/internal/modkit/httpkit"
	"txdc/internal/services/api/clean/domain"
	svc "txdc/internal/services/api/clean/service"
)

// Register mounts the text endpoints on the given router
// maxBytes caps JSON bodies; zero keeps the bind default
func Register(r httpkit.Router, s svc.Service, maxBytes int64) {
	h := &handlers{svc: s}
	limit := httpkit.BodyLimit(maxBytes)

	httpkit.PostJSON(r, "/trim", h.trim, limit)
	httpkit.PostJSON(r, "/clean", h.clean, limit)
	httpkit.PostJSON(r, "/typography", h.typography, limit)
	httpkit.Get(r, "/profiles", h.profiles)
}

type handlers struct{ svc svc.Service }

func (h *handlers) trim(r *stdhttp.Request, in domain.TrimInput) (any, error) {
	return h.svc.Trim(r.Context(), in)
}

func (h *handlers) clean(r *stdhttp.Request, in domain.CleanInput) (any, error) {
	return h.svc.Clean(r.Context(), in)
}

func (h *handlers) typography(r *stdhttp.Request, in domain.TypographyInput) (any, error) {
	return h.svc.Typography(r.Context(), in)
}

func (h *handlers) profiles(r *stdhttp.Request) (any, error) {
	return h.svc.Profiles(r.Context())
}
