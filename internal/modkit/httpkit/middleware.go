package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"txdc/internal/platform/net/middleware"
)

// CommonStack returns the baseline middleware slice for the versioned API
// compose with CORS or a body limit in main as needed
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLog,

		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.Timeout(30 * time.Second),
	}
}

// JSONOnly rejects bodies that are not application/json with 415
func JSONOnly() func(http.Handler) http.Handler {
	return middleware.AllowContentType("application/json")
}
