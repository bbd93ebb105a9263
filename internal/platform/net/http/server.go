package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"sync"
	"time"

	"txdc/internal/platform/config"
	perr "txdc/internal/platform/errors"
	"txdc/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr  string
	grace time.Duration
	mux   *chi.Mux
	srv   *stdhttp.Server

	mu    sync.Mutex
	bound string
	ready chan struct{}
}

// NewServer creates a server configured from cfg (API_PORT, API_*_TIMEOUT, API_SHUTDOWN_GRACE)
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayPort("API_PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		grace: cfg.MayDuration("API_SHUTDOWN_GRACE", 10*time.Second),
		mux:   m,
		ready: make(chan struct{}),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.MayDuration("API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      cfg.MayDuration("API_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the bound address once listening, the configured one before
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.bound != "" {
		return s.bound
	}
	return s.addr
}

// Ready is closed once the listener is bound
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Run listens and serves until ctx is cancelled, then drains in flight requests
// for up to the shutdown grace period
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "listen %s", s.addr)
	}
	s.mu.Lock()
	s.bound = ln.Addr().String()
	s.mu.Unlock()
	close(s.ready)
	log.Info().Str("addr", s.Addr()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "http shutdown")
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
