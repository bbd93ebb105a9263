// Command txdc-api serves the text normalization engine over HTTP
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"txdc/internal/core/typography"
	"txdc/internal/core/version"
	"txdc/internal/platform/config"
	"txdc/internal/platform/logger"
	phttp "txdc/internal/platform/net/http"
	"txdc/internal/platform/net/middleware"
	pstrings "txdc/internal/platform/strings"

	"txdc/internal/services/api"

	"github.com/go-chi/chi/v5"
)

func main() {
	// bring up logging early
	opt := logger.FromEnv()
	opt.Service = pstrings.OrDefault(opt.Service, "txdc-api")
	opt.StaticFields = map[string]string{"version": version.Info().Version}
	logger.Init(opt)
	l := logger.Get()

	// service-scoped config (TXDC_API_*, TXDC_CLEAN_*)
	root := config.New().Prefix("TXDC_")
	apiCfg := root.Prefix("API_")

	// builtin profiles plus any profile files on disk
	reg := typography.Builtin()
	if dir := root.Prefix("CLEAN_").MayString("PROFILES_DIR", ""); dir != "" {
		names, err := typography.LoadDir(reg, dir)
		if err != nil {
			l.Fatal().Err(err).Str("dir", dir).Msg("loading typography profiles failed")
		}
		l.Info().Str("dir", dir).Strs("profiles", names).Msg("typography profiles loaded")
	}

	// http server (reads TXDC_API_PORT and the API timeouts)
	srv := phttp.NewServer(root, func(m *chi.Mux) {
		m.Use(
			middleware.CORS(middleware.CORSOptions{
				AllowedOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
			}),
			middleware.RequestSize(apiCfg.MayInt64("MAX_BYTES", 1<<20)),
		)
	})

	// mount our API
	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Logger:         l,
		Profiles:       reg,
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// run until a signal arrives, then drain
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
