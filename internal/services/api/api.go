// Package api provides the HTTP API for the application
package api

import (
	"context"

	"txdc/internal/core/typography"
	"txdc/internal/platform/config"
	"txdc/internal/platform/logger"
	phttp "txdc/internal/platform/net/http"

	"txdc/internal/modkit"
	"txdc/internal/modkit/httpkit"
	"txdc/internal/modkit/module"

	cleanmod "txdc/internal/services/api/clean/module"
	metamod "txdc/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Profiles       *typography.Registry
	EnableProfiler bool
}

// Mounted is what Mount wired: the modules in mount order and their published ports
type Mounted struct {
	Modules []module.Module
	Ports   *module.Registry
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) Mounted {
	// shared deps for modules
	deps := modkit.Deps{
		Log:      opt.Logger,
		Cfg:      opt.Config,
		Profiles: opt.Profiles,
	}
	if deps.Profiles == nil {
		deps.Profiles = typography.Builtin()
	}

	mods := []module.Module{
		metamod.New(deps),
		cleanmod.New(deps, cleanmod.FromConfig(deps.Cfg)),
	}

	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	// versioned API with a common middleware stack
	ports := module.NewRegistry()
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			ports.Register(m)
			m.MountRoutes(api)
		}
	})

	deps.Logger().Info().
		Int("modules", len(mods)).
		Strs("ports", ports.Names()).
		Strs("locales", servedLocales(ports)).
		Msg("api mounted")
	return Mounted{Modules: mods, Ports: ports}
}

// servedLocales asks the clean module, through its published ports, which locales it serves
func servedLocales(ports *module.Registry) []string {
	clean, ok := module.PortsAs[cleanmod.Ports](ports, "clean")
	if !ok || clean.Cleaner == nil {
		return nil
	}
	profiles, err := clean.Cleaner.Profiles(context.Background())
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p.Locale)
	}
	return out
}
