// Package api provides the HTTP API for the application
package api

import (
	"kudoswall/internal/platform/config"
	"kudoswall/internal/platform/logger"
	phttp "kudoswall/internal/platform/net/http"
	"kudoswall/internal/platform/net/middleware"
	"kudoswall/internal/platform/store"

	"kudoswall/internal/modkit"
	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/module"
	"kudoswall/internal/modkit/swaggerkit"

	kudosdomain "kudoswall/internal/services/api/kudos/domain"
	kudosmod "kudoswall/internal/services/api/kudos/module"
	metamod "kudoswall/internal/services/api/meta/module"
	statsmod "kudoswall/internal/services/api/stats/module"
	usersmod "kudoswall/internal/services/api/users/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	Logger         *logger.Logger
	EnableSwagger  bool
	EnableProfiler bool

	// AuthTokens maps bearer tokens to user ids; empty leaves the API open
	AuthTokens map[string]string
}

// FromConfig reads the KUDOS_API_ view: SWAGGER, PROFILER and AUTH_TOKENS
func FromConfig(cfg config.Conf, st *store.Store) Options {
	return Options{
		Config:         cfg,
		Store:          st,
		EnableSwagger:  cfg.MayBool("SWAGGER", false),
		EnableProfiler: cfg.MayBool("PROFILER", false),
		AuthTokens:     cfg.MayPairs("AUTH_TOKENS"),
	}
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log: *log,
		Cfg: opt.Config,
		PG:  opt.Store.PG,
		CH:  opt.Store.CH,
	}
	common := []modkit.Option{modkit.WithSwagger(opt.EnableSwagger)}

	// users first so kudos can check user existence through its port
	users := usersmod.New(deps, common...)
	dir := module.MustPortsOf[kudosdomain.UserDirectory](users)

	kudos := kudosmod.New(deps, dir, common...)
	stats := statsmod.New(deps, statsmod.FromConfig(opt.Config), common...)
	meta := metamod.New(deps, common...)

	var auth middleware.AuthPort
	if len(opt.AuthTokens) > 0 {
		auth = httpkit.NewPortFunc(httpkit.StaticTokens(opt.AuthTokens))
	}
	log.Info().
		Bool("auth", auth != nil).
		Bool("swagger", opt.EnableSwagger).
		Bool("clickhouse", deps.CH != nil).
		Msg("mounting api")

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		// Swagger + profiler
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		// probes stay open
		meta.MountRoutes(api)

		httpkit.Protected(api, "", auth, func(pr httpkit.Router) {
			for _, m := range []module.Module{users, kudos, stats} {
				m.MountRoutes(pr)
			}
		})
	})
}
