// Package module wires stats into the API using modkit
package module

import (
	"net/http"

	modkit "kudoswall/internal/modkit"
	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/swaggerkit"
	"kudoswall/internal/platform/config"
	str "kudoswall/internal/platform/strings"
	statshttp "kudoswall/internal/services/api/stats/http"
	statsrepo "kudoswall/internal/services/api/stats/repo"
	statssvc "kudoswall/internal/services/api/stats/service"
)

// Backends
const (
	BackendPG         = "pg"
	BackendClickhouse = "clickhouse"
)

// Options are the stats module settings read from config
type Options struct {
	Backend string
}

// FromConfig reads STATS_BACKEND (pg or clickhouse) from the given view
func FromConfig(cfg config.Conf) Options {
	return Options{Backend: cfg.MayEnum("STATS_BACKEND", BackendPG, BackendPG, BackendClickhouse)}
}

// Module implements the stats module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     any
	swaggerOn bool

	register func(httpkit.Router)

	svc *statssvc.Svc
}

// New constructs the stats module
// the clickhouse backend falls back to postgres when no clickhouse is configured
func New(deps modkit.Deps, o Options, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/stats")}, opts...)...)

	var svc *statssvc.Svc
	switch {
	case o.Backend == BackendClickhouse && deps.CH != nil:
		svc = statssvc.New(statsrepo.NewCH(deps.CH), BackendClickhouse)
	default:
		if o.Backend == BackendClickhouse {
			deps.Log.Warn().Msg("stats backend clickhouse requested but SERVICE_CLICKHOUSE_DBURL is unset; using pg")
		}
		svc = statssvc.New(statsrepo.NewPG().Bind(deps.PG), BackendPG)
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		svc:       svc,
	}
	m.ports = adaptStatsPort{svc: svc}

	external := b.Register
	m.register = func(r httpkit.Router) {
		statshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.swaggerOn {
		swaggerkit.Document(statshttp.Docs(m.Prefix())...)
	}
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Backend reports which store serves the aggregates
func (m *Module) Backend() string { return m.svc.Backend() }
