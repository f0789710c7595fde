// Package module mounts the meta endpoints: liveness, readiness, build info and enums
package module

import (
	"net/http"
	"time"

	"kudoswall/internal/core/version"
	modkit "kudoswall/internal/modkit"
	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/swaggerkit"
	str "kudoswall/internal/platform/strings"

	kudos "kudoswall/internal/services/api/kudos/domain"
	metahttp "kudoswall/internal/services/api/meta/http"
)

// Module implements modkit.Module
type Module struct {
	name      string
	prefix    string
	mws       []func(http.Handler) http.Handler
	swaggerOn bool
	deps      metahttp.Deps
	register  func(httpkit.Router)
}

// Probes turns the store seams into readiness probes
// postgres is required, clickhouse only counts when configured
func Probes(deps modkit.Deps) []metahttp.Probe {
	pg := metahttp.Probe{Name: "pg", Required: true}
	if p, ok := deps.PG.(metahttp.Pinger); ok {
		pg.Check = p
	}
	ch := metahttp.Probe{Name: "clickhouse"}
	if deps.CH != nil {
		ch.Check = deps.CH
	}
	return []metahttp.Probe{pg, ch}
}

// New builds the meta module; it exposes no ports
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		deps: metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   time.Now(),
			Probes:      Probes(deps),
			MaxLimit:    kudos.MaxLimit,
		},
	}
	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, m.deps)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes implements modkit.Module
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.swaggerOn {
		swaggerkit.Document(metahttp.Docs(m.Prefix())...)
	}
	r.Route(m.Prefix(), func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		m.register(rr)
	})
}

// Name implements modkit.Module
func (m *Module) Name() string { return str.MustString(m.name, "meta") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements modkit.Module
func (m *Module) Ports() any { return nil }
