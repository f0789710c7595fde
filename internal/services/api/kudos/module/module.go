// Package module wires kudos into the API using modkit
package module

import (
	"net/http"

	modkit "kudoswall/internal/modkit"
	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/swaggerkit"
	str "kudoswall/internal/platform/strings"
	"kudoswall/internal/services/api/kudos/domain"
	kudoshttp "kudoswall/internal/services/api/kudos/http"
	kudosrepo "kudoswall/internal/services/api/kudos/repo"
	kudossvc "kudoswall/internal/services/api/kudos/service"
)

// Module implements the kudos module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	register func(httpkit.Router)

	svc *kudossvc.Svc
}

// Ports are what the kudos module exposes to other modules
type Ports struct {
	Kudos      domain.ServicePort
	Repository domain.Repository
}

// New constructs the kudos module; users backs the by-user existence check and may be nil
func New(deps modkit.Deps, users domain.UserDirectory, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("kudos"), modkit.WithPrefix("/kudos")}, opts...)...)

	svc := kudossvc.New(deps.PG, kudosrepo.NewPG(), users)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		svc:       svc,
		ports:     Ports{Kudos: svc, Repository: svc.Repo},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		kudoshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.swaggerOn {
		swaggerkit.Document(kudoshttp.Docs(m.Prefix())...)
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

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
