// Package module wires users into the API using modkit
package module

import (
	"net/http"

	modkit "kudoswall/internal/modkit"
	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/swaggerkit"
	str "kudoswall/internal/platform/strings"
	"kudoswall/internal/services/api/users/domain"
	usershttp "kudoswall/internal/services/api/users/http"
	usersrepo "kudoswall/internal/services/api/users/repo"
	userssvc "kudoswall/internal/services/api/users/service"
)

// Module implements the users module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	register func(httpkit.Router)

	svc *userssvc.Svc
}

// Ports are what the users module exposes; Users also answers Exists for the kudos module
type Ports struct {
	Users domain.ServicePort
}

// New constructs the users module
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("users"), modkit.WithPrefix("/users")}, opts...)...)

	svc := userssvc.New(deps.PG, usersrepo.NewPG())
	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		svc:       svc,
		ports:     Ports{Users: svc},
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		usershttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.swaggerOn {
		swaggerkit.Document(usershttp.Docs(m.Prefix())...)
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

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
