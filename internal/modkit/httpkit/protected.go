package httpkit

import (
	"kudoswall/internal/modkit/swaggerkit"
	"kudoswall/internal/platform/net/middleware"
)

// Protected groups routes under bearer auth and marks them secured in the API docs
// a nil port leaves the group open
func Protected(r Router, base string, p middleware.AuthPort, fn func(Router)) {
	r.Group(func(gr Router) {
		if p == nil {
			fn(gr)
			return
		}
		gr.Use(Auth(p))
		fn(&securedRouter{Router: gr, base: base})
	})
}

type securedRouter struct {
	Router
	base string
}

func (s *securedRouter) Get(path string, h Handler) {
	swaggerkit.MarkSecured(s.base+path, "get")
	s.Router.Get(path, h)
}

func (s *securedRouter) Post(path string, h Handler) {
	swaggerkit.MarkSecured(s.base+path, "post")
	s.Router.Post(path, h)
}

func (s *securedRouter) Route(pattern string, fn func(Router)) {
	s.Router.Route(pattern, func(sub Router) {
		fn(&securedRouter{Router: sub, base: s.base + pattern})
	})
}

func (s *securedRouter) Group(fn func(Router)) {
	s.Router.Group(func(sub Router) {
		fn(&securedRouter{Router: sub, base: s.base})
	})
}
