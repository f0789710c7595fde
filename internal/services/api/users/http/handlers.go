// Package http provides http transport for users
package http

import (
	stdhttp "net/http"

	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/swaggerkit"
	"kudoswall/internal/services/api/users/domain"
	svc "kudoswall/internal/services/api/users/service"
)

// Register mounts user endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)
	httpkit.Get(r, "/me", h.me)
	httpkit.Get(r, "/{id}", h.get)
}

// Docs describes the routes Register mounts
func Docs(prefix string) []swaggerkit.Operation {
	return []swaggerkit.Operation{
		{
			Method: "POST", Path: prefix + "/list", Tag: "Users", Summary: "List users",
			Body: domain.ListInput{Search: "ada", Page: 1, Limit: 20},
		},
		{Method: "GET", Path: prefix + "/me", Tag: "Users", Summary: "The authenticated caller with capabilities"},
		{Method: "GET", Path: prefix + "/{id}", Tag: "Users", Summary: "Get a user with capabilities", Params: []string{"id"}},
	}
}

type handlers struct{ svc svc.Service }

// @Summary List users
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filter and page"
// @Router /users/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary The authenticated caller with capabilities
// @Tags Users
// @Produce json
// @Router /users/me [get]
func (h *handlers) me(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.User(r)
	if err != nil {
		return nil, err
	}
	return h.svc.Get(r.Context(), uid)
}

// @Summary Get a user with capabilities
// @Tags Users
// @Produce json
// @Param id path string true "User id"
// @Router /users/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}
