// Package http provides http transport for kudos
package http

import (
	stdhttp "net/http"

	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/swaggerkit"
	"kudoswall/internal/services/api/kudos/domain"
	svc "kudoswall/internal/services/api/kudos/service"
)

// Register mounts kudos endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// filtered, paginated wall
	httpkit.PostJSON[domain.ListInput](r, "/list", h.list)

	// kudos a user received or sent
	httpkit.PostJSON[domain.ByUserInput](r, "/by-user", h.byUser)

	// single kudos
	httpkit.Get(r, "/{id}", h.get)
}

// Docs describes the routes Register mounts, relative to prefix
func Docs(prefix string) []swaggerkit.Operation {
	return []swaggerkit.Operation{
		{
			Method: "POST", Path: prefix + "/list", Tag: "Kudos", Summary: "List kudos with filter and pagination",
			Body: domain.ListInput{Team: "engineering", Search: "thanks", Page: 1, Limit: 10},
		},
		{
			Method: "POST", Path: prefix + "/by-user", Tag: "Kudos", Summary: "List kudos a user received or sent",
			Body: domain.ByUserInput{UserID: "7b0c3f7e-7c53-4c1e-9b7d-3f2a1d0e8c11", Type: "received", Page: 1, Limit: 10},
		},
		{Method: "GET", Path: prefix + "/{id}", Tag: "Kudos", Summary: "Get a kudos by id", Params: []string{"id"}},
	}
}

type handlers struct{ svc svc.Service }

// @Summary List kudos with filter and pagination
// @Tags Kudos
// @Accept json
// @Produce json
// @Param payload body domain.ListInput true "Filter and page"
// @Router /kudos/list [post]
func (h *handlers) list(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.List(r.Context(), in)
}

// @Summary List kudos a user received or sent
// @Tags Kudos
// @Accept json
// @Produce json
// @Param payload body domain.ByUserInput true "User and page"
// @Router /kudos/by-user [post]
func (h *handlers) byUser(r *stdhttp.Request, in domain.ByUserInput) (any, error) {
	return h.svc.ByUser(r.Context(), in)
}

// @Summary Get a kudos by id
// @Tags Kudos
// @Produce json
// @Param id path string true "Kudos id"
// @Router /kudos/{id} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	return h.svc.Get(r.Context(), httpkit.Param(r, "id"))
}
