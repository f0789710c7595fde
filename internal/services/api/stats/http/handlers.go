// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/swaggerkit"
	"kudoswall/internal/services/api/stats/domain"
	svc "kudoswall/internal/services/api/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// totals by team, category and day
	httpkit.PostJSON[domain.SummaryInput](r, "/summary", h.summary)

	// most recognised people in window
	httpkit.PostJSON[domain.TopRecipientsInput](r, "/top-recipients", h.topRecipients)
}

// Docs describes the routes Register mounts
func Docs(prefix string) []swaggerkit.Operation {
	rng := domain.TimeRange{Start: "2025-08-01", End: "2025-08-31"}
	return []swaggerkit.Operation{
		{Method: "POST", Path: prefix + "/summary", Tag: "Stats", Summary: "Dashboard totals", Body: domain.SummaryInput{Range: rng}},
		{Method: "POST", Path: prefix + "/top-recipients", Tag: "Stats", Summary: "Top recipients", Body: domain.TopRecipientsInput{Range: rng, Limit: 10}},
	}
}

type handlers struct{ svc svc.Service }

// @Summary Dashboard totals by team, category and day
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.SummaryInput true "Query"
// @Success 200 {object} domain.Summary "ok"
// @Router /stats/summary [post]
func (h *handlers) summary(r *stdhttp.Request, in domain.SummaryInput) (any, error) {
	return h.svc.Summary(r.Context(), in)
}

// @Summary Top recipients
// @Tags Stats
// @Accept json
// @Produce json
// @Param payload body domain.TopRecipientsInput true "Query"
// @Success 200 {array} domain.RecipientRow "ok"
// @Router /stats/top-recipients [post]
func (h *handlers) topRecipients(r *stdhttp.Request, in domain.TopRecipientsInput) (any, error) {
	return h.svc.TopRecipients(r.Context(), in)
}
