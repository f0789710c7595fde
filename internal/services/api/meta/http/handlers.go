// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"kudoswall/internal/core/version"
	"kudoswall/internal/modkit/httpkit"
	"kudoswall/internal/modkit/swaggerkit"
	kudos "kudoswall/internal/services/api/kudos/domain"
	users "kudoswall/internal/services/api/users/domain"
)

// Pinger is satisfied by adapters that expose Ping
type Pinger interface {
	Ping(stdctx.Context) error
}

// Probe is one readiness dependency; a nil Check means the backend is not configured
type Probe struct {
	Name     string
	Required bool
	Check    Pinger
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Probes      []Probe
	MaxLimit    int
	Now         func() time.Time
	PingTimeout time.Duration
}

// Readiness states
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusFail     = "fail"
	StatusSkipped  = "skipped"
)

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.PingTimeout <= 0 {
		d.PingTimeout = 2 * time.Second
	}
	if d.MaxLimit <= 0 {
		d.MaxLimit = kudos.MaxLimit
	}
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/enums", h.enums)
}

// Docs describes the routes Register mounts
func Docs(prefix string) []swaggerkit.Operation {
	return []swaggerkit.Operation{
		{Method: "GET", Path: prefix + "/health", Tag: "Meta", Summary: "Liveness"},
		{Method: "GET", Path: prefix + "/ready", Tag: "Meta", Summary: "Readiness with per backend checks"},
		{Method: "GET", Path: prefix + "/version", Tag: "Meta", Summary: "Build info"},
		{Method: "GET", Path: prefix + "/service", Tag: "Meta", Summary: "Service name and uptime"},
		{Method: "GET", Path: prefix + "/enums", Tag: "Meta", Summary: "Teams, categories, roles and paging limits for filter pickers"},
	}
}

// HealthResponse is the liveness payload
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"kudos-api"`
	Now     string `json:"now"     example:"2025-09-03T13:05:00Z"`
}

// ReadyCheck is the outcome of one probe
type ReadyCheck struct {
	Name     string `json:"name"      example:"pg"`
	Required bool   `json:"required"  example:"true"`
	Status   string `json:"status"    example:"ok"`
	Latency  int64  `json:"latencyMs" example:"3"`
	Error    string `json:"error,omitempty" example:"dial tcp 127.0.0.1:5432 connect: connection refused"`
}

// ReadyResponse summarizes readiness; a failing required probe fails, an optional one degrades
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2025-09-03T13:05:00Z"`
}

// ServiceResponse describes the running service
type ServiceResponse struct {
	Name    string `json:"name"    example:"kudos-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// EnumsResponse lists every closed value set a client filters by
type EnumsResponse struct {
	Teams        []kudos.Team          `json:"teams"`
	Categories   []kudos.Category      `json:"categories"`
	KudosTypes   []kudos.UserKudosType `json:"kudosTypes"`
	Roles        []users.Role          `json:"roles"`
	DefaultLimit int                   `json:"defaultLimit" example:"10"`
	MaxLimit     int                   `json:"maxLimit"     example:"100"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Now:     h.deps.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.PingTimeout)
	defer cancel()

	out := ReadyResponse{Status: StatusOK, Checks: make([]ReadyCheck, 0, len(h.deps.Probes))}
	for _, p := range h.deps.Probes {
		c := h.probe(ctx, p)
		out.Checks = append(out.Checks, c)
		switch {
		case c.Status != StatusFail:
		case p.Required:
			out.Status = StatusFail
		case out.Status == StatusOK:
			out.Status = StatusDegraded
		}
	}
	out.Now = h.deps.Now().UTC().Format(time.RFC3339)
	return out, nil
}

// probe pings one backend; an unconfigured required backend fails
func (h *handlers) probe(ctx stdctx.Context, p Probe) ReadyCheck {
	c := ReadyCheck{Name: p.Name, Required: p.Required}
	if p.Check == nil {
		c.Status = StatusSkipped
		if p.Required {
			c.Status = StatusFail
			c.Error = "not configured"
		}
		return c
	}
	start := h.deps.Now()
	err := p.Check.Ping(ctx)
	c.Latency = h.deps.Now().Sub(start).Milliseconds()
	if err != nil {
		c.Status = StatusFail
		c.Error = err.Error()
		return c
	}
	c.Status = StatusOK
	return c
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.deps.Now().Sub(h.deps.StartedAt) / time.Second),
	}, nil
}

func (h *handlers) enums(_ *http.Request) (any, error) {
	return EnumsResponse{
		Teams:        kudos.Teams(),
		Categories:   kudos.Categories(),
		KudosTypes:   []kudos.UserKudosType{kudos.Received, kudos.Sent},
		Roles:        users.Roles(),
		DefaultLimit: kudos.DefaultLimit,
		MaxLimit:     h.deps.MaxLimit,
	}, nil
}
