// Package service contains stats workflows
package service

import (
	"context"

	perr "kudoswall/internal/platform/errors"
	ptime "kudoswall/internal/platform/time"
	"kudoswall/internal/services/api/stats/domain"
	"kudoswall/internal/services/api/stats/repo"
)

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	Repo    repo.Repo
	backend string
}

// New constructs a stats service over an already bound repo; backend names it in responses
func New(r repo.Repo, backend string) *Svc {
	if r == nil {
		panic("stats.Service requires a non nil Repo")
	}
	return &Svc{Repo: r, backend: backend}
}

// Backend is the name of the store aggregates come from
func (s *Svc) Backend() string { return s.backend }

// Summary returns totals by team, by category and per day for the window
func (s *Svc) Summary(ctx context.Context, in domain.SummaryInput) (domain.Summary, error) {
	w, err := resolve(in.Range, in.Team)
	if err != nil {
		return domain.Summary{}, err
	}
	out := domain.Summary{Backend: s.backend}
	if out.Total, err = s.Repo.Total(ctx, w); err != nil {
		return domain.Summary{}, err
	}
	if out.ByTeam, err = s.Repo.ByTeam(ctx, w); err != nil {
		return domain.Summary{}, err
	}
	if out.ByCategory, err = s.Repo.ByCategory(ctx, w); err != nil {
		return domain.Summary{}, err
	}
	if out.Daily, err = s.Repo.Daily(ctx, w); err != nil {
		return domain.Summary{}, err
	}
	return out, nil
}

// TopRecipients ranks recipients by kudos received in the window, 10 unless asked otherwise
func (s *Svc) TopRecipients(ctx context.Context, in domain.TopRecipientsInput) ([]domain.RecipientRow, error) {
	w, err := resolve(in.Range, in.Team)
	if err != nil {
		return nil, err
	}
	limit := in.Limit
	if limit <= 0 {
		limit = 10
	}
	return s.Repo.TopRecipients(ctx, w, limit)
}

// resolve turns inclusive dates into the half open window repos query
func resolve(r domain.TimeRange, team string) (domain.Window, error) {
	from, err := ptime.ParseDate(r.Start)
	if err != nil {
		return domain.Window{}, perr.WithField(perr.InvalidArgf("start must be YYYY-MM-DD"), "start")
	}
	to, err := ptime.ParseDate(r.End)
	if err != nil {
		return domain.Window{}, perr.WithField(perr.InvalidArgf("end must be YYYY-MM-DD"), "end")
	}
	if to.Before(from) {
		return domain.Window{}, perr.WithField(perr.InvalidArgf("end %s is before start %s", r.End, r.Start), "end")
	}
	start, end := ptime.DayBounds(from, to)
	return domain.Window{Start: start, End: end, Team: team}, nil
}
