// Package service contains user lookups
package service

import (
	"context"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/modkit/repokit"
	"kudoswall/internal/services/api/users/domain"
	"kudoswall/internal/services/api/users/repo"
)

// Service defines the users service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the users service
type Svc struct {
	Repo repo.Repo
}

// New constructs a users service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("users.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("users.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db)}
}

// Get returns a user with derived capabilities
func (s *Svc) Get(ctx context.Context, id string) (domain.Profile, error) {
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.NewProfile(u), nil
}

// List returns one page of users, 20 per page unless the body says otherwise
func (s *Svc) List(ctx context.Context, in domain.ListInput) (pagination.Result[domain.Profile], error) {
	page, limit := in.Page, in.Limit
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	p, err := pagination.NewParams(page, limit)
	if err != nil {
		return pagination.Result[domain.Profile]{}, err
	}
	q := domain.Query{Search: in.Search, Team: in.Team}
	if in.Role != "" {
		if q.Role, err = domain.ParseRole(in.Role); err != nil {
			return pagination.Result[domain.Profile]{}, err
		}
	}
	res, err := s.Repo.List(ctx, q, p)
	if err != nil {
		return pagination.Result[domain.Profile]{}, err
	}
	return pagination.Map(res, domain.NewProfile), nil
}

// Exists reports whether a user with id exists
func (s *Svc) Exists(ctx context.Context, id string) (bool, error) {
	return s.Repo.Exists(ctx, id)
}
