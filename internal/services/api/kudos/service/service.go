// Package service contains kudos workflows
package service

import (
	"context"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/modkit/repokit"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/logger"
	"kudoswall/internal/services/api/kudos/domain"
	"kudoswall/internal/services/api/kudos/repo"
)

// Service defines the kudos service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the kudos service over the postgres repo
type Svc struct {
	Repo  repo.Repo
	Users domain.UserDirectory

	list   *GetKudos
	byUser *GetUserKudos
}

// New constructs a kudos service; users may be nil to skip existence checks
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], users domain.UserDirectory) *Svc {
	if db == nil {
		panic("kudos.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("kudos.Service requires a non nil Repo binder")
	}
	r := binder.Bind(db)
	return &Svc{
		Repo:   r,
		Users:  users,
		list:   NewGetKudos(r),
		byUser: NewGetUserKudos(r),
	}
}

// List returns one page of kudos matching the body filter
func (s *Svc) List(ctx context.Context, in domain.ListInput) (pagination.Result[domain.Kudos], error) {
	page, limit := domain.PageOrDefault(in.Page, in.Limit)
	f := in.Filter()
	logger.C(ctx).Debug().Interface("filter", f).Int("page", page).Int("limit", limit).Msg("list kudos")
	return s.list.Execute(ctx, f, page, limit)
}

// ByUser returns one page of kudos received or sent by a user; unknown users are not found
func (s *Svc) ByUser(ctx context.Context, in domain.ByUserInput) (pagination.Result[domain.Kudos], error) {
	var none pagination.Result[domain.Kudos]
	t, err := domain.ParseUserKudosType(in.Type)
	if err != nil {
		return none, err
	}
	if s.Users != nil {
		ok, err := s.Users.Exists(ctx, in.UserID)
		if err != nil {
			return none, err
		}
		if !ok {
			return none, perr.WithField(perr.NotFoundf("user %s not found", in.UserID), "user_id")
		}
	}
	page, limit := domain.PageOrDefault(in.Page, in.Limit)
	return s.byUser.Execute(ctx, in.UserID, t, page, limit)
}

// Get returns a single kudos
func (s *Svc) Get(ctx context.Context, id string) (domain.Kudos, error) {
	return s.Repo.Get(ctx, id)
}
