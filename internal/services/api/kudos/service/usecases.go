package service

import (
	"context"
	"strings"

	"kudoswall/internal/core/pagination"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/services/api/kudos/domain"
)

// GetKudos lists kudos matching a filter; repository errors pass through unchanged
type GetKudos struct {
	Repo domain.Repository
}

// NewGetKudos panics on a nil repository
func NewGetKudos(r domain.Repository) *GetKudos {
	if r == nil {
		panic("kudos.GetKudos requires a non nil Repository")
	}
	return &GetKudos{Repo: r}
}

// Execute rejects page or limit below 1 without calling the repository
func (uc *GetKudos) Execute(ctx context.Context, f domain.Filter, page, limit int) (pagination.Result[domain.Kudos], error) {
	p, err := pagination.NewParams(page, limit)
	if err != nil {
		return pagination.Result[domain.Kudos]{}, err
	}
	return uc.Repo.GetAll(ctx, f, p)
}

// GetUserKudos lists the kudos a user received or sent
type GetUserKudos struct {
	Repo domain.Repository
}

// NewGetUserKudos panics on a nil repository
func NewGetUserKudos(r domain.Repository) *GetUserKudos {
	if r == nil {
		panic("kudos.GetUserKudos requires a non nil Repository")
	}
	return &GetUserKudos{Repo: r}
}

// Execute rejects an empty user id, an unknown type and page or limit below 1
func (uc *GetUserKudos) Execute(ctx context.Context, userID string, t domain.UserKudosType, page, limit int) (pagination.Result[domain.Kudos], error) {
	var none pagination.Result[domain.Kudos]
	if strings.TrimSpace(userID) == "" {
		return none, perr.WithField(perr.InvalidArgf("user id is required"), "user_id")
	}
	if !t.Valid() {
		return none, perr.WithField(perr.InvalidArgf("type must be received or sent, got %q", t), "type")
	}
	p, err := pagination.NewParams(page, limit)
	if err != nil {
		return none, err
	}
	return uc.Repo.GetByUser(ctx, userID, t, p)
}
