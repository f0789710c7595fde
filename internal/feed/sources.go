package feed

import (
	"context"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/services/api/kudos/domain"
)

// ListExecutor is satisfied by the GetKudos use case
type ListExecutor interface {
	Execute(ctx context.Context, f domain.Filter, page, limit int) (pagination.Result[domain.Kudos], error)
}

// UserExecutor is satisfied by the GetUserKudos use case
type UserExecutor interface {
	Execute(ctx context.Context, userID string, t domain.UserKudosType, page, limit int) (pagination.Result[domain.Kudos], error)
}

// Kudos adapts the wall listing use case
func Kudos(uc ListExecutor) Source {
	return uc.Execute
}

// UserKudos adapts the per user use case; the feed filter is ignored
func UserKudos(uc UserExecutor, userID string, t domain.UserKudosType) Source {
	return func(ctx context.Context, _ domain.Filter, page, limit int) (pagination.Result[domain.Kudos], error) {
		return uc.Execute(ctx, userID, t, page, limit)
	}
}
