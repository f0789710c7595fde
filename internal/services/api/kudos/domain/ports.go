package domain

import (
	"context"

	"kudoswall/internal/core/pagination"
)

// Repository is the read contract for kudos collections
// implementations order newest first and never clamp a page past the end
type Repository interface {
	GetAll(ctx context.Context, f Filter, p pagination.Params) (pagination.Result[Kudos], error)
	GetByUser(ctx context.Context, userID string, t UserKudosType, p pagination.Params) (pagination.Result[Kudos], error)
}

// UserDirectory answers whether a user exists; served by the users module
type UserDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	List(ctx context.Context, in ListInput) (pagination.Result[Kudos], error)
	ByUser(ctx context.Context, in ByUserInput) (pagination.Result[Kudos], error)
	Get(ctx context.Context, id string) (Kudos, error)
}
