package domain

import (
	"context"

	"kudoswall/internal/core/pagination"
)

// ListInput is the body of POST /users/list
type ListInput struct {
	Search string `json:"search,omitempty" validate:"omitempty,max=200" example:"ada"`
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=SUPER_ADMIN ADMIN USER" example:"ADMIN"`
	Team   string `json:"team,omitempty" validate:"omitempty,oneof=engineering product design marketing sales support operations" example:"engineering"`
	Page   int    `json:"page,omitempty" validate:"omitempty,min=1" example:"1"`
	Limit  int    `json:"limit,omitempty" validate:"omitempty,min=1,max=100" example:"20"`
}

// Query is the repo level user filter
type Query struct {
	Search string
	Role   Role
	Team   string
}

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Get(ctx context.Context, id string) (Profile, error)
	List(ctx context.Context, in ListInput) (pagination.Result[Profile], error)
	Exists(ctx context.Context, id string) (bool, error)
}
