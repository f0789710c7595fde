// Package repo provides postgres access for users
package repo

import (
	"context"
	"time"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/modkit/repokit"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/store"
	str "kudoswall/internal/platform/strings"
	"kudoswall/internal/services/api/users/domain"

	"github.com/google/uuid"
)

// Repo is the persistence surface for users
type Repo interface {
	Get(ctx context.Context, id string) (domain.User, error)
	List(ctx context.Context, q domain.Query, p pagination.Params) (pagination.Result[domain.User], error)
	Exists(ctx context.Context, id string) (bool, error)
}

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements the Repo interface
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const selectUser = `
select id::text, name, email, team, roles, created_at
from users
`

const listWhere = `
where ($1::text is null or name ilike $1 or email ilike $1)
and ($2::text is null or $2 = any(roles))
and ($3::text is null or team = $3)
`

func (r *queries) Get(ctx context.Context, id string) (domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.User{}, perr.WithField(perr.InvalidArgf("id must be a uuid"), "id")
	}
	u, err := store.One(ctx, r.q, scanUser, selectUser+`where id = $1`, id)
	switch {
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return domain.User{}, perr.NotFoundf("user %s not found", id)
	case err != nil:
		return domain.User{}, perr.FromPostgres(err, "get user")
	}
	return u, nil
}

func (r *queries) List(ctx context.Context, q domain.Query, p pagination.Params) (pagination.Result[domain.User], error) {
	var none pagination.Result[domain.User]
	if err := p.Validate(); err != nil {
		return none, err
	}
	var search any
	if q.Search != "" {
		search = str.LikePattern(q.Search)
	}
	args := []any{search, str.SQLNull(string(q.Role)), str.SQLNull(q.Team)}

	total, err := store.Scalar[int64](ctx, r.q, `select count(1) from users`+listWhere, args...)
	if err != nil {
		return none, perr.FromPostgres(err, "count users")
	}
	if p.PastEnd(total) {
		return pagination.NewResult[domain.User](nil, p, int(total)), nil
	}
	items, err := store.Many(ctx, r.q, scanUser,
		selectUser+listWhere+`order by name asc, id asc limit $4 offset $5`,
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return none, perr.FromPostgres(err, "list users")
	}
	return pagination.NewResult(items, p, int(total)), nil
}

// Exists is false for ids that are not uuids
func (r *queries) Exists(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	ok, err := store.Scalar[bool](ctx, r.q, `select exists(select 1 from users where id = $1)`, id)
	if err != nil {
		return false, perr.FromPostgres(err, "user exists")
	}
	return ok, nil
}

func scanUser(row repokit.Row) (domain.User, error) {
	var (
		u       domain.User
		roles   []string
		created time.Time
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Team, &roles, &created); err != nil {
		return domain.User{}, err
	}
	u.Roles = domain.ParseRoles(roles)
	u.CreatedAt = created.UTC()
	return u, nil
}
