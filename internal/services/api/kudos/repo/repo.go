// Package repo provides postgres access for kudos
package repo

import (
	"context"
	"time"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/modkit/repokit"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/store"
	str "kudoswall/internal/platform/strings"
	ptime "kudoswall/internal/platform/time"
	"kudoswall/internal/services/api/kudos/domain"

	"github.com/google/uuid"
)

// Repo is the persistence surface for kudos
type Repo interface {
	domain.Repository
	Get(ctx context.Context, id string) (domain.Kudos, error)
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

const selectCols = `
select k.id::text, k.recipient_id::text, r.name, k.team_name, k.category,
       k.message, k.created_by::text, a.name, k.created_at
from kudos k
join users r on r.id = k.recipient_id
join users a on a.id = k.created_by
`

// $1 recipient id, $2 recipient name pattern, $3 team, $4 category,
// $5 search pattern, $6 from inclusive, $7 to exclusive; null means unconstrained
const filterWhere = `
where ($1::uuid is null or k.recipient_id = $1)
and ($2::text is null or r.name ilike $2)
and ($3::text is null or k.team_name = $3)
and ($4::text is null or k.category = $4)
and ($5::text is null or k.search_text like $5)
and ($6::timestamptz is null or k.created_at >= $6)
and ($7::timestamptz is null or k.created_at < $7)
`

const newestFirst = `
order by k.created_at desc, k.id desc
`

func (r *queries) GetAll(ctx context.Context, f domain.Filter, p pagination.Params) (pagination.Result[domain.Kudos], error) {
	var none pagination.Result[domain.Kudos]
	if err := p.Validate(); err != nil {
		return none, err
	}
	if err := f.Validate(); err != nil {
		return none, err
	}
	args, err := filterArgs(f)
	if err != nil {
		return none, err
	}

	total, err := store.Scalar[int64](ctx, r.q, `
select count(1)
from kudos k
join users r on r.id = k.recipient_id
`+filterWhere, args...)
	if err != nil {
		return none, perr.FromPostgres(err, "count kudos")
	}
	if p.PastEnd(total) {
		return pagination.NewResult[domain.Kudos](nil, p, int(total)), nil
	}

	items, err := store.Many(ctx, r.q, scanKudos,
		selectCols+filterWhere+newestFirst+`limit $8 offset $9`,
		append(args, p.Limit, p.Offset())...)
	if err != nil {
		return none, perr.FromPostgres(err, "list kudos")
	}
	return pagination.NewResult(items, p, int(total)), nil
}

func (r *queries) GetByUser(ctx context.Context, userID string, t domain.UserKudosType, p pagination.Params) (pagination.Result[domain.Kudos], error) {
	var none pagination.Result[domain.Kudos]
	if err := p.Validate(); err != nil {
		return none, err
	}
	if _, err := uuid.Parse(userID); err != nil {
		return none, perr.WithField(perr.InvalidArgf("user id must be a uuid"), "user_id")
	}

	var col string
	switch t {
	case domain.Received:
		col = "k.recipient_id"
	case domain.Sent:
		col = "k.created_by"
	default:
		return none, perr.WithField(perr.InvalidArgf("type must be received or sent, got %q", t), "type")
	}
	where := "\nwhere " + col + " = $1\n"

	total, err := store.Scalar[int64](ctx, r.q, `select count(1) from kudos k`+where, userID)
	if err != nil {
		return none, perr.FromPostgres(err, "count user kudos")
	}
	if p.PastEnd(total) {
		return pagination.NewResult[domain.Kudos](nil, p, int(total)), nil
	}

	items, err := store.Many(ctx, r.q, scanKudos,
		selectCols+where+newestFirst+`limit $2 offset $3`,
		userID, p.Limit, p.Offset())
	if err != nil {
		return none, perr.FromPostgres(err, "list user kudos")
	}
	return pagination.NewResult(items, p, int(total)), nil
}

func (r *queries) Get(ctx context.Context, id string) (domain.Kudos, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.Kudos{}, perr.WithField(perr.InvalidArgf("id must be a uuid"), "id")
	}
	k, err := store.One(ctx, r.q, scanKudos, selectCols+`where k.id = $1`, id)
	switch {
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		return domain.Kudos{}, perr.NotFoundf("kudos %s not found", id)
	case err != nil:
		return domain.Kudos{}, perr.FromPostgres(err, "get kudos")
	}
	return k, nil
}

// filterArgs maps f to the positional args of filterWhere
// a uuid recipient matches the recipient id, anything else the recipient name
func filterArgs(f domain.Filter) ([]any, error) {
	from, to, err := f.Dates()
	if err != nil {
		return nil, err
	}
	start, end := ptime.DayBounds(from, to)

	var recipientID, recipientName any
	if rc := f.Recipient; rc != "" {
		if id, err := uuid.Parse(rc); err == nil {
			recipientID = id.String()
		} else {
			recipientName = str.LikePattern(rc)
		}
	}
	var search any
	if s := domain.FoldSearch(f.Search); s != "" {
		search = str.LikePattern(s)
	}

	return []any{
		recipientID,
		recipientName,
		str.SQLNull(string(f.Team)),
		str.SQLNull(string(f.Category)),
		search,
		ptime.Ptr(start),
		ptime.Ptr(end),
	}, nil
}

func scanKudos(row repokit.Row) (domain.Kudos, error) {
	var (
		k        domain.Kudos
		team     string
		category string
		created  time.Time
	)
	if err := row.Scan(
		&k.ID, &k.RecipientID, &k.RecipientName, &team, &category,
		&k.Message, &k.CreatedBy, &k.CreatedByName, &created,
	); err != nil {
		return domain.Kudos{}, err
	}
	k.TeamName = domain.Team(team)
	k.Category = domain.Category(category)
	k.CreatedAt = created.UTC()
	return k, nil
}
