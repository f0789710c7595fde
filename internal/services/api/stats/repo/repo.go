// Package repo provides postgres and clickhouse access for stats
package repo

import (
	"context"

	"kudoswall/internal/modkit/repokit"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/store"
	str "kudoswall/internal/platform/strings"
	"kudoswall/internal/services/api/stats/domain"
)

// Repo is the minimal persistence surface for stats
type Repo interface {
	Total(ctx context.Context, w domain.Window) (int64, error)
	ByTeam(ctx context.Context, w domain.Window) ([]domain.Bucket, error)
	ByCategory(ctx context.Context, w domain.Window) ([]domain.Bucket, error)
	Daily(ctx context.Context, w domain.Window) ([]domain.DayBucket, error)
	TopRecipients(ctx context.Context, w domain.Window, limit int) ([]domain.RecipientRow, error)
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

// $1 start inclusive, $2 end exclusive, $3 team or null
const window = `
where k.created_at >= $1 and k.created_at < $2
and ($3::text is null or k.team_name = $3)
`

func args(w domain.Window) []any { return []any{w.Start, w.End, str.SQLNull(w.Team)} }

func (r *queries) Total(ctx context.Context, w domain.Window) (int64, error) {
	n, err := store.Scalar[int64](ctx, r.q, `select count(1) from kudos k`+window, args(w)...)
	return n, perr.FromPostgres(err, "count kudos in window")
}

func (r *queries) ByTeam(ctx context.Context, w domain.Window) ([]domain.Bucket, error) {
	out, err := store.Many(ctx, r.q, scanBucket, `
select k.team_name, count(1) as n
from kudos k`+window+`
group by k.team_name
order by n desc, k.team_name asc
`, args(w)...)
	return out, perr.FromPostgres(err, "kudos by team")
}

func (r *queries) ByCategory(ctx context.Context, w domain.Window) ([]domain.Bucket, error) {
	out, err := store.Many(ctx, r.q, scanBucket, `
select k.category, count(1) as n
from kudos k`+window+`
group by k.category
order by n desc, k.category asc
`, args(w)...)
	return out, perr.FromPostgres(err, "kudos by category")
}

func (r *queries) Daily(ctx context.Context, w domain.Window) ([]domain.DayBucket, error) {
	out, err := store.Many(ctx, r.q, scanDay, `
select (k.created_at at time zone 'UTC')::date::text as day, count(1) as n
from kudos k`+window+`
group by day
order by day asc
`, args(w)...)
	return out, perr.FromPostgres(err, "kudos per day")
}

func (r *queries) TopRecipients(ctx context.Context, w domain.Window, limit int) ([]domain.RecipientRow, error) {
	out, err := store.Many(ctx, r.q, scanRecipient, `
select k.recipient_id::text, u.name, count(1) as n
from kudos k
join users u on u.id = k.recipient_id`+window+`
group by k.recipient_id, u.name
order by n desc, u.name asc
limit $4
`, append(args(w), limit)...)
	return out, perr.FromPostgres(err, "top recipients")
}

func scanBucket(row repokit.Row) (domain.Bucket, error) {
	var b domain.Bucket
	err := row.Scan(&b.Key, &b.Kudos)
	return b, err
}

func scanDay(row repokit.Row) (domain.DayBucket, error) {
	var d domain.DayBucket
	err := row.Scan(&d.Day, &d.Kudos)
	return d, err
}

func scanRecipient(row repokit.Row) (domain.RecipientRow, error) {
	var rr domain.RecipientRow
	err := row.Scan(&rr.RecipientID, &rr.RecipientName, &rr.Kudos)
	return rr, err
}
