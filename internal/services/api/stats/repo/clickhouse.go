package repo

import (
	"context"

	"kudoswall/internal/modkit/repokit"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/store"
	"kudoswall/internal/services/api/stats/domain"
)

// CH reads the same aggregates from the kudos_events table
type CH struct{ ch repokit.Clickhouse }

// NewCH returns a clickhouse backed Repo
func NewCH(ch repokit.Clickhouse) *CH {
	if ch == nil {
		panic("stats.CH requires a non nil Clickhouse")
	}
	return &CH{ch: ch}
}

// counts come back as UInt64, so every aggregate is cast to Int64 for the scanners
const chWindow = `
where created_at >= ? and created_at < ?
and (? = '' or team_name = ?)
`

func chArgs(w domain.Window) []any { return []any{w.Start, w.End, w.Team, w.Team} }

func (c *CH) Total(ctx context.Context, w domain.Window) (int64, error) {
	rows, err := c.ch.Query(ctx, `select toInt64(count()) from kudos_events final`+chWindow, chArgs(w)...)
	if err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "count kudos events")
	}
	ns, err := store.Collect(rows, func(r repokit.Row) (int64, error) {
		var n int64
		return n, r.Scan(&n)
	})
	if err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeDB, "count kudos events")
	}
	if len(ns) == 0 {
		return 0, nil
	}
	return ns[0], nil
}

func (c *CH) ByTeam(ctx context.Context, w domain.Window) ([]domain.Bucket, error) {
	return chBuckets(ctx, c, "team_name", "kudos events by team", w)
}

func (c *CH) ByCategory(ctx context.Context, w domain.Window) ([]domain.Bucket, error) {
	return chBuckets(ctx, c, "category", "kudos events by category", w)
}

func chBuckets(ctx context.Context, c *CH, col, op string, w domain.Window) ([]domain.Bucket, error) {
	rows, err := c.ch.Query(ctx, `
select `+col+`, toInt64(count()) as n
from kudos_events final`+chWindow+`
group by `+col+`
order by n desc, `+col+` asc
`, chArgs(w)...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, op)
	}
	out, err := store.Collect(rows, scanBucket)
	return out, perr.WrapIf(err, perr.ErrorCodeDB, op)
}

func (c *CH) Daily(ctx context.Context, w domain.Window) ([]domain.DayBucket, error) {
	rows, err := c.ch.Query(ctx, `
select toString(toDate(created_at)) as day, toInt64(count()) as n
from kudos_events final`+chWindow+`
group by day
order by day asc
`, chArgs(w)...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "kudos events per day")
	}
	out, err := store.Collect(rows, scanDay)
	return out, perr.WrapIf(err, perr.ErrorCodeDB, "kudos events per day")
}

func (c *CH) TopRecipients(ctx context.Context, w domain.Window, limit int) ([]domain.RecipientRow, error) {
	rows, err := c.ch.Query(ctx, `
select toString(recipient_id), any(recipient_name), toInt64(count()) as n
from kudos_events final`+chWindow+`
group by recipient_id
order by n desc, recipient_id asc
limit ?
`, append(chArgs(w), limit)...)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeDB, "top recipients")
	}
	out, err := store.Collect(rows, scanRecipient)
	return out, perr.WrapIf(err, perr.ErrorCodeDB, "top recipients")
}
