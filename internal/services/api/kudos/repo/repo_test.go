package repo

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/modkit/repokit"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/store"
	"kudoswall/internal/services/api/kudos/domain"
)

type call struct {
	sql  string
	args []any
}

// fakeQ answers count queries with total and window queries with rows
type fakeQ struct {
	total int64
	rows  [][]any
	err   error
	calls []call
}

func (q *fakeQ) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }

func (q *fakeQ) Query(_ context.Context, sql string, args ...any) (store.Rows, error) {
	q.calls = append(q.calls, call{sql, args})
	if q.err != nil {
		return nil, q.err
	}
	return &fakeRows{data: q.rows}, nil
}

func (q *fakeQ) QueryRow(_ context.Context, sql string, args ...any) store.Row {
	q.calls = append(q.calls, call{sql, args})
	return countRow{n: q.total, err: q.err}
}

type countRow struct {
	n   int64
	err error
}

func (r countRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = r.n
	return nil
}

type fakeRows struct {
	data [][]any
	i    int
}

func (r *fakeRows) Next() bool { r.i++; return r.i <= len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.data[r.i-1][i].(string)
		case *time.Time:
			*p = r.data[r.i-1][i].(time.Time)
		}
	}
	return nil
}
func (r *fakeRows) Err() error        { return nil }
func (r *fakeRows) Close()            {}
func (r *fakeRows) Columns() []string { return nil }

var _ repokit.Queryer = (*fakeQ)(nil)

func kudosRow(id string, at time.Time) []any {
	return []any{id, "11111111-1111-1111-1111-111111111111", "Ada", "engineering", "teamwork",
		"thanks", "22222222-2222-2222-2222-222222222222", "Grace", at}
}

func TestGetAll_ArgsAndMeta(t *testing.T) {
	at := time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC)
	q := &fakeQ{total: 25, rows: [][]any{kudosRow("a", at), kudosRow("b", at)}}
	r := NewPG().Bind(q)

	f := domain.Filter{Team: domain.TeamEngineering, Search: "Thanks_", From: "2025-08-01", To: "2025-08-31", Recipient: "ada"}
	res, err := r.GetAll(context.Background(), f, pagination.Params{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(res.Data) != 2 || res.Data[0].TeamName != domain.TeamEngineering || res.Data[1].CreatedByName != "Grace" {
		t.Fatalf("data = %+v", res.Data)
	}
	want := pagination.Meta{TotalItems: 25, ItemsPerPage: 10, CurrentPage: 2, TotalPages: 3}
	if res.Pagination != want {
		t.Fatalf("meta = %+v", res.Pagination)
	}

	if len(q.calls) != 2 {
		t.Fatalf("want count + window, got %d calls", len(q.calls))
	}
	args := q.calls[1].args
	if args[0] != nil || args[1] != "%ada%" || args[2] != "engineering" || args[3] != nil {
		t.Fatalf("filter args = %#v", args[:4])
	}
	if args[4] != `%thanks\_%` {
		t.Fatalf("search arg = %#v", args[4])
	}
	if end := args[6].(*time.Time); !end.Equal(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("to bound = %v", end)
	}
	if args[7] != 10 || args[8] != 10 {
		t.Fatalf("limit/offset = %v/%v", args[7], args[8])
	}
	if !strings.Contains(q.calls[1].sql, "order by k.created_at desc, k.id desc") {
		t.Fatalf("window query not ordered newest first")
	}
}

func TestGetAll_RecipientUUIDMatchesID(t *testing.T) {
	q := &fakeQ{}
	id := "11111111-1111-1111-1111-111111111111"
	if _, err := NewPG().Bind(q).GetAll(context.Background(), domain.Filter{Recipient: id}, pagination.Params{Page: 1, Limit: 5}); err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if args := q.calls[0].args; args[0] != id || args[1] != nil {
		t.Fatalf("recipient args = %#v", args[:2])
	}
}

func TestGetAll_PastLastPageSkipsWindow(t *testing.T) {
	q := &fakeQ{total: 25}
	res, err := NewPG().Bind(q).GetAll(context.Background(), domain.Filter{}, pagination.Params{Page: 4, Limit: 10})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(q.calls) != 1 {
		t.Fatalf("window query should be skipped, got %d calls", len(q.calls))
	}
	if res.Data == nil || len(res.Data) != 0 || res.Pagination.CurrentPage != 4 || res.Pagination.TotalPages != 3 {
		t.Fatalf("result = %+v", res)
	}
}

func TestHugePageIsPastEnd(t *testing.T) {
	p := pagination.Params{Page: math.MaxInt / 5, Limit: 10}

	q := &fakeQ{total: 25}
	res, err := NewPG().Bind(q).GetAll(context.Background(), domain.Filter{}, p)
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(q.calls) != 1 || res.Data == nil || len(res.Data) != 0 {
		t.Fatalf("GetAll calls = %d, data = %v", len(q.calls), res.Data)
	}
	if res.Pagination.CurrentPage != p.Page || res.Pagination.TotalPages != 3 {
		t.Fatalf("meta = %+v", res.Pagination)
	}

	q = &fakeQ{total: 25}
	res, err = NewPG().Bind(q).GetByUser(context.Background(), "22222222-2222-2222-2222-222222222222", domain.Received, p)
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(q.calls) != 1 || len(res.Data) != 0 || res.Pagination.TotalItems != 25 {
		t.Fatalf("GetByUser calls = %d, result = %+v", len(q.calls), res)
	}
}

func TestGetAll_RejectsBadInput(t *testing.T) {
	q := &fakeQ{}
	r := NewPG().Bind(q)
	if _, err := r.GetAll(context.Background(), domain.Filter{}, pagination.Params{Page: 0, Limit: 10}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("page 0 err = %v", err)
	}
	if _, err := r.GetAll(context.Background(), domain.Filter{From: "yesterday"}, pagination.Params{Page: 1, Limit: 10}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad date err = %v", err)
	}
	if len(q.calls) != 0 {
		t.Fatalf("store touched on invalid input")
	}
}

func TestGetAll_MapsDBErrors(t *testing.T) {
	q := &fakeQ{err: errors.New("conn reset")}
	_, err := NewPG().Bind(q).GetAll(context.Background(), domain.Filter{}, pagination.Params{Page: 1, Limit: 10})
	if !perr.IsCode(err, perr.ErrorCodeDB) {
		t.Fatalf("err = %v", err)
	}
}

func TestGetByUser(t *testing.T) {
	at := time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC)
	uid := "22222222-2222-2222-2222-222222222222"

	q := &fakeQ{total: 1, rows: [][]any{kudosRow("a", at)}}
	res, err := NewPG().Bind(q).GetByUser(context.Background(), uid, domain.Sent, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if len(res.Data) != 1 || res.Pagination.TotalPages != 1 {
		t.Fatalf("result = %+v", res)
	}
	if !strings.Contains(q.calls[0].sql, "k.created_by = $1") {
		t.Fatalf("sent should match author: %s", q.calls[0].sql)
	}

	q = &fakeQ{}
	if _, err := NewPG().Bind(q).GetByUser(context.Background(), uid, domain.Received, pagination.Params{Page: 1, Limit: 10}); err != nil {
		t.Fatalf("GetByUser received: %v", err)
	}
	if !strings.Contains(q.calls[0].sql, "k.recipient_id = $1") {
		t.Fatalf("received should match recipient: %s", q.calls[0].sql)
	}

	if _, err := NewPG().Bind(q).GetByUser(context.Background(), "nope", domain.Sent, pagination.Params{Page: 1, Limit: 1}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad id err = %v", err)
	}
	if _, err := NewPG().Bind(q).GetByUser(context.Background(), uid, "both", pagination.Params{Page: 1, Limit: 1}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad type err = %v", err)
	}
}

func TestGet(t *testing.T) {
	id := "33333333-3333-3333-3333-333333333333"
	_, err := NewPG().Bind(&fakeQ{}).Get(context.Background(), id)
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing kudos err = %v", err)
	}

	at := time.Date(2025, 8, 2, 10, 0, 0, 0, time.UTC)
	k, err := NewPG().Bind(&fakeQ{rows: [][]any{kudosRow(id, at)}}).Get(context.Background(), id)
	if err != nil || k.ID != id || !k.CreatedAt.Equal(at) {
		t.Fatalf("Get = %+v, %v", k, err)
	}

	if _, err := NewPG().Bind(&fakeQ{}).Get(context.Background(), "x"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad id err = %v", err)
	}
}
