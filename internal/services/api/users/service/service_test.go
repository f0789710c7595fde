package service

import (
	"context"
	"testing"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/modkit/repokit"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/store"
	"kudoswall/internal/services/api/users/domain"
	"kudoswall/internal/services/api/users/repo"
)

type fakeRepo struct {
	q domain.Query
	p pagination.Params
}

func (f *fakeRepo) Get(_ context.Context, id string) (domain.User, error) {
	if id == "missing" {
		return domain.User{}, perr.NotFoundf("user %s not found", id)
	}
	return domain.User{ID: id, Roles: []domain.Role{domain.RoleSuperAdmin}}, nil
}

func (f *fakeRepo) List(_ context.Context, q domain.Query, p pagination.Params) (pagination.Result[domain.User], error) {
	f.q, f.p = q, p
	return pagination.NewResult([]domain.User{{ID: "u1", Roles: []domain.Role{domain.RoleAdmin}}}, p, 1), nil
}

func (f *fakeRepo) Exists(_ context.Context, id string) (bool, error) { return id == "u1", nil }

type nopDB struct{}

func (nopDB) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (nopDB) Query(context.Context, string, ...any) (store.Rows, error)     { return nil, nil }
func (nopDB) QueryRow(context.Context, string, ...any) store.Row            { return nil }
func (nopDB) Tx(context.Context, func(store.RowQuerier) error) error        { return nil }

func newSvc(r *fakeRepo) *Svc {
	return New(nopDB{}, repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return r }))
}

func TestGet(t *testing.T) {
	p, err := newSvc(&fakeRepo{}).Get(context.Background(), "u1")
	if err != nil || !p.Capabilities.CanManageUsers {
		t.Fatalf("Get = %+v, %v", p, err)
	}
	if _, err := newSvc(&fakeRepo{}).Get(context.Background(), "missing"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestList(t *testing.T) {
	r := &fakeRepo{}
	res, err := newSvc(r).List(context.Background(), domain.ListInput{Role: "admin", Team: "sales"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if r.p != (pagination.Params{Page: 1, Limit: 20}) || r.q.Role != domain.RoleAdmin || r.q.Team != "sales" {
		t.Fatalf("forwarded %+v %+v", r.q, r.p)
	}
	if len(res.Data) != 1 || !res.Data[0].Capabilities.CanViewAnalytics {
		t.Fatalf("profiles = %+v", res.Data)
	}
	if _, err := newSvc(r).List(context.Background(), domain.ListInput{Role: "ROOT"}); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad role err = %v", err)
	}
}

func TestExists(t *testing.T) {
	if ok, _ := newSvc(&fakeRepo{}).Exists(context.Background(), "u1"); !ok {
		t.Fatalf("u1 should exist")
	}
}
