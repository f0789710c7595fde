//go:build integration_pg
// +build integration_pg

package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"kudoswall/internal/core/pagination"
	"kudoswall/internal/platform/store"
	"kudoswall/internal/platform/store/schema"
	"kudoswall/internal/services/api/kudos/domain"

	"github.com/google/uuid"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) (dsn string, stop func()) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "postgres",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(2 * time.Minute),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		cancel()
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := c.Host(ctx)
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		_ = c.Terminate(context.Background())
		cancel()
		t.Fatalf("failed to get mapped port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
	stop = func() {
		_ = c.Terminate(context.Background())
		cancel()
	}
	return dsn, stop
}

// seed writes two users and n engineering kudos from ada to grace, one minute apart,
// plus one sales kudos in the other direction
func seed(t *testing.T, ctx context.Context, db store.TxRunner, n int) (ada, grace string) {
	t.Helper()
	ada, grace = uuid.NewString(), uuid.NewString()
	users := `insert into users (id, name, email, team) values ($1, $2, $3, $4)`
	if _, err := db.Exec(ctx, users, ada, "Ada Lovelace", "ada@example.com", "engineering"); err != nil {
		t.Fatalf("insert ada: %v", err)
	}
	if _, err := db.Exec(ctx, users, grace, "Grace Hopper", "grace@example.com", "sales"); err != nil {
		t.Fatalf("insert grace: %v", err)
	}

	ins := `insert into kudos (id, recipient_id, team_name, category, message, created_by, created_at, search_text)
values ($1, $2, $3, $4, $5, $6, $7, $8)`
	base := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	for i := range n {
		k := domain.Kudos{
			Message: fmt.Sprintf("Thanks for the review #%d", i), RecipientName: "Grace Hopper", CreatedByName: "Ada Lovelace",
		}
		if _, err := db.Exec(ctx, ins, uuid.NewString(), grace, "engineering", "teamwork", k.Message, ada,
			base.Add(time.Duration(i)*time.Minute), domain.SearchText(k)); err != nil {
			t.Fatalf("insert kudos %d: %v", i, err)
		}
	}
	k := domain.Kudos{Message: "Great launch", RecipientName: "Ada Lovelace", CreatedByName: "Grace Hopper"}
	if _, err := db.Exec(ctx, ins, uuid.NewString(), ada, "sales", "leadership", k.Message, grace,
		base.AddDate(0, 0, 10), domain.SearchText(k)); err != nil {
		t.Fatalf("insert sales kudos: %v", err)
	}
	return ada, grace
}

func TestKudosRepo_Integration(t *testing.T) {
	dsn, stop := startPostgres(t)
	defer stop()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	st, err := store.Open(ctx, store.Config{
		AppName: "kudoswall-integration",
		PG:      store.PGConfig{Enabled: true, URL: dsn, MaxConns: 4},
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer func() { _ = st.Close(context.Background()) }()

	if err := schema.Migrate(ctx, st.PG); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	ada, grace := seed(t, ctx, st.PG, 25)
	r := NewPG().Bind(st.PG)

	res, err := r.GetAll(ctx, domain.Filter{Team: domain.TeamEngineering}, pagination.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(res.Data) != 10 || res.Pagination.TotalItems != 25 || res.Pagination.TotalPages != 3 || res.Pagination.CurrentPage != 1 {
		t.Fatalf("page 1 = %d items, meta %+v", len(res.Data), res.Pagination)
	}
	if res.Data[0].Message != "Thanks for the review #24" {
		t.Fatalf("newest first violated: %q", res.Data[0].Message)
	}

	last, err := r.GetAll(ctx, domain.Filter{Team: domain.TeamEngineering}, pagination.Params{Page: 3, Limit: 10})
	if err != nil || len(last.Data) != 5 {
		t.Fatalf("page 3 = %d items, %v", len(last.Data), err)
	}
	past, err := r.GetAll(ctx, domain.Filter{Team: domain.TeamEngineering}, pagination.Params{Page: 9, Limit: 10})
	if err != nil || len(past.Data) != 0 || past.Pagination.CurrentPage != 9 {
		t.Fatalf("page 9 = %+v, %v", past, err)
	}

	search, err := r.GetAll(ctx, domain.Filter{Search: "GREAT LAUNCH"}, pagination.Params{Page: 1, Limit: 10})
	if err != nil || search.Pagination.TotalItems != 1 || search.Data[0].RecipientID != ada {
		t.Fatalf("search = %+v, %v", search, err)
	}
	byAuthor, err := r.GetAll(ctx, domain.Filter{Search: "grace hopper"}, pagination.Params{Page: 1, Limit: 50})
	if err != nil || byAuthor.Pagination.TotalItems != 26 {
		t.Fatalf("author/recipient search total = %d, %v", byAuthor.Pagination.TotalItems, err)
	}

	ranged, err := r.GetAll(ctx, domain.Filter{From: "2025-08-11", To: "2025-08-11"}, pagination.Params{Page: 1, Limit: 10})
	if err != nil || ranged.Pagination.TotalItems != 1 {
		t.Fatalf("date range total = %d, %v", ranged.Pagination.TotalItems, err)
	}

	sent, err := r.GetByUser(ctx, ada, domain.Sent, pagination.Params{Page: 1, Limit: 10})
	if err != nil || sent.Pagination.TotalItems != 25 {
		t.Fatalf("sent total = %d, %v", sent.Pagination.TotalItems, err)
	}
	received, err := r.GetByUser(ctx, grace, domain.Sent, pagination.Params{Page: 1, Limit: 10})
	if err != nil || received.Pagination.TotalItems != 1 {
		t.Fatalf("grace sent total = %d, %v", received.Pagination.TotalItems, err)
	}

	one, err := r.Get(ctx, res.Data[0].ID)
	if err != nil || one.ID != res.Data[0].ID || one.CreatedByName != "Ada Lovelace" {
		t.Fatalf("Get = %+v, %v", one, err)
	}
}
