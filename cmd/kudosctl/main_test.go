package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"kudoswall/internal/core/pagination"
	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/services/api/kudos/domain"
)

type fakeBackend struct {
	items   []domain.Kudos
	filters []domain.Filter
	byUser  []string
}

func newFakeBackend(n int) *fakeBackend {
	b := &fakeBackend{}
	base := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)
	for i := range n {
		team := domain.TeamEngineering
		if i%5 == 0 {
			team = domain.TeamDesign
		}
		b.items = append(b.items, domain.Kudos{
			ID:            fmt.Sprintf("k%02d", i),
			RecipientName: fmt.Sprintf("Person %02d", i),
			CreatedByName: "Ada",
			TeamName:      team,
			Category:      domain.CategoryTeamwork,
			Message:       fmt.Sprintf("message %02d", i),
			CreatedAt:     base.Add(-time.Duration(i) * time.Hour),
		})
	}
	return b
}

func (b *fakeBackend) GetAll(_ context.Context, f domain.Filter, p pagination.Params) (pagination.Result[domain.Kudos], error) {
	b.filters = append(b.filters, f)
	var match []domain.Kudos
	for _, k := range b.items {
		if f.Team == "" || k.TeamName == f.Team {
			match = append(match, k)
		}
	}
	lo := min(p.Offset(), len(match))
	hi := min(lo+p.Limit, len(match))
	return pagination.NewResult(match[lo:hi], p, len(match)), nil
}

func (b *fakeBackend) GetByUser(_ context.Context, id string, t domain.UserKudosType, p pagination.Params) (pagination.Result[domain.Kudos], error) {
	b.byUser = append(b.byUser, id+":"+string(t))
	return pagination.NewResult(b.items[:1], p, 1), nil
}

func (b *fakeBackend) Get(_ context.Context, id string) (domain.Kudos, error) {
	for _, k := range b.items {
		if k.ID == id {
			return k, nil
		}
	}
	return domain.Kudos{}, perr.NotFoundf("kudos %s not found", id)
}

func run(t *testing.T, b backend, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(b)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestList_Table(t *testing.T) {
	b := newFakeBackend(25)
	out, err := run(t, b, "", "list", "--limit", "10", "--page", "3")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "message 20") || strings.Contains(out, "message 19") {
		t.Fatalf("unexpected rows:\n%s", out)
	}
	if !strings.Contains(out, "page 3 of 3, 25 kudos") {
		t.Fatalf("missing footer:\n%s", out)
	}
}

func TestList_FlagsBecomeFilter(t *testing.T) {
	b := newFakeBackend(3)
	_, err := run(t, b, "", "list", "--team", "Design", "--category", "helping-hand", "--search", "launch", "--from", "2025-08-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	got := b.filters[0]
	if got.Team != domain.TeamDesign || got.Category != domain.CategoryHelpingHand || got.Search != "launch" || got.From != "2025-08-01" {
		t.Fatalf("filter = %+v", got)
	}
}

func TestList_RejectsBadInput(t *testing.T) {
	b := newFakeBackend(3)
	if _, err := run(t, b, "", "list", "--team", "legal"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad team err = %v", err)
	}
	if _, err := run(t, b, "", "list", "--limit", "0"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("limit 0 err = %v", err)
	}
	if len(b.filters) != 0 {
		t.Fatalf("repository should not be called")
	}
}

func TestList_JSON(t *testing.T) {
	out, err := run(t, newFakeBackend(12), "", "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var res pagination.Result[domain.Kudos]
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(res.Data) != 10 || res.Pagination.TotalPages != 2 {
		t.Fatalf("res = %+v", res.Pagination)
	}
}

func TestUser(t *testing.T) {
	b := newFakeBackend(3)
	if _, err := run(t, b, "", "user", "u-1", "--type", "sent"); err != nil {
		t.Fatalf("user: %v", err)
	}
	if len(b.byUser) != 1 || b.byUser[0] != "u-1:sent" {
		t.Fatalf("calls = %v", b.byUser)
	}
	if _, err := run(t, b, "", "user", "u-1", "--type", "liked"); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("bad type err = %v", err)
	}
}

func TestGet(t *testing.T) {
	b := newFakeBackend(3)
	out, err := run(t, b, "", "get", "k01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !strings.Contains(out, `"recipientName": "Person 01"`) {
		t.Fatalf("out = %s", out)
	}
	if _, err := run(t, b, "", "get", "nope"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestBrowse(t *testing.T) {
	b := newFakeBackend(25)
	script := "n\nteam design\nbogus\nclear\nq\n"
	out, err := run(t, b, script, "browse")
	if err != nil {
		t.Fatalf("browse: %v", err)
	}
	// start, next, team, clear
	if len(b.filters) != 4 {
		t.Fatalf("fetches = %d", len(b.filters))
	}
	if b.filters[2].Team != domain.TeamDesign || b.filters[3].Team != "" {
		t.Fatalf("filters = %+v", b.filters)
	}
	for _, want := range []string{"page 1 of 3", "page 2 of 3", "page 1 of 1, 5 kudos", "unknown command"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBrowse_UserMode(t *testing.T) {
	b := newFakeBackend(3)
	if _, err := run(t, b, "q\n", "browse", "--user", "u-9"); err != nil {
		t.Fatalf("browse: %v", err)
	}
	if len(b.byUser) != 1 || b.byUser[0] != "u-9:received" {
		t.Fatalf("calls = %v", b.byUser)
	}
}
