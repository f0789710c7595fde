// Package seed loads YAML fixtures into postgres and mirrors kudos into clickhouse
package seed

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/logger"
	"kudoswall/internal/platform/store"
	"kudoswall/internal/platform/store/schema"
	kudosdomain "kudoswall/internal/services/api/kudos/domain"
	usersdomain "kudoswall/internal/services/api/users/domain"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// EventsTable is the clickhouse table kudos are mirrored into
const EventsTable = "kudos_events"

// Fixtures is the YAML document: users: and kudos: lists
type Fixtures struct {
	Users []UserFixture  `yaml:"users"`
	Kudos []KudosFixture `yaml:"kudos"`
}

// UserFixture describes one user; id is derived from email when empty
type UserFixture struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Email     string    `yaml:"email"`
	Team      string    `yaml:"team"`
	Roles     []string  `yaml:"roles"`
	CreatedAt time.Time `yaml:"created_at"`
}

// KudosFixture references users by email; team defaults to the recipient's team
type KudosFixture struct {
	ID        string    `yaml:"id"`
	Recipient string    `yaml:"recipient"`
	Author    string    `yaml:"author"`
	Team      string    `yaml:"team"`
	Category  string    `yaml:"category"`
	Message   string    `yaml:"message"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Plan is the resolved set of rows to write
type Plan struct {
	Users []usersdomain.User
	Kudos []kudosdomain.Kudos
}

// Load decodes fixtures, rejecting unknown keys
func Load(r io.Reader) (Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return Fixtures{}, nil
		}
		return Fixtures{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "decode fixtures")
	}
	return f, nil
}

var (
	userNS  = uuid.NewSHA1(uuid.NameSpaceURL, []byte("kudoswall:user"))
	kudosNS = uuid.NewSHA1(uuid.NameSpaceURL, []byte("kudoswall:kudos"))
)

// Resolve validates fixtures and assigns stable ids so reseeding is idempotent
// zero timestamps become now
func Resolve(f Fixtures, now time.Time) (Plan, error) {
	now = now.UTC()
	var p Plan
	byEmail := make(map[string]usersdomain.User, len(f.Users))

	for i, uf := range f.Users {
		email := strings.ToLower(strings.TrimSpace(uf.Email))
		if email == "" || strings.TrimSpace(uf.Name) == "" {
			return Plan{}, perr.InvalidArgf("users[%d]: name and email are required", i)
		}
		if _, dup := byEmail[email]; dup {
			return Plan{}, perr.InvalidArgf("users[%d]: duplicate email %q", i, email)
		}
		team, err := kudosdomain.ParseTeam(uf.Team)
		if err != nil {
			return Plan{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "users[%d]", i)
		}
		id, err := stableID(uf.ID, userNS, email)
		if err != nil {
			return Plan{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "users[%d]: id", i)
		}
		roles := make([]usersdomain.Role, 0, len(uf.Roles))
		for _, name := range uf.Roles {
			r, err := usersdomain.ParseRole(name)
			if err != nil {
				return Plan{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "users[%d]", i)
			}
			roles = append(roles, r)
		}
		if len(roles) == 0 {
			roles = []usersdomain.Role{usersdomain.RoleUser}
		}
		u := usersdomain.User{
			ID:        id,
			Name:      strings.TrimSpace(uf.Name),
			Email:     email,
			Team:      string(team),
			Roles:     roles,
			CreatedAt: orNow(uf.CreatedAt, now),
		}
		byEmail[email] = u
		p.Users = append(p.Users, u)
	}

	for i, kf := range f.Kudos {
		k, err := resolveKudos(kf, byEmail, now)
		if err != nil {
			return Plan{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "kudos[%d]", i)
		}
		p.Kudos = append(p.Kudos, k)
	}
	return p, nil
}

func resolveKudos(kf KudosFixture, byEmail map[string]usersdomain.User, now time.Time) (kudosdomain.Kudos, error) {
	rcpt, ok := byEmail[strings.ToLower(strings.TrimSpace(kf.Recipient))]
	if !ok {
		return kudosdomain.Kudos{}, fmt.Errorf("unknown recipient %q", kf.Recipient)
	}
	author, ok := byEmail[strings.ToLower(strings.TrimSpace(kf.Author))]
	if !ok {
		return kudosdomain.Kudos{}, fmt.Errorf("unknown author %q", kf.Author)
	}
	if strings.TrimSpace(kf.Message) == "" {
		return kudosdomain.Kudos{}, fmt.Errorf("message is required")
	}
	teamName := kf.Team
	if teamName == "" {
		teamName = rcpt.Team
	}
	team, err := kudosdomain.ParseTeam(teamName)
	if err != nil {
		return kudosdomain.Kudos{}, err
	}
	cat, err := kudosdomain.ParseCategory(kf.Category)
	if err != nil {
		return kudosdomain.Kudos{}, err
	}
	at := orNow(kf.CreatedAt, now)
	id, err := stableID(kf.ID, kudosNS, strings.Join([]string{rcpt.ID, author.ID, at.Format(time.RFC3339Nano), kf.Message}, "|"))
	if err != nil {
		return kudosdomain.Kudos{}, err
	}
	return kudosdomain.Kudos{
		ID:            id,
		RecipientID:   rcpt.ID,
		RecipientName: rcpt.Name,
		TeamName:      team,
		Category:      cat,
		Message:       strings.TrimSpace(kf.Message),
		CreatedBy:     author.ID,
		CreatedByName: author.Name,
		CreatedAt:     at,
	}, nil
}

func stableID(explicit string, ns uuid.UUID, name string) (string, error) {
	if explicit != "" {
		u, err := uuid.Parse(explicit)
		if err != nil {
			return "", err
		}
		return u.String(), nil
	}
	return uuid.NewSHA1(ns, []byte(name)).String(), nil
}

func orNow(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t.UTC()
}

var syntheticMessages = []string{
	"Thanks for jumping on the incident at 2am",
	"Great demo today, the customer loved it",
	"Your review caught a nasty bug before release",
	"Huge help onboarding the new hires",
	"Shipped the migration without a single page",
	"Went above and beyond on the quarterly report",
	"Clear writeup that unblocked three teams",
}

// Synthetic appends n generated kudos between random pairs of users
// the same seed yields the same kudos
func Synthetic(p Plan, n int, seed uint64, now time.Time) Plan {
	if n <= 0 || len(p.Users) < 2 {
		return p
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	cats := kudosdomain.Categories()
	now = now.UTC().Truncate(time.Second)
	for i := range n {
		ri := rng.IntN(len(p.Users))
		ai := rng.IntN(len(p.Users) - 1)
		if ai >= ri {
			ai++
		}
		rcpt, author := p.Users[ri], p.Users[ai]
		at := now.Add(-time.Duration(rng.IntN(90*24*60)) * time.Minute)
		msg := syntheticMessages[rng.IntN(len(syntheticMessages))]
		name := fmt.Sprintf("synthetic|%d|%d", seed, i)
		p.Kudos = append(p.Kudos, kudosdomain.Kudos{
			ID:            uuid.NewSHA1(kudosNS, []byte(name)).String(),
			RecipientID:   rcpt.ID,
			RecipientName: rcpt.Name,
			TeamName:      kudosdomain.Team(rcpt.Team),
			Category:      cats[rng.IntN(len(cats))],
			Message:       msg,
			CreatedBy:     author.ID,
			CreatedByName: author.Name,
			CreatedAt:     at,
		})
	}
	return p
}

// Result counts the rows a Write actually inserted
type Result struct {
	Users int64
	Kudos int64
}

const (
	insertUser = `insert into users (id, name, email, team, roles, created_at)
values ($1::uuid, $2, $3, $4, $5::text[], $6)
on conflict do nothing`

	insertKudos = `insert into kudos (id, recipient_id, team_name, category, message, created_by, created_at, search_text)
values ($1::uuid, $2::uuid, $3, $4, $5, $6::uuid, $7, $8)
on conflict (id) do nothing`
)

// Write inserts the plan in one transaction; existing rows are left untouched
func Write(ctx context.Context, db store.TxRunner, p Plan) (Result, error) {
	var res Result
	err := db.Tx(ctx, func(q store.RowQuerier) error {
		for _, u := range p.Users {
			roles := make([]string, len(u.Roles))
			for i, r := range u.Roles {
				roles[i] = string(r)
			}
			tag, err := q.Exec(ctx, insertUser, u.ID, u.Name, u.Email, u.Team, roles, u.CreatedAt)
			if err != nil {
				return perr.FromPostgresf(err, "insert user %s", u.Email)
			}
			res.Users += rowsAffected(tag)
		}
		for _, k := range p.Kudos {
			tag, err := q.Exec(ctx, insertKudos,
				k.ID, k.RecipientID, string(k.TeamName), string(k.Category), k.Message,
				k.CreatedBy, k.CreatedAt, kudosdomain.SearchText(k))
			if err != nil {
				return perr.FromPostgresf(err, "insert kudos %s", k.ID)
			}
			res.Kudos += rowsAffected(tag)
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	logger.Named("seed").Info().Int64("users", res.Users).Int64("kudos", res.Kudos).Msg("seed written")
	return res, nil
}

func rowsAffected(t store.CommandTag) int64 {
	if t == nil {
		return 0
	}
	return t.RowsAffected()
}

// Mirror ensures the events table and appends every kudos of the plan
// the table is a ReplacingMergeTree so repeated mirrors collapse on merge
func Mirror(ctx context.Context, ch store.Clickhouse, p Plan) error {
	if ch == nil {
		return nil
	}
	if err := schema.EnsureClickhouse(ctx, ch); err != nil {
		return err
	}
	rows := make([][]any, 0, len(p.Kudos))
	for _, k := range p.Kudos {
		id, err := uuid.Parse(k.ID)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "kudos id %q", k.ID)
		}
		rcpt, err := uuid.Parse(k.RecipientID)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "recipient id %q", k.RecipientID)
		}
		author, err := uuid.Parse(k.CreatedBy)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "author id %q", k.CreatedBy)
		}
		rows = append(rows, []any{id, rcpt, k.RecipientName, string(k.TeamName), string(k.Category), author, k.CreatedAt})
	}
	if err := ch.InsertRows(ctx, EventsTable, rows); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "mirror kudos to clickhouse")
	}
	logger.Named("seed").Info().Int("kudos", len(rows)).Msg("clickhouse mirror written")
	return nil
}
