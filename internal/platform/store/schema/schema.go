// Package schema applies the embedded, versioned SQL migrations
package schema

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	perr "kudoswall/internal/platform/errors"
	"kudoswall/internal/platform/logger"
	"kudoswall/internal/platform/store"
)

//go:embed sql/*.sql
var files embed.FS

// advisory lock key shared by every process running migrations
const lockKey = 0x6b75646f73

// Migration is one numbered SQL file
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrations returns the postgres migrations ordered by version
// files are named NNNN_name.sql; anything without a numeric prefix is skipped
func Migrations() ([]Migration, error) {
	entries, err := fs.ReadDir(files, "sql")
	if err != nil {
		return nil, err
	}
	var out []Migration
	for _, e := range entries {
		num, name, ok := strings.Cut(strings.TrimSuffix(e.Name(), ".sql"), "_")
		if !ok {
			continue
		}
		v, err := strconv.Atoi(num)
		if err != nil {
			continue
		}
		body, err := files.ReadFile(path.Join("sql", e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Version: v, Name: name, SQL: string(body)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	for i := 1; i < len(out); i++ {
		if out[i].Version == out[i-1].Version {
			return nil, fmt.Errorf("schema: duplicate migration version %d", out[i].Version)
		}
	}
	return out, nil
}

// Migrate applies every pending migration, each in its own transaction
// concurrent callers serialise on a transaction scoped advisory lock
func Migrate(ctx context.Context, db store.TxRunner) error {
	log := logger.Named("schema")
	migs, err := Migrations()
	if err != nil {
		return err
	}

	if _, err := db.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version    INTEGER PRIMARY KEY,
		name       TEXT NOT NULL,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return perr.FromPostgres(err, "create schema_migrations")
	}

	for _, m := range migs {
		err := db.Tx(ctx, func(q store.RowQuerier) error {
			if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(lockKey)); err != nil {
				return err
			}
			done, err := store.Scalar[bool](ctx, q, `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, m.Version)
			if err != nil || done {
				return err
			}
			log.Info().Int("version", m.Version).Str("name", m.Name).Msg("applying migration")
			if _, err := q.Exec(ctx, m.SQL); err != nil {
				return err
			}
			_, err = q.Exec(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, m.Version, m.Name)
			return err
		})
		if err != nil {
			return perr.FromPostgresf(err, "migration %04d_%s", m.Version, m.Name)
		}
	}
	return nil
}

// EnsureClickhouse creates the analytics tables when missing
func EnsureClickhouse(ctx context.Context, ch store.Clickhouse) error {
	body, err := files.ReadFile("sql/clickhouse_events.sql")
	if err != nil {
		return err
	}
	if err := ch.Exec(ctx, string(body)); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "create kudos_events")
	}
	return nil
}
