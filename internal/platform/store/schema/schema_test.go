package schema

import (
	"strings"
	"testing"
)

func TestMigrations_OrderedAndNamed(t *testing.T) {
	migs, err := Migrations()
	if err != nil {
		t.Fatalf("Migrations: %v", err)
	}
	if len(migs) < 2 {
		t.Fatalf("expected at least 2 migrations, got %d", len(migs))
	}
	for i, m := range migs {
		if m.Version != i+1 {
			t.Fatalf("migration %d has version %d", i, m.Version)
		}
		if m.Name == "" || strings.TrimSpace(m.SQL) == "" {
			t.Fatalf("migration %d is empty", m.Version)
		}
	}
	if migs[0].Name != "init" || !strings.Contains(migs[0].SQL, "CREATE TABLE IF NOT EXISTS kudos") {
		t.Fatalf("first migration should create kudos: %+v", migs[0].Name)
	}
}

func TestClickhouseDDL_NotAMigration(t *testing.T) {
	migs, _ := Migrations()
	for _, m := range migs {
		if strings.Contains(m.SQL, "MergeTree") {
			t.Fatalf("clickhouse DDL leaked into postgres migrations: %s", m.Name)
		}
	}
}
