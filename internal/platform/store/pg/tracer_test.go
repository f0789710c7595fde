package pg

import (
	"bytes"
	"context"
	"errors"
	"testing"

	kit "kudoswall/internal/platform/testkit"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	got := Compact("SELECT id\n\t  FROM kudos\r\n WHERE team = $1 ")
	if got != "SELECT id FROM kudos WHERE team = $1" {
		t.Fatalf("Compact = %q", got)
	}
}

func TestTracer_SlowAndErrorsWarn(t *testing.T) {
	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1", ElapsedUS: 1500})
	kit.MustContain(t, buf.String(), `"level":"debug"`)
	kit.MustContain(t, buf.String(), `"elapsed_ms":1.5`)

	buf.Reset()
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1", Slow: true})
	kit.MustContain(t, buf.String(), `"level":"warn"`)

	buf.Reset()
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1", Err: errors.New("boom")})
	kit.MustContain(t, buf.String(), `"error":"boom"`)
}
