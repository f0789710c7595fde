package config

import (
	"reflect"
	"testing"
	"time"

	kit "kudoswall/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	c := New().Prefix("KUDOS_").Prefix("API_")
	if got := c.Key("PORT"); got != "KUDOS_API_PORT" {
		t.Fatalf("Key = %q", got)
	}
}

func TestMayAccessors(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_S", "  hello ")
	t.Setenv("CFGT_I", "42")
	t.Setenv("CFGT_IBAD", "x")
	t.Setenv("CFGT_B", "true")
	t.Setenv("CFGT_D", "250ms")
	t.Setenv("CFGT_CSV", "a, ,b,")

	if got := c.MayString("S", "d"); got != "hello" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("NOPE", "d"); got != "d" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("I", 1); got != 42 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("IBAD", 9); got != 9 {
		t.Fatalf("MayInt bad = %d", got)
	}
	if !c.MayBool("B", false) {
		t.Fatalf("MayBool = false")
	}
	if got := c.MayDuration("D", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayCSV("CSV", nil); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("MayCSV = %v", got)
	}
}

func TestMayPairs(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_P", "tok1=u1, broken ,tok2 = u2,=x")

	got := c.MayPairs("P")
	want := map[string]string{"tok1": "u1", "tok2": "u2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("MayPairs = %v, want %v", got, want)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("CFGT_")
	t.Setenv("CFGT_E", "ClickHouse")

	if got := c.MayEnum("E", "pg", "pg", "clickhouse"); got != "clickhouse" {
		t.Fatalf("MayEnum = %q", got)
	}
	if got := c.MayEnum("UNSET", "pg", "pg", "clickhouse"); got != "pg" {
		t.Fatalf("MayEnum default = %q", got)
	}

	t.Setenv("CFGT_E", "mysql")
	kit.MustPanic(t, func() { _ = c.MayEnum("E", "pg", "pg", "clickhouse") })
}

func TestMustAccessorsPanic(t *testing.T) {
	c := New().Prefix("CFGT_MISSING_")
	kit.MustPanic(t, func() { _ = c.MustString("X") })
	kit.MustPanic(t, func() { _ = c.MustInt("X") })

	t.Setenv("CFGT_URL", "not a url")
	kit.MustPanic(t, func() { _ = New().Prefix("CFGT_").MustURL("URL") })

	t.Setenv("CFGT_URL", "http://localhost:4000")
	if u := New().Prefix("CFGT_").MustURL("URL"); u.Host != "localhost:4000" {
		t.Fatalf("MustURL host = %q", u.Host)
	}
}
