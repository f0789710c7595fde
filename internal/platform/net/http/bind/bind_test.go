package bind

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "kudoswall/internal/platform/errors"
	kit "kudoswall/internal/platform/testkit"
)

type listIn struct {
	Team  string `json:"team" validate:"omitempty,oneof=engineering product"`
	From  string `json:"from" validate:"omitempty,date"`
	Page  int    `json:"page" validate:"omitempty,min=1"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_OK(t *testing.T) {
	in, err := ParseJSON[listIn](post(`{"team":"product","from":"2024-01-31","page":2,"limit":10}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if in.Team != "product" || in.Page != 2 || in.Limit != 10 {
		t.Fatalf("in = %+v", in)
	}
}

func TestParseJSON_Errors(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		code  perr.ErrorCode
		field string
		msg   string
	}{
		{"empty", ``, perr.ErrorCodeJSON, "", "empty body"},
		{"malformed", `{"team":`, perr.ErrorCodeJSON, "", "invalid JSON"},
		{"unknown field", `{"nope":1}`, perr.ErrorCodeJSON, "", "unknown field"},
		{"trailing", `{} {}`, perr.ErrorCodeJSON, "", "trailing"},
		{"enum", `{"team":"legal"}`, perr.ErrorCodeValidation, "team", "team must be one of"},
		{"date", `{"from":"31/01/2024"}`, perr.ErrorCodeValidation, "from", "YYYY-MM-DD"},
		{"max", `{"limit":101}`, perr.ErrorCodeValidation, "limit", "limit must be at most 100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON[listIn](post(tc.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			e, ok := perr.As(err)
			if !ok || e.Code() != tc.code {
				t.Fatalf("code = %v, want %v (%v)", perr.CodeOf(err), tc.code, err)
			}
			if e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
			kit.MustContain(t, err.Error(), tc.msg)
		})
	}
}

func TestParseJSON_EmptyGet(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	in, err := ParseJSON[listIn](r)
	if err != nil || in != (listIn{}) {
		t.Fatalf("GET with empty body: %+v %v", in, err)
	}
}

func TestParseJSON_TrailingSeam(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &jsonMore, func(*json.Decoder) bool { return true })
	if _, err := ParseJSON[listIn](post(`{}`)); !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error from seam, got %v", err)
	}
}
