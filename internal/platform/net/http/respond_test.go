package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "kudoswall/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Name string `json:"name" validate:"required"`
}

func newRouter() Router {
	r := AdaptChi(chi.NewRouter())
	PostJSON(r, "/echo", func(_ *stdhttp.Request, in echoIn) (any, error) {
		return map[string]string{"name": in.Name}, nil
	})
	GetJSON(r, "/items/{id}", func(req *stdhttp.Request) (any, error) {
		if Param(req, "id") == "missing" {
			return nil, perr.NotFoundf("item not found")
		}
		return Param(req, "id"), nil
	})
	r.Get("/empty", Handle(func(*stdhttp.Request) Response { return NoContent() }))
	return r
}

func do(t *testing.T, r Router, method, path, body string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	var env Envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return rec, env
}

func TestPostJSON(t *testing.T) {
	r := newRouter()

	rec, env := do(t, r, stdhttp.MethodPost, "/echo", `{"name":"ada"}`)
	if rec.Code != stdhttp.StatusOK || env.StatusCode != 200 {
		t.Fatalf("status = %d", rec.Code)
	}
	if m, _ := env.Data.(map[string]any); m["name"] != "ada" {
		t.Fatalf("data = %#v", env.Data)
	}

	rec, env = do(t, r, stdhttp.MethodPost, "/echo", `{}`)
	if rec.Code != stdhttp.StatusBadRequest || env.Code != perr.ErrorCodeValidation || env.Field != "name" {
		t.Fatalf("validation: status=%d env=%+v", rec.Code, env)
	}
}

func TestGetJSON_ParamAndError(t *testing.T) {
	r := newRouter()

	_, env := do(t, r, stdhttp.MethodGet, "/items/abc", "")
	if env.Data != "abc" {
		t.Fatalf("data = %#v", env.Data)
	}

	rec, env := do(t, r, stdhttp.MethodGet, "/items/missing", "")
	if rec.Code != stdhttp.StatusNotFound || env.Code != perr.ErrorCodeNotFound || env.Error != "item not found" {
		t.Fatalf("not found: status=%d env=%+v", rec.Code, env)
	}
}

func TestNoContent(t *testing.T) {
	rec, _ := do(t, newRouter(), stdhttp.MethodGet, "/empty", "")
	if rec.Code != stdhttp.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("status=%d body=%q", rec.Code, rec.Body.String())
	}
}
