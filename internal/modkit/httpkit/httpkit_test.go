package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kudoswall/internal/modkit/swaggerkit"
	perr "kudoswall/internal/platform/errors"
	phttp "kudoswall/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":    "abc",
		"bearer   abc ": "abc",
		"BEARER x.y.z":  "x.y.z",
	}
	for h, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", h)
		got, err := BearerToken(r)
		if err != nil || got != want {
			t.Fatalf("BearerToken(%q) = %q, %v", h, got, err)
		}
	}
	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer   "} {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", h)
		if _, err := BearerToken(r); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
			t.Fatalf("BearerToken(%q) should be unauthorized, got %v", h, err)
		}
	}
}

func TestPort_StaticTokens(t *testing.T) {
	p := NewPortFunc(StaticTokens(map[string]string{"tok": "user-1"}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer tok")
	if uid, err := p.Parse(r); err != nil || uid != "user-1" {
		t.Fatalf("Parse = %q, %v", uid, err)
	}

	r.Header.Set("Authorization", "Bearer nope")
	if _, err := p.Parse(r); !perr.IsCode(err, perr.ErrorCodeUnauthorized) {
		t.Fatalf("unknown token should be unauthorized, got %v", err)
	}
}

func TestProtected(t *testing.T) {
	mux := chi.NewRouter()
	r := phttp.AdaptChi(mux)
	port := NewPortFunc(StaticTokens(map[string]string{"tok": "u1"}))

	MountAPIV1(r, nil, func(api Router) {
		Protected(api, "", port, func(pr Router) {
			Get(pr, "/secure/me", func(req *http.Request) (any, error) { return User(req) })
		})
		Protected(api, "", nil, func(pr Router) {
			Get(pr, "/open/ping", func(*http.Request) (any, error) { return "pong", nil })
		})
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/secure/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/secure/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("token status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/open/ping", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("open status = %d", rec.Code)
	}
}

func TestProtected_MarksNestedRoutesSecured(t *testing.T) {
	swaggerkit.Reset()
	t.Cleanup(swaggerkit.Reset)
	swaggerkit.Document(swaggerkit.Operation{Method: "POST", Path: "/kudos/list", Tag: "Kudos"})

	mux := chi.NewRouter()
	port := NewPortFunc(StaticTokens(map[string]string{"tok": "u1"}))
	Protected(phttp.AdaptChi(mux), "", port, func(pr Router) {
		pr.Route("/kudos", func(kr Router) {
			PostJSON(kr, "/list", func(*http.Request, struct{}) (any, error) { return nil, nil })
		})
	})

	paths := swaggerkit.Spec()["paths"].(map[string]any)
	op := paths["/kudos/list"].(map[string]any)["post"].(map[string]any)
	if _, ok := op["security"]; !ok {
		t.Fatalf("nested route not marked secured: %v", op)
	}
}
