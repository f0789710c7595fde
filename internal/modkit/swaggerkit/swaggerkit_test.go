package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "kudoswall/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestSpec_FromOperations(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Document(
		Operation{Method: "POST", Path: "/kudos/list", Tag: "kudos", Summary: "List kudos", Body: map[string]any{"page": 1}},
		Operation{Method: "GET", Path: "/kudos/{id}", Tag: "kudos", Summary: "Get kudos", Params: []string{"id"}},
	)
	MarkSecured("/kudos/list", "POST")
	Register(func(s map[string]any) { s["x-test"] = true })

	spec := Spec()
	paths := spec["paths"].(map[string]any)

	list := paths["/kudos/list"].(map[string]any)["post"].(map[string]any)
	if _, ok := list["security"]; !ok {
		t.Fatalf("secured op lacks security: %v", list)
	}
	if _, ok := list["requestBody"]; !ok {
		t.Fatalf("body example missing")
	}

	get := paths["/kudos/{id}"].(map[string]any)["get"].(map[string]any)
	if _, ok := get["security"]; ok {
		t.Fatalf("unsecured op has security")
	}
	if params := get["parameters"].([]any); len(params) != 1 {
		t.Fatalf("params = %v", params)
	}
	if spec["x-test"] != true {
		t.Fatalf("mutator not applied")
	}
}

func TestMount(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", rec.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil || doc["openapi"] != "3.0.3" {
		t.Fatalf("doc = %v, %v", doc, err)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}
}
