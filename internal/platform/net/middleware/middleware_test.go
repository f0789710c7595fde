package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "kudoswall/internal/platform/errors"
	pnet "kudoswall/internal/platform/net"
)

func TestRecoverJSON_WritesEnvelope(t *testing.T) {
	h := RequestID()(RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	var body pnet.Wire
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != perr.ErrorCodePanic || body.RequestID == "" {
		t.Fatalf("body = %+v", body)
	}
}

type stubAuth struct {
	uid string
	err error
}

func (s stubAuth) Parse(*http.Request) (string, error) { return s.uid, s.err }

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestAuth(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = pnet.UserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	Auth(stubAuth{uid: "u-1"}, writeJSON)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent || seen != "u-1" {
		t.Fatalf("status=%d user=%q", rec.Code, seen)
	}

	rec = httptest.NewRecorder()
	Auth(stubAuth{err: perr.Unauthorizedf("bad token")}, writeJSON)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	Auth(stubAuth{err: errors.New("x")}, writeJSON)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("foreign error status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	Auth(nil, writeJSON)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("nil port should pass through, got %d", rec.Code)
	}
}

func TestAccessLog_PassesStatus(t *testing.T) {
	h := RequestID()(AccessLogZerolog(AccessLogOptions{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("x"))
	})))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
}
