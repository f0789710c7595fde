package net

import (
	"context"
	"net/http"
	"testing"

	perr "kudoswall/internal/platform/errors"
)

func TestError_MapsCodeAndField(t *testing.T) {
	err := perr.WithField(perr.InvalidArgf("limit must be >= 1"), "limit")
	status, w := Error(err, "req-1")

	if status != http.StatusUnprocessableEntity || w.StatusCode != status {
		t.Fatalf("status = %d / %d", status, w.StatusCode)
	}
	if w.Code != perr.ErrorCodeInvalidArgument || w.Field != "limit" || w.RequestID != "req-1" {
		t.Fatalf("wire = %+v", w)
	}
	if w.Data != nil {
		t.Fatalf("error envelope must not carry data")
	}
}

func TestOK(t *testing.T) {
	status, w := OK([]int{1}, "")
	if status != http.StatusOK || w.Status != "OK" || w.Code != 0 {
		t.Fatalf("wire = %+v", w)
	}
}

func TestContextIDs(t *testing.T) {
	ctx := WithUser(WithRequestID(context.Background(), "r1"), "u1")
	if RequestID(ctx) != "r1" || UserID(ctx) != "u1" {
		t.Fatalf("ids = %q %q", RequestID(ctx), UserID(ctx))
	}
	if UserID(context.Background()) != "" {
		t.Fatalf("expected empty user id")
	}
}
