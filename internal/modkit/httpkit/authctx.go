package httpkit

import (
	"net/http"
	"strings"

	perr "kudoswall/internal/platform/errors"
	pnet "kudoswall/internal/platform/net"
)

// User returns the authenticated user id, unauthorized when absent
func User(r *http.Request) (string, error) {
	uid := pnet.UserID(r.Context())
	if uid == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return uid, nil
}

// BearerToken returns the raw token from "Authorization: Bearer <token>" (scheme is case insensitive)
func BearerToken(r *http.Request) (string, error) {
	scheme, raw, ok := strings.Cut(strings.TrimSpace(r.Header.Get("Authorization")), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", perr.Unauthorizedf("missing bearer token")
	}
	return raw, nil
}
