package middleware

import (
	"net/http"

	"kudoswall/internal/platform/logger"
	pnet "kudoswall/internal/platform/net"
)

// AuthPort resolves the caller of a request
// token issuance lives elsewhere; implementations only verify
type AuthPort interface {
	Parse(r *http.Request) (userID string, err error)
}

// Auth rejects requests the port cannot resolve and stores the user id on context
// a nil port lets everything through
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
