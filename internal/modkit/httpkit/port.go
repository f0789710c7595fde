package httpkit

import (
	"crypto/subtle"
	"net/http"

	perr "kudoswall/internal/platform/errors"
)

// TokenFunc resolves a bearer token to a user id
type TokenFunc func(token string) (userID string, err error)

// Port implements middleware.AuthPort over a TokenFunc
type Port struct {
	parse TokenFunc
}

// NewPortFunc builds a Port from a parser
func NewPortFunc(fn TokenFunc) *Port { return &Port{parse: fn} }

// Parse reads the bearer token and delegates; every failure is unauthorized
func (p *Port) Parse(r *http.Request) (string, error) {
	raw, err := BearerToken(r)
	if err != nil {
		return "", err
	}
	if p.parse == nil {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	uid, err := p.parse(raw)
	if err != nil || uid == "" {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	return uid, nil
}

// StaticTokens resolves tokens from a fixed token to user id map
// comparison is constant time per entry
func StaticTokens(tokens map[string]string) TokenFunc {
	return func(token string) (string, error) {
		for t, uid := range tokens {
			if subtle.ConstantTimeCompare([]byte(t), []byte(token)) == 1 {
				return uid, nil
			}
		}
		return "", perr.Unauthorizedf("unknown token")
	}
}
