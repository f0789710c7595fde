package httpkit

import (
	"net/http"

	phttp "kudoswall/internal/platform/net/http"
)

// PostJSON mounts a JSON handler with a typed, validated body under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// Get mounts a body-less JSON handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}
