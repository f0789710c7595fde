// Package httpkit re-exports the platform http surface for modules
// modules import this instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "kudoswall/internal/platform/net/http"
)

type (
	// Envelope is the response envelope
	Envelope = phttp.Envelope

	// Response is the return style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// Param returns a path parameter such as {id}
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }
