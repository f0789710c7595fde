package modkit

import (
	"net/http"

	phttp "kudoswall/internal/platform/net/http"
)

// Built is the resolved option set
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	SwaggerOn bool
	Register  func(phttp.Router)
}

// Build applies opts; Register stays nil when no option set it
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	return Built{
		Name:      c.name,
		Prefix:    c.prefix,
		Mw:        append([]func(http.Handler) http.Handler(nil), c.mw...),
		SwaggerOn: c.swaggerOn,
		Register:  c.register,
	}
}
