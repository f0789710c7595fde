// Package module holds the module contract and cross module port lookup
package module

import phttp "kudoswall/internal/platform/net/http"

// Module mirrors modkit.Module; kept here so port packages avoid importing modkit
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
