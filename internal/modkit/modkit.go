package modkit

import phttp "kudoswall/internal/platform/net/http"

// Module is the surface every API module exposes
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
