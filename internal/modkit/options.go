package modkit

import (
	"net/http"

	phttp "kudoswall/internal/platform/net/http"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

type buildCfg struct {
	name      string
	prefix    string
	mw        []func(http.Handler) http.Handler
	swaggerOn bool
	register  func(phttp.Router)
}

// WithName sets the module name returned by Module.Name
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix mounts the module under a path prefix
func WithPrefix(prefix string) Option { return func(c *buildCfg) { c.prefix = prefix } }

// WithMiddlewares attaches per module middleware in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithSwagger toggles API doc registration for the module
func WithSwagger(enabled bool) Option { return func(c *buildCfg) { c.swaggerOn = enabled } }

// WithRegister replaces the function that attaches endpoints, mainly for tests
func WithRegister(fn func(phttp.Router)) Option { return func(c *buildCfg) { c.register = fn } }
