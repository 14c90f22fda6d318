package modkit

import (
	"net/http"

	phttp "interviewcoach/internal/platform/net/http"
)

// Option configures a module at construction; see Build
type Option func(*buildCfg)

type buildCfg struct {
	name, prefix string
	mw           []func(http.Handler) http.Handler
	ports        any
	subrouter    func(phttp.Router) phttp.Router
	register     func(phttp.Router)
}

// WithName names the module for logs and the port registry
func WithName(name string) Option { return func(c *buildCfg) { c.name = name } }

// WithPrefix is the path the module's routes hang under, e.g. "/sessions"
func WithPrefix(prefix string) Option { return func(c *buildCfg) { c.prefix = prefix } }

// WithMiddlewares appends middleware that wraps only this module's routes
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(c *buildCfg) { c.mw = append(c.mw, mw...) }
}

// WithPorts hands a module the ports it consumes from siblings.
// The module reads them back with a type assertion on Built.Ports.
func WithPorts[T any](p T) Option { return func(c *buildCfg) { c.ports = p } }

// WithSubrouter lets callers wrap the module router, e.g. to add a group
func WithSubrouter(fn func(phttp.Router) phttp.Router) Option {
	return func(c *buildCfg) { c.subrouter = fn }
}

// WithRegister adds routes after the module's own
func WithRegister(fn func(phttp.Router)) Option { return func(c *buildCfg) { c.register = fn } }
