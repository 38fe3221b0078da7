package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/zeinix-zz/leptos/pkg/router"
)

// Ctx carries per-request state through middleware and page rendering.
type Ctx struct {
	request *http.Request
	match   *router.NestedMatch
	params  map[string]string
	logger  *slog.Logger
	values  map[any]any
}

// NewCtx builds a dispatch context. Handler calls this per request; it
// is exported so middleware can be exercised directly in tests.
func NewCtx(r *http.Request, m *router.NestedMatch, logger *slog.Logger) *Ctx {
	if logger == nil {
		logger = slog.Default()
	}
	params := make(map[string]string)
	if m != nil {
		for _, p := range m.Params() {
			params[p.Name] = p.Value
		}
	}
	return &Ctx{
		request: r,
		match:   m,
		params:  params,
		logger:  logger,
	}
}

// Request returns the underlying HTTP request.
func (c *Ctx) Request() *http.Request {
	return c.request
}

// Path returns the request path being dispatched.
func (c *Ctx) Path() string {
	return c.request.URL.Path
}

// Match returns the resolved route match.
func (c *Ctx) Match() *router.NestedMatch {
	return c.match
}

// Param returns the value of a route parameter, or "" if absent.
func (c *Ctx) Param(name string) string {
	return c.params[name]
}

// Params returns the route parameters as a map.
func (c *Ctx) Params() map[string]string {
	return c.params
}

// Logger returns the request logger.
func (c *Ctx) Logger() *slog.Logger {
	return c.logger
}

// StdContext returns the request's context.Context.
func (c *Ctx) StdContext() context.Context {
	return c.request.Context()
}

// SetValue stores a value on the context for later middleware or pages.
func (c *Ctx) SetValue(key, value any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = value
}

// Value retrieves a value stored with SetValue, or nil.
func (c *Ctx) Value(key any) any {
	return c.values[key]
}

// Middleware processes a dispatch before the page chain renders.
// Return an error to stop the chain and report a server error; return
// nil without calling next to stop the chain silently.
type Middleware interface {
	Handle(ctx *Ctx, next func() error) error
}

// MiddlewareFunc is a function adapter for Middleware.
type MiddlewareFunc func(ctx *Ctx, next func() error) error

// Handle implements Middleware.
func (f MiddlewareFunc) Handle(ctx *Ctx, next func() error) error {
	return f(ctx, next)
}
