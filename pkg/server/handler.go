package server

import (
	"errors"
	"net/http"

	"github.com/zeinix-zz/leptos/pkg/router"
)

// ErrNoRoute is returned by Render when no route matches the path.
var ErrNoRoute = errors.New("server: no route matches path")

// Page renders one level of a matched route. outlet is the rendered
// nested child level, nil at the innermost level.
type Page func(ctx *Ctx, outlet []byte) ([]byte, error)

// Handler serves a nested route tree over HTTP. The request path is
// matched against the tree; on a match the view chain renders from the
// innermost level outward, each parent wrapping its child's output.
type Handler struct {
	routes     router.NestedRoutes
	config     *Config
	middleware []Middleware
	notFound   Page
}

// NewHandler creates an HTTP handler for the given route tree.
func NewHandler(routes router.NestedRoutes, opts ...Option) *Handler {
	return &Handler{
		routes: routes,
		config: newConfig(opts),
	}
}

// Use appends middleware run around every dispatched request, in order.
func (h *Handler) Use(mw ...Middleware) {
	h.middleware = append(h.middleware, mw...)
}

// SetNotFound sets the page rendered when no route matches.
func (h *Handler) SetNotFound(page Page) {
	h.notFound = page
}

// Render resolves the request path and renders the matched view chain,
// without writing a response. Middleware runs around the render. Static
// export builds on this to render routes outside a live request.
func (h *Handler) Render(r *http.Request) ([]byte, error) {
	m, _ := h.routes.MatchNested(r.URL.Path)
	if m == nil {
		return nil, ErrNoRoute
	}

	ctx := NewCtx(r, m, h.config.Logger)
	var body []byte
	err := h.runMiddleware(ctx, func() error {
		var err error
		body, err = h.renderChain(ctx, m)
		return err
	})
	return body, err
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, err := h.Render(r)
	if errors.Is(err, ErrNoRoute) {
		h.serveNotFound(w, r)
		return
	}
	if err != nil {
		h.config.Logger.Error("dispatch failed", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		return
	}
	w.Write(body)
}

// runMiddleware threads the chain in registration order around final.
func (h *Handler) runMiddleware(ctx *Ctx, final func() error) error {
	next := final
	for i := len(h.middleware) - 1; i >= 0; i-- {
		mw := h.middleware[i]
		inner := next
		next = func() error {
			return mw.Handle(ctx, inner)
		}
	}
	return next()
}

// renderChain renders the matched view chain innermost-first, so each
// parent receives its child's output as the outlet.
func (h *Handler) renderChain(ctx *Ctx, m *router.NestedMatch) ([]byte, error) {
	var levels []*router.NestedMatch
	for cur := m; cur != nil; _, cur = cur.ViewAndChild() {
		levels = append(levels, cur)
	}

	var outlet []byte
	for i := len(levels) - 1; i >= 0; i-- {
		view, _ := levels[i].ViewAndChild()
		page, ok := view.(Page)
		if !ok {
			// Opaque selectors this surface cannot render pass the
			// outlet through unchanged.
			if view != nil {
				ctx.logger.Warn("view selector is not a server.Page, skipping",
					"route_id", levels[i].RouteID())
			}
			continue
		}
		rendered, err := page(ctx, outlet)
		if err != nil {
			return nil, err
		}
		outlet = rendered
	}
	return outlet, nil
}

func (h *Handler) serveNotFound(w http.ResponseWriter, r *http.Request) {
	if h.notFound != nil {
		ctx := NewCtx(r, nil, h.config.Logger)
		body, err := h.notFound(ctx, nil)
		if err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			w.Write(body)
			return
		}
		h.config.Logger.Error("not-found page failed", "path", r.URL.Path, "error", err)
	}
	http.NotFound(w, r)
}
