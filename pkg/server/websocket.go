package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/zeinix-zz/leptos/pkg/router"
)

// NavRequest is a client navigation request: resolve a path against the
// route tree without a full page load.
type NavRequest struct {
	Path string `json:"path"`
}

// NavResponse reports the outcome of a navigation request. Params are
// flattened to a map; RouteID identifies the shallowest matching node.
type NavResponse struct {
	Path    string            `json:"path"`
	Matched bool              `json:"matched"`
	RouteID uint16            `json:"routeId,omitempty"`
	Span    string            `json:"span,omitempty"`
	Params  map[string]string `json:"params,omitempty"`
}

// NavigationSocket answers navigation requests over a WebSocket. Each
// incoming message is a NavRequest; each reply a NavResponse. The socket
// only resolves routes; rendering stays with the HTTP surface.
type NavigationSocket struct {
	routes   router.NestedRoutes
	config   *Config
	upgrader websocket.Upgrader

	// OnResult, when set, observes every resolution outcome. Used to
	// hook in metrics without this package depending on them.
	OnResult func(matched bool)

	// OnError, when set, observes socket failures by kind ("read",
	// "decode", "write").
	OnError func(kind string)
}

func (s *NavigationSocket) reportError(kind string) {
	if s.OnError != nil {
		s.OnError(kind)
	}
}

// NewNavigationSocket creates a navigation endpoint for the given tree.
func NewNavigationSocket(routes router.NestedRoutes, opts ...Option) *NavigationSocket {
	config := newConfig(opts)
	return &NavigationSocket{
		routes: routes,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// ServeHTTP implements http.Handler by upgrading the connection and
// serving navigation requests until the client disconnects.
func (s *NavigationSocket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := s.config.Logger

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(s.config.MaxMessageSize)

	for {
		conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				logger.Error("navigation read error", "error", err)
				s.reportError("read")
			}
			return
		}

		var req NavRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			logger.Error("navigation decode error", "error", err)
			s.reportError("decode")
			continue
		}

		resp := s.resolve(req.Path)
		if s.OnResult != nil {
			s.OnResult(resp.Matched)
		}

		conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			logger.Error("navigation write error", "error", err)
			s.reportError("write")
			return
		}
	}
}

// resolve matches one path and flattens the result for the wire.
func (s *NavigationSocket) resolve(path string) NavResponse {
	resp := NavResponse{Path: path}

	m, _ := s.routes.MatchNested(path)
	if m == nil {
		return resp
	}

	resp.Matched = true
	resp.RouteID = uint16(m.RouteID())
	resp.Params = make(map[string]string)
	for cur := m; cur != nil; _, cur = cur.ViewAndChild() {
		resp.Span += cur.Matched()
	}
	for _, p := range m.Params() {
		resp.Params[p.Name] = p.Value
	}
	return resp
}
