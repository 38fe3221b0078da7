// Package server dispatches matched routes over HTTP and WebSocket.
//
// The package is a thin serving surface over the matching engine in
// pkg/router: Handler resolves a request path against a route tree and
// renders the matched view chain outlet-style; NavigationSocket answers
// client-side navigation requests over a WebSocket with the match
// outcome, so a thin client can swap views without a full page load.
//
// Views are opaque to the router. This package asserts them to its Page
// type:
//
//	func userPage(ctx *server.Ctx, outlet []byte) ([]byte, error) {
//	    return []byte("<h1>user " + ctx.Param("id") + "</h1>"), nil
//	}
//
//	h := server.NewHandler(routes, server.WithLogger(logger))
//	http.ListenAndServe(":8080", h)
package server
