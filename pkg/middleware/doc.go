// Package middleware provides observability middleware for route
// dispatch: Prometheus metrics and OpenTelemetry tracing.
//
// Both constructors return a server.Middleware and are configured with
// functional options:
//
//	h := server.NewHandler(routes)
//	h.Use(
//	    middleware.Prometheus(middleware.WithNamespace("myapp")),
//	    middleware.OpenTelemetry(middleware.WithTracerName("myapp")),
//	)
package middleware
