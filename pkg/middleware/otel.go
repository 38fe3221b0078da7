package middleware

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zeinix-zz/leptos/pkg/server"
)

// Default tracer name for route dispatch.
const defaultTracerName = "leptos"

// OTelConfig configures the OpenTelemetry middleware.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "leptos").
	TracerName string

	// IncludeParams includes extracted route parameters as span
	// attributes. Parameter values may be sensitive - disabled by
	// default.
	IncludeParams bool

	// Filter determines which dispatches to trace.
	// If nil, all dispatches are traced.
	Filter func(ctx *server.Ctx) bool

	// AttributeExtractor extracts custom attributes from the context.
	AttributeExtractor func(ctx *server.Ctx) []attribute.KeyValue

	tracer trace.Tracer
}

// OTelOption configures the OpenTelemetry middleware.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithIncludeParams enables route parameters as span attributes.
func WithIncludeParams(include bool) OTelOption {
	return func(c *OTelConfig) {
		c.IncludeParams = include
	}
}

// WithFilter sets a filter function for dispatches.
func WithFilter(filter func(ctx *server.Ctx) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(ctx *server.Ctx) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
	}
}

// OpenTelemetry creates middleware that traces every route dispatch.
//
// Each dispatch gets a span named "leptos <path>" carrying the request
// path, the shallowest matched route ID, and the dispatch outcome. The
// span's context is stored on the Ctx for downstream propagation via
// TraceContext.
//
// The tracer comes from the global tracer provider; configure it with
// otel.SetTracerProvider before serving.
func OpenTelemetry(opts ...OTelOption) server.Middleware {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}
	config.tracer = otel.Tracer(config.TracerName)

	return server.MiddlewareFunc(func(ctx *server.Ctx, next func() error) error {
		if config.Filter != nil && !config.Filter(ctx) {
			return next()
		}

		attrs := []attribute.KeyValue{
			attribute.String("leptos.path", ctx.Path()),
		}
		if m := ctx.Match(); m != nil {
			attrs = append(attrs, attribute.Int("leptos.route_id", int(m.RouteID())))
			if config.IncludeParams {
				for name, value := range ctx.Params() {
					attrs = append(attrs, attribute.String("leptos.param."+name, value))
				}
			}
		}
		if config.AttributeExtractor != nil {
			attrs = append(attrs, config.AttributeExtractor(ctx)...)
		}

		spanCtx, span := config.tracer.Start(
			ctx.StdContext(),
			fmt.Sprintf("leptos %s", ctx.Path()),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		ctx.SetValue(spanContextKey{}, spanCtx)

		err := next()

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		return err
	})
}

// spanContextKey keys the span context in Ctx values.
type spanContextKey struct{}

// SpanFromContext retrieves the dispatch's trace span, or nil when the
// dispatch is not traced.
func SpanFromContext(ctx *server.Ctx) trace.Span {
	if spanCtx, ok := ctx.Value(spanContextKey{}).(context.Context); ok {
		return trace.SpanFromContext(spanCtx)
	}
	return nil
}

// TraceContext returns the context carrying the dispatch's span, for
// propagation to downstream calls. Falls back to the request context.
func TraceContext(ctx *server.Ctx) context.Context {
	if spanCtx, ok := ctx.Value(spanContextKey{}).(context.Context); ok {
		return spanCtx
	}
	return ctx.StdContext()
}
