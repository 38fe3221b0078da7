package export

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/zeinix-zz/leptos/pkg/router"
)

// RenderFunc renders the page body for one concrete route path.
type RenderFunc func(ctx context.Context, path string) ([]byte, error)

// ParamValues supplies the concrete values to substitute for each named
// parameter segment during export. A parameterized route expands to the
// cross product of its parameters' values.
type ParamValues map[string][]string

// PlannedRoute is one concrete path scheduled for export, with the
// generated metadata it derives from.
type PlannedRoute struct {
	Path string
	Info router.GeneratedRouteInfo
}

// Exporter renders a tree's static routes to a Target.
type Exporter struct {
	routes router.NestedRoutes
	render RenderFunc
	target Target
	params ParamValues
	logger *slog.Logger
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) ExporterOption {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithParamValues supplies values for parameterized routes.
func WithParamValues(params ParamValues) ExporterOption {
	return func(e *Exporter) {
		e.params = params
	}
}

// New creates an exporter for the given tree.
func New(routes router.NestedRoutes, render RenderFunc, target Target, opts ...ExporterOption) *Exporter {
	e := &Exporter{
		routes: routes,
		render: render,
		target: target,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Plan enumerates the tree and materializes the exportable paths:
// static-mode routes only, with parameter segments expanded against the
// configured values. Routes with wildcards or unresolved parameters are
// skipped with a log line.
func (e *Exporter) Plan() []PlannedRoute {
	var plan []PlannedRoute
	for info := range e.routes.GenerateRoutes() {
		if info.SsrMode.Kind != router.SsrStatic {
			e.logger.Debug("skipping non-static route",
				"route", info.Pattern(), "mode", info.SsrMode)
			continue
		}
		paths, ok := e.expand(info.Segments)
		if !ok {
			e.logger.Warn("skipping route with unresolved segments",
				"route", info.Pattern())
			continue
		}
		for _, path := range paths {
			plan = append(plan, PlannedRoute{Path: path, Info: info})
		}
	}
	return plan
}

// expand substitutes parameter values into the segment list, producing
// every concrete path. ok is false when a segment cannot be resolved.
func (e *Exporter) expand(segments []router.PathSegment) (paths []string, ok bool) {
	paths = []string{""}
	for _, seg := range segments {
		switch seg.Kind {
		case router.SegmentStatic:
			if seg.Value == "" {
				continue
			}
			for i := range paths {
				paths[i] += "/" + seg.Value
			}
		case router.SegmentParam:
			values := e.params[seg.Value]
			if len(values) == 0 {
				return nil, false
			}
			next := make([]string, 0, len(paths)*len(values))
			for _, p := range paths {
				for _, v := range values {
					next = append(next, p+"/"+v)
				}
			}
			paths = next
		default:
			// Wildcards have no finite expansion.
			return nil, false
		}
	}
	for i, p := range paths {
		if p == "" {
			paths[i] = "/"
		}
	}
	return paths, true
}

// Run performs a one-shot export of every planned route.
func (e *Exporter) Run(ctx context.Context) error {
	plan := e.Plan()
	e.logger.Info("exporting static routes", "count", len(plan))
	for _, pr := range plan {
		if err := e.exportOne(ctx, pr); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) exportOne(ctx context.Context, pr PlannedRoute) error {
	body, err := e.render(ctx, pr.Path)
	if err != nil {
		return fmt.Errorf("render %s: %w", pr.Path, err)
	}
	if err := e.target.Put(ctx, pr.Path, body); err != nil {
		return fmt.Errorf("export %s: %w", pr.Path, err)
	}
	e.logger.Debug("exported route", "path", pr.Path)
	return nil
}

// Regenerate re-renders planned routes whose regeneration hints carry an
// interval, each on its own schedule, until ctx is cancelled. Routes
// with several hinted intervals use the smallest. Failures are logged
// and the schedule continues.
func (e *Exporter) Regenerate(ctx context.Context) error {
	var wg sync.WaitGroup
	for _, pr := range e.Plan() {
		interval := minInterval(pr.Info.Regenerate)
		if interval <= 0 {
			continue
		}
		wg.Add(1)
		go func(pr PlannedRoute, interval time.Duration) {
			defer wg.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					if err := e.exportOne(ctx, pr); err != nil {
						e.logger.Error("regeneration failed",
							"path", pr.Path, "error", err)
					}
				}
			}
		}(pr, interval)
	}
	wg.Wait()
	return ctx.Err()
}

func minInterval(hints []router.RegenerationDescriptor) time.Duration {
	var min time.Duration
	for _, h := range hints {
		if h.Interval > 0 && (min == 0 || h.Interval < min) {
			min = h.Interval
		}
	}
	return min
}
