package main

import (
	"fmt"
	"time"

	"github.com/zeinix-zz/leptos/pkg/router"
	"github.com/zeinix-zz/leptos/pkg/server"
)

// demoRoutes builds the route tree the CLI serves and exports. It
// exercises every segment kind and SSR mode: a static home page, a
// blog section with a parameterized child and a regeneration hint,
// a live page on the default streaming mode, and a wildcard fallback.
func demoRoutes() router.Routes {
	blogRegen := &router.RegenerationDescriptor{
		Interval: 10 * time.Minute,
		Tags:     []string{"blog"},
	}

	return router.Routes{
		router.NewRoute(router.StaticSegment(""), page("home", "Welcome.")).
			SsrMode(router.StaticMode(nil)),

		router.NewRoute(router.StaticSegment("blog"), layout("blog")).
			SsrMode(router.StaticMode(blogRegen)).
			Child(router.Routes{
				router.NewRoute(router.StaticSegment(""), page("blog-index", "All posts.")),
				router.NewRoute(router.ParamSegment("slug"), postPage()),
			}),

		router.NewRoute(router.StaticSegment("live"), clockPage()),

		router.NewRoute(router.WildcardSegment("path"), lostPage()).
			SsrMode(router.StaticMode(nil)),
	}
}

// page renders a standalone leaf page.
func page(title, body string) server.Page {
	return func(ctx *server.Ctx, outlet []byte) ([]byte, error) {
		return []byte(fmt.Sprintf(
			"<!doctype html><title>%s</title><main><h1>%s</h1><p>%s</p></main>",
			title, title, body)), nil
	}
}

// layout wraps its child's output in a section shell.
func layout(title string) server.Page {
	return func(ctx *server.Ctx, outlet []byte) ([]byte, error) {
		return []byte(fmt.Sprintf(
			"<!doctype html><title>%s</title><nav>%s</nav><section>%s</section>",
			title, title, outlet)), nil
	}
}

func postPage() server.Page {
	return func(ctx *server.Ctx, outlet []byte) ([]byte, error) {
		slug := ctx.Param("slug")
		return []byte(fmt.Sprintf("<article><h2>%s</h2></article>", slug)), nil
	}
}

func clockPage() server.Page {
	return func(ctx *server.Ctx, outlet []byte) ([]byte, error) {
		return []byte(fmt.Sprintf(
			"<!doctype html><title>live</title><p>Rendered at %s.</p>",
			time.Now().UTC().Format(time.RFC3339))), nil
	}
}

func lostPage() server.Page {
	return func(ctx *server.Ctx, outlet []byte) ([]byte, error) {
		return []byte(fmt.Sprintf(
			"<!doctype html><title>not found</title><p>Nothing at %s.</p>",
			ctx.Path())), nil
	}
}

// demoParams supplies export values for the demo tree's parameter
// segments.
func demoParams() map[string][]string {
	return map[string][]string{
		"slug": {"hello-world", "nested-routing"},
	}
}
