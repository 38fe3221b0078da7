// Package export renders a route tree's static routes ahead of time.
//
// The exporter enumerates the tree via GenerateRoutes, keeps the entries
// whose merged rendering mode is static, expands parameterized segments
// against caller-supplied values, renders each concrete path, and writes
// the result to a Target, either a local directory or an S3 bucket.
//
//	exp := export.New(routes, renderPage, export.NewDirTarget("dist"),
//	    export.WithParamValues(export.ParamValues{"slug": {"intro", "faq"}}),
//	)
//	if err := exp.Run(ctx); err != nil { ... }
//
// Run performs a one-shot export. Regenerate keeps re-rendering routes
// whose regeneration hints carry an interval, until the context is
// cancelled.
package export
