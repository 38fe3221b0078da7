package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "leptos",
		Short: "Nested route matching and static export for server-rendered sites",
		Long: `leptos serves and exports a nested route tree.

A route tree nests path segments the way pages nest views: a parent
route matches a path prefix and wraps the output of its child routes.
The CLI ships a small demo tree and exposes three surfaces:

  serve    dispatch the tree over HTTP with metrics and a live
           navigation socket
  export   render the tree's static routes to files or S3
  routes   print the enumerated route table`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		exportCmd(),
		routesCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}
