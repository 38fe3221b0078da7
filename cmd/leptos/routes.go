package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the enumerated route table",
		Long: `Routes enumerates the demo tree depth-first and prints one line per
leaf: the full concatenated pattern, the allowed methods, the merged
SSR mode, and any regeneration hints.`,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PATTERN\tMETHODS\tMODE\tREGENERATE")
			for info := range demoRoutes().GenerateRoutes() {
				regen := "-"
				if len(info.Regenerate) > 0 {
					var hints []string
					for _, h := range info.Regenerate {
						hints = append(hints, h.String())
					}
					regen = strings.Join(hints, "; ")
				}
				var methods []string
				for _, m := range info.Methods.List() {
					methods = append(methods, string(m))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					info.Pattern(), strings.Join(methods, ","), info.SsrMode, regen)
			}
			w.Flush()
		},
	}
}
