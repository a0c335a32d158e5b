package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitalvas/waypoint/uri"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse URI",
		Short: "Split a URI into its components",
		Example: `  waypoint parse 'app://example.com/users/42?tab=posts#top'
  waypoint parse /settings`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			u := uri.Parse(args[0])

			field(w, "scheme", u.Scheme)
			field(w, "authority", u.Authority)

			if u.Authority != "" {
				a := uri.ParseAuthority(u.Authority)
				field(w, "host", a.Host)
				if a.Port != "" {
					field(w, "port", a.Port)
				}
				if ascii, err := a.ASCIIHost(); err == nil && ascii != a.Host {
					field(w, "ascii", ascii)
				}
			}

			field(w, "path", u.Path)
			field(w, "query", u.Query)
			field(w, "fragment", u.Fragment)

			for k, v := range uri.QueryPairs(u.Query) {
				if k == "" && v == "" {
					continue
				}
				fmt.Fprintf(w, "    %s = %s\n", k, v)
			}

			return nil
		},
	}
}
