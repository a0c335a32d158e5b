package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitalvas/waypoint/pattern"
	"github.com/vitalvas/waypoint/router"
)

func matchCmd() *cobra.Command {
	var maxParams int

	cmd := &cobra.Command{
		Use:   "match PATTERN PATH",
		Short: "Match a path against a route pattern",
		Example: `  waypoint match /users/:id /users/42
  waypoint match '/files/*' /files/a/b`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if maxParams < 0 {
				return fmt.Errorf("invalid --max-params %d: must not be negative", maxParams)
			}

			if err := pattern.Validate(args[0]); err != nil {
				return err
			}

			params := make([]pattern.Param, maxParams)

			n, ok, err := pattern.Match(args[0], args[1], params)
			if err != nil {
				return err
			}

			if !ok {
				warn(w, "%s does not match %s", args[1], args[0])
				return nil
			}

			success(w, "%s matches %s", args[1], args[0])
			for _, p := range params[:n] {
				field(w, p.Key, p.Value)
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&maxParams, "max-params", router.DefaultMaxParams, "parameter capacity")

	return cmd
}
