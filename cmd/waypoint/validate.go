package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitalvas/waypoint/routefile"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Validate YAML route files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				f, err := routefile.LoadFile(path)
				if err != nil {
					errorMsg(w, "%s", err)
					failed++
					continue
				}

				success(w, "%s: %d routes, stack capacity %d", path, len(f.Routes), f.StackCapacity)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d route files failed validation", failed, len(args))
			}

			return nil
		},
	}
}
