package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campuskg/hallgraph/internal/hierarchy"
)

func checkEdgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-edge <from-type> <to-type> <kind>",
		Short: "Check whether an edge kind is legal between two entity types",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := hierarchy.EdgeKind(args[2])
			if !kind.IsValid() {
				return fmt.Errorf("check-edge: unknown edge kind %q", args[2])
			}

			if hierarchy.IsLegalEdge(args[0], args[1], kind) {
				fmt.Printf("%s -[%s]-> %s is legal\n", args[0], kind, args[1])
				return nil
			}
			return fmt.Errorf("check-edge: %s -[%s]-> %s is not legal", args[0], kind, args[1])
		},
	}

	return cmd
}
