package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func typesCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the entity types registered in the pinned catalog version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return fmt.Errorf("types: building catalog: %w", err)
			}

			var names []string
			for name := range cat.TypeNames() {
				names = append(names, name)
			}

			if outputJSON {
				out, marshalErr := json.MarshalIndent(map[string]any{
					"version": cat.Version(),
					"types":   names,
				}, "", "  ")
				if marshalErr != nil {
					return fmt.Errorf("types: marshaling JSON: %w", marshalErr)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("Catalog version: %s (%d types)\n", cat.Version(), cat.Len())
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	return cmd
}
