package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func describeCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "describe <type>",
		Short: "Show the field list and extraction hints of one entity type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return fmt.Errorf("describe: building catalog: %w", err)
			}

			desc, err := cat.Describe(args[0])
			if err != nil {
				return fmt.Errorf("describe: %w", err)
			}

			if outputJSON {
				out, marshalErr := json.MarshalIndent(desc, "", "  ")
				if marshalErr != nil {
					return fmt.Errorf("describe: marshaling JSON: %w", marshalErr)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Printf("Type: %s\n", desc.TypeName)
			for i := range desc.Fields {
				f := &desc.Fields[i]
				required := ""
				if f.Required {
					required = "  (required)"
				}
				kind := string(f.Kind)
				if len(f.Values) > 0 {
					kind = kind + ": " + strings.Join(f.Values, "|")
				}
				fmt.Printf("  %-22s %-30s%s\n", f.Name, kind, required)
				if f.Hint != "" {
					fmt.Printf("      %s\n", f.Hint)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "output as JSON")
	return cmd
}
