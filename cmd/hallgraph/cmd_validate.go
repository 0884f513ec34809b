package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/campuskg/hallgraph/internal/schema"
)

func validateCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "validate <type> [file]",
		Short: "Decode and validate a candidate record from a JSON file or stdin",
		Long: `Reads a candidate record as a JSON object, decodes it against the named
entity type, and runs the type's validation rules. Exits non-zero when the
record is rejected; the verdict details every structural problem or rule
failure in declaration order.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := newCatalog()
			if err != nil {
				return fmt.Errorf("validate: building catalog: %w", err)
			}

			def, err := cat.Lookup(args[0])
			if err != nil {
				return fmt.Errorf("validate: %w", err)
			}

			var in io.Reader = os.Stdin
			if len(args) == 2 && args[1] != "-" {
				f, openErr := os.Open(args[1])
				if openErr != nil {
					return fmt.Errorf("validate: %w", openErr)
				}
				defer func() { _ = f.Close() }()
				in = f
			}

			var raw map[string]any
			if decodeErr := json.NewDecoder(in).Decode(&raw); decodeErr != nil {
				return fmt.Errorf("validate: reading record: %w", decodeErr)
			}

			rec, err := def.Decode(raw)
			if err == nil {
				err = def.Validate(rec)
			}
			return report(err, outputJSON)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "output the verdict as JSON")
	return cmd
}

// report prints the verdict and converts a rejection into a command error.
func report(err error, outputJSON bool) error {
	if err == nil {
		if outputJSON {
			fmt.Println(`{"valid": true}`)
		} else {
			fmt.Println("Record is valid.")
		}
		return nil
	}

	var structural *schema.StructuralError
	var validation *schema.ValidationError
	switch {
	case errors.As(err, &structural):
		if outputJSON {
			out, marshalErr := json.MarshalIndent(map[string]any{
				"valid":    false,
				"reason":   "structural",
				"problems": structural.Problems,
			}, "", "  ")
			if marshalErr != nil {
				return fmt.Errorf("validate: marshaling JSON: %w", marshalErr)
			}
			fmt.Println(string(out))
		} else {
			fmt.Println("Record is malformed:")
			for i := range structural.Problems {
				fmt.Printf("  %s: %s\n", structural.Problems[i].Field, structural.Problems[i].Reason)
			}
		}
	case errors.As(err, &validation):
		if outputJSON {
			out, marshalErr := json.MarshalIndent(map[string]any{
				"valid":    false,
				"reason":   "validation",
				"failures": validation.Failures,
			}, "", "  ")
			if marshalErr != nil {
				return fmt.Errorf("validate: marshaling JSON: %w", marshalErr)
			}
			fmt.Println(string(out))
		} else {
			fmt.Println("Record failed validation:")
			for i := range validation.Failures {
				fmt.Printf("  %s: %s\n", validation.Failures[i].RuleID, validation.Failures[i].Reason)
			}
		}
	default:
		return fmt.Errorf("validate: %w", err)
	}

	return fmt.Errorf("validate: record rejected")
}
